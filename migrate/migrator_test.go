package migrate

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/poiesic/askdocs/core"
	badgerstore "github.com/poiesic/askdocs/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedDocuments(t *testing.T, count int) (*badgerstore.DocumentRepository, func()) {
	t.Helper()

	docRepo, qaRepo, backend, err := badgerstore.NewMemoryRepositories()
	require.NoError(t, err)

	docs := make([]*core.Document, count)
	for i := range docs {
		docs[i] = &core.Document{
			Title:    fmt.Sprintf("doc %d", i),
			FullText: fmt.Sprintf("body of document %d", i),
		}
	}
	if count > 0 {
		_, err = docRepo.AddDocuments(context.Background(), docs...)
		require.NoError(t, err)
	}

	concrete := docRepo.(*badgerstore.DocumentRepository)
	return concrete, func() {
		qaRepo.Close()
		docRepo.Close()
		backend.Close()
	}
}

func TestMigrator_RewritesAllDocuments(t *testing.T) {
	repo, cleanup := seedDocuments(t, 7)
	defer cleanup()

	var buf bytes.Buffer
	transformed := 0
	migrator := NewMigrator(repo, func(doc *core.Document) bool {
		transformed++
		doc.Tags = append(doc.Tags, "migrated")
		return true
	}, &Config{BatchSize: 3, ReportInterval: 2, MaxRetries: 2, RetryDelay: 0}, &buf)

	require.NoError(t, migrator.Run(context.Background()))
	assert.Equal(t, 7, transformed)
	assert.Contains(t, buf.String(), "Migration complete. Processed 7 documents")

	docs, err := repo.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 7)
	for _, doc := range docs {
		assert.Contains(t, doc.Tags, "migrated")
	}
}

func TestMigrator_EmptyDatabase(t *testing.T) {
	repo, cleanup := seedDocuments(t, 0)
	defer cleanup()

	var buf bytes.Buffer
	migrator := NewMigrator(repo, nil, nil, &buf)

	require.NoError(t, migrator.Run(context.Background()))
	assert.Contains(t, buf.String(), "No documents found")
}

func TestMigrator_NilTransformReencodes(t *testing.T) {
	repo, cleanup := seedDocuments(t, 2)
	defer cleanup()

	before, err := repo.ListDocuments(context.Background())
	require.NoError(t, err)

	var buf bytes.Buffer
	migrator := NewMigrator(repo, nil, nil, &buf)
	require.NoError(t, migrator.Run(context.Background()))

	after, err := repo.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, after, len(before))
	for i := range after {
		assert.Equal(t, before[i].Id, after[i].Id)
		assert.Equal(t, before[i].Title, after[i].Title)
		assert.Equal(t, before[i].FullText, after[i].FullText)
	}
}

func TestMigrator_ContextCancellation(t *testing.T) {
	repo, cleanup := seedDocuments(t, 10)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())

	var buf bytes.Buffer
	seen := 0
	migrator := NewMigrator(repo, func(doc *core.Document) bool {
		seen++
		if seen == 2 {
			// Cancel partway through; iteration stops at the batch boundary
			cancel()
		}
		return false
	}, &Config{BatchSize: 1, ReportInterval: 100, MaxRetries: 1, RetryDelay: 0}, &buf)

	err := migrator.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, seen, 10)
	assert.True(t, strings.Contains(buf.String(), "Starting migration"))
}
