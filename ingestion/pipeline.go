package ingestion

import (
	"context"
	"errors"
	"log/slog"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/askdocs/core"
	"github.com/poiesic/askdocs/search"
	"github.com/poiesic/askdocs/storage"
)

// Pipeline orchestrates document ingestion. Documents are validated and
// stored synchronously; the search index is rebuilt asynchronously so
// ingestion latency stays independent of corpus size.
type Pipeline struct {
	documentRepository storage.DocumentRepository
	retriever          *search.Retriever
	reindexPool        *ants.Pool
	logger             *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for index rebuilds.
// Default is 1, which serializes rebuilds.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.reindexPool != nil {
			p.reindexPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.reindexPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	documentRepository storage.DocumentRepository,
	retriever *search.Retriever,
	opts ...Option,
) (*Pipeline, error) {
	if documentRepository == nil {
		return nil, ErrDocumentRepositoryRequired
	}
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}

	pool, err := ants.NewPool(1)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documentRepository: documentRepository,
		retriever:          retriever,
		reindexPool:        pool,
		logger:             slog.Default().With("component", "ingestion"),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest validates and stores documents, then schedules an index rebuild.
// The rebuild runs asynchronously; rebuild errors are logged but do not
// fail the ingestion. Validation failures reject the whole batch before
// anything is stored. Documents whose content hash matches an already
// stored document, or a duplicate earlier in the batch, are skipped.
// Returns only the documents that were actually stored.
func (p *Pipeline) Ingest(ctx context.Context, documents ...*core.Document) ([]*core.Document, error) {
	for _, document := range documents {
		if err := core.ValidateDocument(document); err != nil {
			return nil, err
		}
	}

	fresh := make([]*core.Document, 0, len(documents))
	seen := make(map[core.ID]bool, len(documents))
	for _, document := range documents {
		contentID := document.ContentID()
		if seen[contentID] {
			p.logger.Debug("skipping duplicate document in batch", "title", document.Title)
			continue
		}
		seen[contentID] = true

		existing, err := p.documentRepository.GetDocumentByContent(ctx, contentID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			p.logger.Debug("skipping already stored document",
				"title", document.Title, "id", existing.Id)
			continue
		}
		fresh = append(fresh, document)
	}
	if len(fresh) == 0 {
		return fresh, nil
	}

	added, err := p.documentRepository.AddDocuments(ctx, fresh...)
	if err != nil {
		return nil, err
	}

	if len(added) == 0 {
		return added, nil
	}

	// Submit for async reindexing
	p.reindexPool.Submit(func() {
		if err := p.retriever.Index(context.Background(), nil); err != nil {
			p.logger.Error("error rebuilding index after ingest", "err", err)
		}
	})

	return added, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.reindexPool != nil {
		p.reindexPool.Release()
	}
}
