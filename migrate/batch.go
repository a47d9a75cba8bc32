package migrate

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/askdocs/core"
	"github.com/poiesic/askdocs/storage"
)

// Transform mutates a document in place during migration and reports
// whether it changed anything. A nil Transform rewrites every document
// unchanged, which re-encodes it under the current record layout.
type Transform func(*core.Document) bool

// BatchRewriter persists batches of documents back to storage.
type BatchRewriter struct {
	repo           storage.DocumentRepository
	transform      Transform
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchRewriter creates a new batch rewriter.
// maxRetries: maximum number of retry attempts for storage writes
// retryBaseDelay: base delay for exponential backoff
func NewBatchRewriter(repo storage.DocumentRepository, transform Transform, maxRetries int, retryBaseDelay time.Duration) *BatchRewriter {
	return &BatchRewriter{
		repo:           repo,
		transform:      transform,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process applies the transform to a batch and updates it in the database.
func (br *BatchRewriter) Process(ctx context.Context, documents []*core.Document) error {
	if len(documents) == 0 {
		return nil
	}

	if br.transform != nil {
		for _, document := range documents {
			br.transform(document)
		}
	}

	err := RetryWithBackoff(ctx, func() error {
		_, err := br.repo.UpdateDocuments(ctx, documents...)
		return err
	}, br.maxRetries, br.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to update documents after %d attempts: %w", br.maxRetries, err)
	}

	return nil
}
