package storage

import (
	"context"
	"time"

	"github.com/poiesic/askdocs/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// DocumentRepository provides operations for managing documents.
type DocumentRepository interface {
	Repository
	// AddDocuments adds one or more documents to storage.
	// Generates new IDs from sequence and sets CreatedAt if not already set.
	// Returns the documents with generated IDs and timestamps populated.
	AddDocuments(ctx context.Context, documents ...*core.Document) ([]*core.Document, error)

	// UpdateDocuments updates existing documents.
	// Updates the UpdatedAt timestamp automatically. Callers are expected to
	// reindex afterwards; stored documents and the in-memory index are only
	// reconciled by an explicit reindex.
	// Returns ErrNotFound if any document doesn't exist.
	UpdateDocuments(ctx context.Context, documents ...*core.Document) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// GetDocumentByContent retrieves the document whose content hash
	// matches contentID (see core.Document.ContentID).
	// Returns ErrNotFound if no stored document has that content.
	GetDocumentByContent(ctx context.Context, contentID core.ID) (*core.Document, error)

	// ListDocuments retrieves every stored document in insertion order.
	// This is the corpus handed to the retriever on (re)index.
	ListDocuments(ctx context.Context) ([]*core.Document, error)

	// CountDocuments returns the number of stored documents.
	CountDocuments(ctx context.Context) (int, error)
}

// QAResultRepository provides operations for persisting answered questions.
type QAResultRepository interface {
	Repository
	// AddQAResult persists a single QA result.
	// Generates a new ID from sequence and sets CreatedAt.
	// Results are immutable once stored; there is no update operation.
	AddQAResult(ctx context.Context, result *core.QAResult) (*core.QAResult, error)

	// GetQAResult retrieves a single QA result by ID.
	// Returns ErrNotFound if the result doesn't exist.
	GetQAResult(ctx context.Context, id core.ID) (*core.QAResult, error)

	// GetRecentQAResults retrieves the N most recent results, newest first.
	GetRecentQAResults(ctx context.Context, limit int) ([]*core.QAResult, error)

	// GetQAResultsByDateRange retrieves results created between start and
	// end, oldest first. An equal start and end is widened to a single
	// microsecond.
	GetQAResultsByDateRange(ctx context.Context, start, end time.Time) ([]*core.QAResult, error)
}
