// Package ingestion provides pipeline orchestration for adding documents.
//
// The Pipeline type manages the ingestion workflow:
//   - Validating incoming documents
//   - Adding them to storage
//   - Rebuilding the search index asynchronously
//
// Rebuilds run on a worker pool so ingestion returns as soon as the
// documents are durable. Errors during async reindexing are logged but do
// not fail the ingestion operation.
package ingestion
