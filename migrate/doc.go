// Package migrate provides bulk maintenance over stored documents.
//
// The Migrator re-reads every document in batches and writes it back
// under the current record encoding, optionally scrubbing text along the
// way. This package supports batch processing, progress tracking, and
// retry logic with exponential backoff.
package migrate
