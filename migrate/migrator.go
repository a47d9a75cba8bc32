// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package migrate

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/poiesic/askdocs/core"
	"github.com/poiesic/askdocs/storage"
)

// Config holds configuration for the migration operation.
type Config struct {
	// BatchSize is the number of documents to process in each batch
	BatchSize int

	// ReportInterval is how often to report progress (number of documents)
	ReportInterval int

	// MaxRetries is the maximum number of retry attempts for failed operations
	MaxRetries int

	// RetryDelay is the base delay for exponential backoff
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		BatchSize:      100,
		ReportInterval: 100,
		MaxRetries:     3,
		RetryDelay:     1 * time.Second,
	}
}

// Migrator rewrites every stored document under the current record encoding.
type Migrator struct {
	repo     storage.DocumentRepository
	config   *Config
	progress io.Writer
	rewriter *BatchRewriter
	iterator *DocumentIterator
}

// NewMigrator creates a new migrator.
// transform may be nil to rewrite documents unchanged.
// progress: where to write progress output (typically os.Stderr)
func NewMigrator(repo storage.DocumentRepository, transform Transform, config *Config, progress io.Writer) *Migrator {
	if config == nil {
		config = DefaultConfig()
	}

	rewriter := NewBatchRewriter(repo, transform, config.MaxRetries, config.RetryDelay)
	iterator := NewDocumentIterator(repo, config.BatchSize)

	return &Migrator{
		repo:     repo,
		config:   config,
		progress: progress,
		rewriter: rewriter,
		iterator: iterator,
	}
}

// Run executes the migration.
// All documents in the database are rewritten with the configured transform.
// Progress is reported to the configured writer.
func (m *Migrator) Run(ctx context.Context) error {
	total, err := m.repo.CountDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to count documents: %w", err)
	}

	if total == 0 {
		fmt.Fprintf(m.progress, "No documents found in database (0 documents)\n")
		return nil
	}

	fmt.Fprintf(m.progress, "Starting migration of %d documents (batch size: %d)\n",
		total, m.config.BatchSize)

	tracker := NewProgressTracker(m.progress, total, m.config.ReportInterval)
	tracker.Start()

	processed := 0
	err = m.iterator.ForEach(ctx, func(documents []*core.Document) error {
		if err := m.rewriter.Process(ctx, documents); err != nil {
			return fmt.Errorf("failed to process batch: %w", err)
		}

		processed += len(documents)
		tracker.Update(processed)
		return nil
	})
	if err != nil {
		return err
	}

	tracker.Finish()

	elapsed := tracker.Elapsed()
	fmt.Fprintf(m.progress, "Migration complete. Processed %d documents in %v (%.1f documents/sec)\n",
		total, elapsed.Round(time.Second), float64(total)/elapsed.Seconds())

	return nil
}
