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


package askdocs

import (
	"log/slog"

	"github.com/poiesic/askdocs/ai"
	"github.com/poiesic/askdocs/ai/openai"
	"github.com/poiesic/askdocs/ai/stub"
	"github.com/poiesic/askdocs/ingestion"
	"github.com/poiesic/askdocs/rag"
	"github.com/poiesic/askdocs/search"
	"github.com/poiesic/askdocs/storage"
	"github.com/poiesic/askdocs/storage/badger"
)

// Database wires storage, retrieval, and generation into one handle.
// All factory methods share the same retriever, so documents ingested
// through one pipeline become searchable everywhere.
type Database struct {
	backend   *badger.Backend
	docRepo   storage.DocumentRepository
	qaRepo    storage.QAResultRepository
	retriever *search.Retriever
	generator ai.Generator
	aiConfig  *ai.Config
	logger    *slog.Logger
}

// DatabaseOption configures a Database.
type DatabaseOption func(*databaseOptions)

type databaseOptions struct {
	aiConfig *ai.Config
}

// WithAIConfig selects and configures the answer generation backend.
func WithAIConfig(cfg *ai.Config) DatabaseOption {
	return func(o *databaseOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

func NewDatabase(filePath string, opts ...DatabaseOption) (*Database, error) {
	// Apply options
	options := &databaseOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	// Create document repository
	docRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create QA result repository
	qaRepo, err := badger.NewQAResultRepository(backend)
	if err != nil {
		docRepo.Close()
		backend.Close()
		return nil, err
	}

	// Shared retriever over the document corpus
	retriever, err := search.NewRetriever(docRepo)
	if err != nil {
		qaRepo.Close()
		docRepo.Close()
		backend.Close()
		return nil, err
	}

	generator, err := newGenerator(options.aiConfig)
	if err != nil {
		qaRepo.Close()
		docRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Database{
		backend:   backend,
		docRepo:   docRepo,
		qaRepo:    qaRepo,
		retriever: retriever,
		generator: generator,
		aiConfig:  options.aiConfig,
		logger:    slog.Default(),
	}, nil
}

// newGenerator builds the configured generation backend.
func newGenerator(cfg *ai.Config) (ai.Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Backend == ai.BackendOpenAI {
		return openai.NewGenerator(cfg)
	}
	return stub.NewGenerator(), nil
}

func (db *Database) Close() error {
	// Close repositories
	if err := db.qaRepo.Close(); err != nil {
		db.logger.Error("error closing QA result repository", "err", err)
		return err
	}
	if err := db.docRepo.Close(); err != nil {
		db.logger.Error("error closing document repository", "err", err)
		return err
	}

	// Close backend
	if err := db.backend.Close(); err != nil {
		db.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (db *Database) DocumentRepository() storage.DocumentRepository {
	return db.docRepo
}

func (db *Database) QAResultRepository() storage.QAResultRepository {
	return db.qaRepo
}

func (db *Database) Retriever() *search.Retriever {
	return db.retriever
}

func (db *Database) NewIngestionPipeline(opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(db.docRepo, db.retriever, opts...)
}

func (db *Database) NewPipeline(opts ...rag.Option) (*rag.Pipeline, error) {
	// The configured timeout is the default; explicit options still win
	opts = append([]rag.Option{rag.WithGenerationTimeout(db.aiConfig.Timeout)}, opts...)
	return rag.NewPipeline(db.retriever, db.qaRepo, db.generator, opts...)
}
