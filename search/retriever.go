package search

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/poiesic/askdocs/core"
	"github.com/poiesic/askdocs/index"
	"github.com/poiesic/askdocs/normalize"
	"github.com/poiesic/askdocs/storage"
)

// corpusSnapshot pairs an immutable document slice with the index built
// over it. Readers always see a consistent pair.
type corpusSnapshot struct {
	documents []*core.Document
	index     *index.Index
}

// Retriever ranks stored documents against a query by TF-IDF cosine
// similarity. The index is built lazily on first search and rebuilt on
// demand via Index; searches running during a rebuild keep using the
// previous snapshot.
type Retriever struct {
	documentRepository storage.DocumentRepository
	vectorizer         *index.Vectorizer
	logger             *slog.Logger

	snapshot atomic.Pointer[corpusSnapshot]
	buildMu  sync.Mutex
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithVectorizer sets a custom vectorizer.
func WithVectorizer(vectorizer *index.Vectorizer) Option {
	return func(r *Retriever) error {
		if vectorizer == nil {
			return ErrVectorizerRequired
		}
		r.vectorizer = vectorizer
		return nil
	}
}

// NewRetriever creates a new retriever backed by the given document repository.
func NewRetriever(documentRepository storage.DocumentRepository, opts ...Option) (*Retriever, error) {
	if documentRepository == nil {
		return nil, ErrDocumentRepositoryRequired
	}

	r := &Retriever{
		documentRepository: documentRepository,
		vectorizer:         index.NewVectorizer(),
		logger:             slog.Default().With("component", "retriever"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Index builds a fresh index over the given documents and atomically
// publishes it. A nil slice loads the full corpus from the repository.
func (r *Retriever) Index(ctx context.Context, documents []*core.Document) error {
	if documents == nil {
		loaded, err := r.documentRepository.ListDocuments(ctx)
		if err != nil {
			r.logger.Error("error loading documents for indexing", "err", err)
			return err
		}
		documents = loaded
	}

	corpus := make([]string, len(documents))
	for i, document := range documents {
		corpus[i] = normalize.Text(document.Title + " " + document.FullText)
	}

	ix := r.vectorizer.Fit(corpus)
	r.snapshot.Store(&corpusSnapshot{documents: documents, index: ix})

	r.logger.Debug("index rebuilt",
		"documents", len(documents),
		"vocabulary", ix.VocabularySize())
	return nil
}

// Search finds the documents most similar to the query.
// Returns up to topK results ranked by score descending; documents with
// zero similarity are omitted.
func (r *Retriever) Search(ctx context.Context, query string, topK int) ([]*core.RankedResult, error) {
	return r.SearchWithMonitor(ctx, query, topK, nil)
}

// SearchWithMonitor runs Search with monitoring callbacks at each stage.
func (r *Retriever) SearchWithMonitor(ctx context.Context, query string, topK int, monitor RetrievalMonitor) ([]*core.RankedResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)
	topK = core.ClampTopK(topK)

	snap, err := r.ensureIndex(ctx)
	if err != nil {
		return nil, err
	}
	monitor.AfterIndexReady(len(snap.documents), snap.index.VocabularySize())

	normalized := normalize.Text(query)
	monitor.AfterNormalization(normalized)
	if normalized == "" {
		monitor.Finish(nil)
		return []*core.RankedResult{}, nil
	}

	queryVector := snap.index.Transform(normalized)
	scores := snap.index.Similarities(queryVector)
	monitor.AfterScoring(scores)

	results := make([]*core.RankedResult, 0, len(scores))
	for i, score := range scores {
		if score <= 0 {
			continue
		}
		results = append(results, &core.RankedResult{
			Document: snap.documents[i],
			Score:    score,
		})
	}

	// Stable sort keeps corpus order for equal scores
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topK {
		results = results[:topK]
	}

	monitor.Finish(results)
	return results, nil
}

// ensureIndex returns the current snapshot, building one from the
// repository if no index has been published yet.
func (r *Retriever) ensureIndex(ctx context.Context) (*corpusSnapshot, error) {
	if snap := r.snapshot.Load(); snap != nil {
		return snap, nil
	}

	r.buildMu.Lock()
	defer r.buildMu.Unlock()

	// Another goroutine may have built it while we waited
	if snap := r.snapshot.Load(); snap != nil {
		return snap, nil
	}

	if err := r.Index(ctx, nil); err != nil {
		return nil, err
	}
	return r.snapshot.Load(), nil
}

// DocumentCount reports the size of the currently indexed corpus.
// Returns 0 if no index has been built yet.
func (r *Retriever) DocumentCount() int {
	snap := r.snapshot.Load()
	if snap == nil {
		return 0
	}
	return len(snap.documents)
}
