package rag

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/poiesic/askdocs/ai"
	"github.com/poiesic/askdocs/core"
	"github.com/poiesic/askdocs/prompt"
	"github.com/poiesic/askdocs/search"
	"github.com/poiesic/askdocs/storage"
)

const (
	defaultTopK       = 5
	defaultGenTimeout = 30 * time.Second
)

// Pipeline answers questions over the stored corpus: retrieve, build the
// prompt, generate, and persist the exchange. Every accepted question
// produces exactly one stored QAResult, including the no-information and
// generation-failure outcomes.
type Pipeline struct {
	retriever    *search.Retriever
	qaRepository storage.QAResultRepository
	generator    ai.Generator
	topK         int
	timeout      time.Duration
	logger       *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

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

// WithDefaultTopK sets how many documents are retrieved when the caller
// does not ask for a specific count. Out-of-range values are clamped.
func WithDefaultTopK(topK int) Option {
	return func(p *Pipeline) error {
		p.topK = core.ClampTopK(topK)
		return nil
	}
}

// WithGenerationTimeout bounds a single model call.
// Default is 30s.
func WithGenerationTimeout(d time.Duration) Option {
	return func(p *Pipeline) error {
		if d > 0 {
			p.timeout = d
		}
		return nil
	}
}

// NewPipeline creates a question-answering pipeline.
func NewPipeline(
	retriever *search.Retriever,
	qaRepository storage.QAResultRepository,
	generator ai.Generator,
	opts ...Option,
) (*Pipeline, error) {
	if retriever == nil {
		return nil, ErrRetrieverRequired
	}
	if qaRepository == nil {
		return nil, ErrQAResultRepositoryRequired
	}
	if generator == nil {
		return nil, ErrGeneratorRequired
	}

	p := &Pipeline{
		retriever:    retriever,
		qaRepository: qaRepository,
		generator:    generator,
		topK:         defaultTopK,
		timeout:      defaultGenTimeout,
		logger:       slog.Default().With("component", "rag-pipeline"),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Answer runs the full flow for one question and persists the result.
// A topK of zero or less selects the pipeline default.
//
// Retrieval misses and model failures still produce a persisted QAResult
// carrying a language-matched fixed answer; only storage errors and
// caller cancellation abort without persisting.
func (p *Pipeline) Answer(ctx context.Context, question string, topK int) (*core.QAResult, []*core.RankedResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, nil, core.ErrEmptyQuestion
	}
	if topK <= 0 {
		topK = p.topK
	}
	topK = core.ClampTopK(topK)

	retrieved, err := p.retriever.Search(ctx, question, topK)
	if err != nil {
		p.logger.Error("retrieval failed", "err", err)
		return nil, nil, err
	}

	if len(retrieved) == 0 {
		// Nothing to ground an answer on; skip the model entirely
		result, err := p.persist(ctx, question, prompt.Sentinel(question), nil)
		return result, retrieved, err
	}

	answer := p.generate(ctx, question, retrieved)
	if err := ctx.Err(); err != nil {
		// Caller gave up; nothing is stored
		return nil, nil, err
	}

	result, err := p.persist(ctx, question, answer, retrieved)
	return result, retrieved, err
}

// generate calls the model under the configured timeout and maps every
// failure mode to a fixed answer in the question's language.
func (p *Pipeline) generate(ctx context.Context, question string, retrieved []*core.RankedResult) string {
	rendered := prompt.Build(question, retrieved)

	genCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	raw, err := p.generator.Generate(genCtx, rendered)
	if err != nil {
		p.logger.Error("model generation failed", "question", question, "err", err)
		return prompt.GenerationFailure(question)
	}

	answer := strings.TrimSpace(raw)
	if answer == "" {
		return prompt.Sentinel(question)
	}
	return answer
}

func (p *Pipeline) persist(ctx context.Context, question, answer string, retrieved []*core.RankedResult) (*core.QAResult, error) {
	result := &core.QAResult{
		Question: question,
		Answer:   answer,
	}
	for _, r := range retrieved {
		result.DocumentIds = append(result.DocumentIds, r.Document.Id)
	}

	stored, err := p.qaRepository.AddQAResult(ctx, result)
	if err != nil {
		p.logger.Error("failed to persist QA result", "err", err)
		return nil, err
	}
	return stored, nil
}
