package ai

import "context"

// Generator produces a model answer for a fully rendered prompt.
// Implementations must be thread-safe for concurrent use.
type Generator interface {
	// Generate sends the prompt to the model and returns its raw answer.
	// The returned text is not trimmed or post-processed.
	// Returns an error if the backend call fails.
	Generate(ctx context.Context, prompt string) (string, error)
}
