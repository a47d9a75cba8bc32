package stub

import (
	"context"
	"strings"

	"github.com/poiesic/askdocs/ai"
)

// questionMarker precedes the user question in the rendered prompt. The
// few-shot examples contain the same marker, so only the last occurrence
// is the real question.
const questionMarker = "\nQuestion:\n"

// Generator is an offline ai.Generator that answers without a model.
// It echoes the question back so the rest of the pipeline can be
// exercised with no network access.
type Generator struct{}

var _ ai.Generator = (*Generator)(nil)

// NewGenerator creates the offline fallback generator.
func NewGenerator() ai.Generator {
	return &Generator{}
}

// Generate extracts the question from the prompt and returns a canned answer.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	question := "unknown question"

	if idx := strings.LastIndex(prompt, questionMarker); idx >= 0 {
		rest := prompt[idx+len(questionMarker):]
		line, _, _ := strings.Cut(rest, "\n")
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			question = trimmed
		}
	}

	return "Fallback answer generated for: " + question, nil
}
