package prompt

import (
	"fmt"
	"strings"

	"github.com/poiesic/askdocs/core"
)

// contextSnippetLimit caps each document body at this many runes so a
// handful of long documents cannot blow past the model's context window.
const contextSnippetLimit = 1200

// Build renders the full prompt for a question and its retrieved documents.
func Build(question string, results []*core.RankedResult) string {
	return fmt.Sprintf(ragPromptTemplate, Context(results), question, Sentinel(question))
}

// Context renders retrieved documents as a numbered context block.
// Returns NoDocumentsContext when results is empty.
func Context(results []*core.RankedResult) string {
	if len(results) == 0 {
		return NoDocumentsContext
	}

	chunks := make([]string, 0, len(results))
	for i, result := range results {
		body := strings.Join(strings.Fields(result.Document.FullText), " ")
		chunks = append(chunks, fmt.Sprintf("[%d] Title: %s\nScore: %.4f\nText: %s",
			i+1, result.Document.Title, result.Score, truncateRunes(body, contextSnippetLimit)))
	}
	return strings.Join(chunks, "\n\n")
}

// truncateRunes shortens s to at most limit runes.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
