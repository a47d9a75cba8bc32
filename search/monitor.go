package search

import (
	"github.com/poiesic/askdocs/core"
)

// RetrievalMonitor provides hooks to observe the retrieval process.
// Implement this interface to track intermediate steps and results during search.
type RetrievalMonitor interface {
	Start(query string)
	AfterNormalization(normalized string)
	AfterIndexReady(documentCount, vocabularySize int)
	AfterScoring(scores []float64)
	Finish(results []*core.RankedResult)
}

// noopMonitor is a no-op implementation of RetrievalMonitor
type noopMonitor struct{}

var _ RetrievalMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)               {}
func (n *noopMonitor) AfterNormalization(_ string)  {}
func (n *noopMonitor) AfterIndexReady(_, _ int)     {}
func (n *noopMonitor) AfterScoring(_ []float64)     {}
func (n *noopMonitor) Finish(_ []*core.RankedResult) {}
