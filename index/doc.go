// Package index builds TF-IDF term-weight vectors over a document corpus.
//
// A Vectorizer fits a bounded vocabulary of unigrams and bigrams and weights
// each document by term frequency times inverse document frequency, with
// rows normalized to unit length. The resulting Index is immutable: a re-fit
// produces a fresh Index, there is no incremental update. Queries are
// projected into the frozen vocabulary, so out-of-vocabulary terms simply
// contribute zero weight.
package index
