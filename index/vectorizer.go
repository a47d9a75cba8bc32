package index

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const defaultMaxFeatures = 1000

// Terms are runs of at least two letters, digits, or underscores.
// Single-character tokens carry almost no ranking signal.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Vectorizer fits TF-IDF indexes over normalized text corpora.
// A Vectorizer is immutable and safe for concurrent use.
type Vectorizer struct {
	maxFeatures int
	stopWords   map[string]bool
}

// Option configures a Vectorizer.
type Option func(*Vectorizer)

// WithMaxFeatures caps the vocabulary size.
// Default is 1000. Values below 1 are ignored.
func WithMaxFeatures(n int) Option {
	return func(v *Vectorizer) {
		if n >= 1 {
			v.maxFeatures = n
		}
	}
}

// NewVectorizer creates a vectorizer with unigram+bigram features, English
// stop words, and the default vocabulary cap.
func NewVectorizer(opts ...Option) *Vectorizer {
	v := &Vectorizer{
		maxFeatures: defaultMaxFeatures,
		stopWords:   englishStopWords,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Vector is a sparse term-weight vector keyed by vocabulary index.
type Vector map[int]float64

// Index is a frozen (vocabulary, document vectors) pair produced by Fit.
// It is immutable: updating the corpus means fitting a fresh Index.
type Index struct {
	vectorizer *Vectorizer
	vocabulary map[string]int
	idf        []float64
	vectors    []Vector
}

// Fit builds a vocabulary and unit-length TF-IDF vectors for the corpus.
// Corpus entries are expected to be normalized already. An empty corpus
// yields an empty index; Fit never fails.
func (v *Vectorizer) Fit(corpus []string) *Index {
	docTerms := make([]map[string]int, len(corpus))
	termDF := make(map[string]int)
	termTF := make(map[string]int)

	for i, text := range corpus {
		counts := v.termCounts(text)
		docTerms[i] = counts
		for term, count := range counts {
			termDF[term]++
			termTF[term] += count
		}
	}

	vocabulary := v.selectVocabulary(termTF)

	// Smooth IDF: ln((1+n)/(1+df)) + 1, so terms present in every
	// document still carry a positive weight.
	n := float64(len(corpus))
	idf := make([]float64, len(vocabulary))
	for term, idx := range vocabulary {
		idf[idx] = math.Log((1+n)/(1+float64(termDF[term]))) + 1
	}

	vectors := make([]Vector, len(corpus))
	for i, counts := range docTerms {
		vectors[i] = weigh(counts, vocabulary, idf)
	}

	return &Index{
		vectorizer: v,
		vocabulary: vocabulary,
		idf:        idf,
		vectors:    vectors,
	}
}

// termCounts tokenizes text, drops stop words, and counts unigrams plus
// bigrams formed over the filtered token sequence.
func (v *Vectorizer) termCounts(text string) map[string]int {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	filtered := tokens[:0]
	for _, token := range tokens {
		if !v.stopWords[token] {
			filtered = append(filtered, token)
		}
	}

	counts := make(map[string]int, 2*len(filtered))
	for i, token := range filtered {
		counts[token]++
		if i+1 < len(filtered) {
			counts[token+" "+filtered[i+1]]++
		}
	}
	return counts
}

// selectVocabulary keeps at most maxFeatures terms, preferring the most
// frequent across the corpus; ties break lexicographically so that fitting
// the same corpus always produces the same vocabulary.
func (v *Vectorizer) selectVocabulary(termTF map[string]int) map[string]int {
	terms := make([]string, 0, len(termTF))
	for term := range termTF {
		terms = append(terms, term)
	}

	if len(terms) > v.maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if termTF[terms[i]] != termTF[terms[j]] {
				return termTF[terms[i]] > termTF[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.maxFeatures]
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	for idx, term := range terms {
		vocabulary[term] = idx
	}
	return vocabulary
}

// weigh converts term counts into a unit-length TF-IDF vector over the
// given vocabulary.
func weigh(counts map[string]int, vocabulary map[string]int, idf []float64) Vector {
	vec := make(Vector)
	for term, count := range counts {
		idx, ok := vocabulary[term]
		if !ok {
			continue
		}
		vec[idx] = float64(count) * idf[idx]
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx, w := range vec {
			vec[idx] = w / norm
		}
	}
	return vec
}

// Transform projects text into the index's frozen vocabulary and returns a
// unit-length TF-IDF vector. Out-of-vocabulary terms contribute nothing; a
// text sharing no vocabulary with the corpus yields an empty vector.
func (ix *Index) Transform(text string) Vector {
	if len(ix.vocabulary) == 0 {
		return Vector{}
	}
	return weigh(ix.vectorizer.termCounts(text), ix.vocabulary, ix.idf)
}

// Len returns the number of documents in the index.
func (ix *Index) Len() int {
	return len(ix.vectors)
}

// VocabularySize returns the number of features in the frozen vocabulary.
func (ix *Index) VocabularySize() int {
	return len(ix.vocabulary)
}

// Similarities computes the cosine similarity of query against every
// document vector, in corpus order.
func (ix *Index) Similarities(query Vector) []float64 {
	scores := make([]float64, len(ix.vectors))
	for i, vec := range ix.vectors {
		scores[i] = Cosine(query, vec)
	}
	return scores
}

// Cosine returns the cosine similarity of two unit-length sparse vectors,
// which reduces to their dot product. Result is in [0, 1] for non-negative
// TF-IDF weights.
func Cosine(a, b Vector) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	return dot
}
