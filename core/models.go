package core

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Document is a unit of retrievable knowledge.
// Documents are immutable once indexed; changing the corpus requires an
// explicit reindex that replaces the whole index snapshot.
type Document struct {
	Id        ID
	Title     string
	FullText  string
	Tags      []string
	CreatedAt time.Time // When the document was authored
	UpdatedAt time.Time // When the record was last written to storage
}

// ContentID returns the deterministic content hash of the document's
// title and full text. Two documents with the same content share one
// ContentID regardless of their storage IDs.
func (d *Document) ContentID() ID {
	return IDFromContent(d.Title + "\n" + d.FullText)
}

// RankedResult pairs a document with its relevance score for a query.
// Scores are cosine similarities in [0, 1].
type RankedResult struct {
	Document *Document
	Score    float64
}

// QAResult records one answered question: the question text, the generated
// (or fallback) answer, and the documents the answer was grounded on.
// A QAResult is created once per pipeline invocation and never mutated.
type QAResult struct {
	Id          ID
	Question    string
	Answer      string
	DocumentIds []ID
	CreatedAt   time.Time
}
