package storage

import (
	"testing"
	"time"

	"github.com/poiesic/askdocs/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	doc := &core.Document{
		Id:        42,
		Title:     "Django Security",
		FullText:  "Use CSRF protection and secure cookies",
		Tags:      []string{"security", "web"},
		CreatedAt: now,
		UpdatedAt: now,
	}

	data := MarshalDocument(doc)
	got, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestDocumentRoundTrip_PersianText(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	doc := &core.Document{
		Id:        7,
		Title:     "سیاست مدیریت رخداد",
		FullText:  "رخدادها باید در پانزده دقیقه اول بررسی اولیه شوند.",
		CreatedAt: now,
		UpdatedAt: now,
	}

	data := MarshalDocument(doc)
	got, err := UnmarshalDocument(data)
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestQAResultRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	result := &core.QAResult{
		Id:          3,
		Question:    "How do I secure a Django backend?",
		Answer:      "Use CSRF protection.",
		DocumentIds: []core.ID{42, 7},
		CreatedAt:   now,
	}

	data := MarshalQAResult(result)
	got, err := UnmarshalQAResult(data)
	require.NoError(t, err)
	assert.Equal(t, result, got)
}

func TestQAResultRoundTrip_NoReferences(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	result := &core.QAResult{
		Id:        4,
		Question:  "quantum entanglement in satellites",
		Answer:    "Not enough information in retrieved documents to answer this question.",
		CreatedAt: now,
	}

	data := MarshalQAResult(result)
	got, err := UnmarshalQAResult(data)
	require.NoError(t, err)
	assert.Equal(t, result, got)
	assert.Empty(t, got.DocumentIds)
}

func TestIDRoundTrip(t *testing.T) {
	for _, id := range []core.ID{0, 1, 1 << 40, ^core.ID(0)} {
		data := MarshalID(id)
		got, err := UnmarshalID(data)
		require.NoError(t, err)
		assert.Equal(t, id, got)
	}
}

func TestUnmarshalDocument_Truncated(t *testing.T) {
	doc := &core.Document{Id: 1, Title: "t", FullText: "body text"}
	data := MarshalDocument(doc)

	_, err := UnmarshalDocument(data[:len(data)/2])
	assert.Error(t, err)
}
