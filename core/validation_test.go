package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateDocument(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	tests := []struct {
		name    string
		doc     *Document
		wantErr error
	}{
		{
			name: "valid document",
			doc: &Document{
				Id:        1,
				Title:     "Django Security",
				FullText:  "Use CSRF protection and secure cookies",
				CreatedAt: validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid document with ID 0",
			doc: &Document{
				Title:    "Postgres Indexing",
				FullText: "B-tree indexes accelerate range filters",
			},
			wantErr: nil,
		},
		{
			name: "valid document with zero timestamp",
			doc: &Document{
				Title:    "Untimed",
				FullText: "Timestamp is set by the repository on insert",
			},
			wantErr: nil,
		},
		{
			name: "valid document with tags",
			doc: &Document{
				Title:    "Tagged",
				FullText: "Body",
				Tags:     []string{"security", "web"},
			},
			wantErr: nil,
		},
		{
			name:    "nil document",
			doc:     nil,
			wantErr: ErrInvalidDocument,
		},
		{
			name: "empty title",
			doc: &Document{
				FullText: "Body without a title",
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "empty full text",
			doc: &Document{
				Title: "Title without a body",
			},
			wantErr: ErrEmptyFullText,
		},
		{
			name: "future timestamp",
			doc: &Document{
				Title:     "From the future",
				FullText:  "Body",
				CreatedAt: futureTime,
			},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.doc)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateDocument() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateDocument() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQAResult(t *testing.T) {
	tests := []struct {
		name    string
		result  *QAResult
		wantErr error
	}{
		{
			name: "valid result",
			result: &QAResult{
				Question: "How do I secure a Django backend?",
				Answer:   "Use CSRF protection.",
			},
			wantErr: nil,
		},
		{
			name: "valid result without references",
			result: &QAResult{
				Question: "quantum entanglement in satellites",
				Answer:   "Not enough information in retrieved documents to answer this question.",
			},
			wantErr: nil,
		},
		{
			name:    "nil result",
			result:  nil,
			wantErr: ErrInvalidQAResult,
		},
		{
			name: "empty question",
			result: &QAResult{
				Answer: "An answer without a question",
			},
			wantErr: ErrEmptyQuestion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateQAResult(tt.result)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateQAResult() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateQAResult() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateTopK(t *testing.T) {
	for _, valid := range []int{1, 5, 20} {
		if err := ValidateTopK(valid); err != nil {
			t.Errorf("ValidateTopK(%d) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []int{0, -1, 21, 100} {
		if err := ValidateTopK(invalid); !errors.Is(err, ErrInvalidTopK) {
			t.Errorf("ValidateTopK(%d) error = %v, want %v", invalid, err, ErrInvalidTopK)
		}
	}
}

func TestClampTopK(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{7, 7},
		{20, 20},
		{50, 20},
	}
	for _, tt := range tests {
		if got := ClampTopK(tt.in); got != tt.want {
			t.Errorf("ClampTopK(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
