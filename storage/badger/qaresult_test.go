package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/poiesic/askdocs/core"
	"github.com/poiesic/askdocs/storage"
)

func TestQAResultBasics(t *testing.T) {
	docRepo, qaRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { qaRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()

	result := &core.QAResult{
		Question:    "How should incidents be triaged?",
		Answer:      "Within fifteen minutes of detection.",
		DocumentIds: []core.ID{1, 2},
	}

	added, err := qaRepo.AddQAResult(ctx, result)
	if err != nil {
		t.Fatalf("Failed to add QA result: %v", err)
	}

	if added.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if added.CreatedAt.IsZero() {
		t.Fatal("Expected CreatedAt to be set on insert")
	}

	retrieved, err := qaRepo.GetQAResult(ctx, added.Id)
	if err != nil {
		t.Fatalf("Failed to get QA result: %v", err)
	}

	if retrieved.Question != result.Question {
		t.Fatalf("Expected question '%s', got '%s'", result.Question, retrieved.Question)
	}
	if len(retrieved.DocumentIds) != 2 {
		t.Fatalf("Expected 2 document references, got %d", len(retrieved.DocumentIds))
	}
}

func TestQAResultNotFound(t *testing.T) {
	docRepo, qaRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { qaRepo.Close(); docRepo.Close(); backend.Close() }()

	_, err = qaRepo.GetQAResult(context.Background(), 99999)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestGetRecentQAResults(t *testing.T) {
	docRepo, qaRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { qaRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	questions := []string{"q1", "q2", "q3", "q4", "q5"}
	for i, q := range questions {
		result := &core.QAResult{
			Question:  q,
			Answer:    "a",
			CreatedAt: now.Add(time.Duration(i) * time.Minute),
		}
		if _, err := qaRepo.AddQAResult(ctx, result); err != nil {
			t.Fatalf("Failed to add QA result: %v", err)
		}
	}

	recent, err := qaRepo.GetRecentQAResults(ctx, 3)
	if err != nil {
		t.Fatalf("Failed to get recent QA results: %v", err)
	}

	if len(recent) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(recent))
	}

	// Newest first
	expected := []string{"q5", "q4", "q3"}
	for i, q := range expected {
		if recent[i].Question != q {
			t.Fatalf("Expected result %d to be '%s', got '%s'", i, q, recent[i].Question)
		}
	}
}

func TestAddQAResult_RejectsEmptyQuestion(t *testing.T) {
	docRepo, qaRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { qaRepo.Close(); docRepo.Close(); backend.Close() }()

	_, err = qaRepo.AddQAResult(context.Background(), &core.QAResult{Answer: "orphan"})
	if !errors.Is(err, core.ErrInvalidQAResult) {
		t.Fatalf("Expected ErrInvalidQAResult, got %v", err)
	}

	recent, err := qaRepo.GetRecentQAResults(context.Background(), 10)
	if err != nil {
		t.Fatalf("Failed to get recent QA results: %v", err)
	}
	if len(recent) != 0 {
		t.Fatalf("Expected nothing stored, got %d results", len(recent))
	}
}

func TestGetQAResultsByDateRange(t *testing.T) {
	docRepo, qaRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { qaRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()
	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	// One result the day before, two on the target day, one the day after
	stamps := []time.Time{
		day.Add(-2 * time.Hour),
		day.Add(9 * time.Hour),
		day.Add(15 * time.Hour),
		day.Add(26 * time.Hour),
	}
	for i, ts := range stamps {
		result := &core.QAResult{
			Question:  []string{"before", "morning", "afternoon", "after"}[i],
			Answer:    "a",
			CreatedAt: ts,
		}
		if _, err := qaRepo.AddQAResult(ctx, result); err != nil {
			t.Fatalf("Failed to add QA result: %v", err)
		}
	}

	results, err := qaRepo.GetQAResultsByDateRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("Failed to get QA results by date range: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results in range, got %d", len(results))
	}

	// Oldest first within the range
	if results[0].Question != "morning" || results[1].Question != "afternoon" {
		t.Fatalf("Expected [morning afternoon], got [%s %s]", results[0].Question, results[1].Question)
	}
}

func TestGetRecentQAResults_LimitLargerThanStore(t *testing.T) {
	docRepo, qaRepo, backend, err := NewMemoryRepositories()
	if err != nil {
		t.Fatalf("Failed to create repositories: %v", err)
	}
	defer func() { qaRepo.Close(); docRepo.Close(); backend.Close() }()

	ctx := context.Background()

	if _, err := qaRepo.AddQAResult(ctx, &core.QAResult{Question: "only", Answer: "one"}); err != nil {
		t.Fatalf("Failed to add QA result: %v", err)
	}

	recent, err := qaRepo.GetRecentQAResults(ctx, 50)
	if err != nil {
		t.Fatalf("Failed to get recent QA results: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(recent))
	}
}
