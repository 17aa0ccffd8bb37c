package history

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"quizcli/internal/question"
	"quizcli/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult(id string, percentage int) *session.Result {
	return &session.Result{
		ID:             id,
		FinishedAt:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		TotalQuestions: 2,
		CorrectCount:   percentage / 50,
		Percentage:     percentage,
		DurationMs:     90000,
		Answers: []session.AnswerRecord{
			{
				QuestionID:      "q1",
				Question:        "Which?",
				Type:            question.TypeSingleChoice,
				SelectedIndexes: []int{1},
				Correct:         true,
				CorrectAnswers:  []string{"B"},
				AnsweredAt:      time.Date(2026, 3, 1, 11, 59, 0, 0, time.UTC),
			},
		},
	}
}

// TestSaveAndLoadRoundTrip verifies every result field survives the
// store.
func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	want := sampleResult("r1", 50)
	if err := store.SaveResult(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	results, err := store.LoadResults(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got := results[0]
	if got.ID != want.ID || got.Percentage != want.Percentage || got.DurationMs != want.DurationMs {
		t.Fatalf("result mismatch: %+v", got)
	}
	if !got.FinishedAt.Equal(want.FinishedAt) {
		t.Fatalf("expected finished at %v, got %v", want.FinishedAt, got.FinishedAt)
	}
	if len(got.Answers) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(got.Answers))
	}
	answer := got.Answers[0]
	if answer.QuestionID != "q1" || !answer.Correct || answer.Type != question.TypeSingleChoice {
		t.Fatalf("answer mismatch: %+v", answer)
	}
	if len(answer.SelectedIndexes) != 1 || answer.SelectedIndexes[0] != 1 {
		t.Fatalf("expected selected [1], got %v", answer.SelectedIndexes)
	}
}

// TestLoadResultsInsertionOrder verifies chronological ordering.
func TestLoadResultsInsertionOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if err := store.SaveResult(ctx, sampleResult(fmt.Sprintf("r%d", i), 50)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	results, err := store.LoadResults(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i, result := range results {
		if result.ID != fmt.Sprintf("r%d", i) {
			t.Fatalf("expected insertion order, got %v", results)
		}
	}
}

// TestRetentionEvictsOldest verifies the 50-session cap evicts oldest
// first.
func TestRetentionEvictsOldest(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	for i := 0; i < maxSessions+5; i++ {
		if err := store.SaveResult(ctx, sampleResult(fmt.Sprintf("r%d", i), 50)); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	results, err := store.LoadResults(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(results) != maxSessions {
		t.Fatalf("expected %d retained sessions, got %d", maxSessions, len(results))
	}
	if results[0].ID != "r5" {
		t.Fatalf("expected oldest evicted, first retained r5, got %s", results[0].ID)
	}
}

// TestLoadResultsEmpty verifies an empty store loads cleanly.
func TestLoadResultsEmpty(t *testing.T) {
	store := openTestStore(t)
	results, err := store.LoadResults(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}
