package history

import (
	"testing"

	"quizcli/internal/session"
)

// TestSummarize verifies aggregate statistics over history.
func TestSummarize(t *testing.T) {
	results := []session.Result{
		{TotalQuestions: 4, CorrectCount: 4, Percentage: 100},
		{TotalQuestions: 4, CorrectCount: 2, Percentage: 50},
		{TotalQuestions: 5, CorrectCount: 1, Percentage: 20, TimedOut: true},
	}
	stats := Summarize(results)
	if stats.Sessions != 3 {
		t.Fatalf("expected 3 sessions, got %d", stats.Sessions)
	}
	if stats.TotalQuestions != 13 || stats.TotalCorrect != 7 {
		t.Fatalf("expected totals 13/7, got %d/%d", stats.TotalQuestions, stats.TotalCorrect)
	}
	if stats.AveragePercentage != 57 {
		t.Fatalf("expected average 57, got %d", stats.AveragePercentage)
	}
	if stats.BestPercentage != 100 || stats.WorstPercentage != 20 {
		t.Fatalf("expected best/worst 100/20, got %d/%d", stats.BestPercentage, stats.WorstPercentage)
	}
	if stats.TimedOut != 1 {
		t.Fatalf("expected 1 timed-out session, got %d", stats.TimedOut)
	}
}

// TestSummarizeEmpty verifies zero-value stats for an empty history.
func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)
	if stats.Sessions != 0 || stats.BestPercentage != 0 || stats.WorstPercentage != 0 {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}
