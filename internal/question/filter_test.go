package question

import (
	"math/rand"
	"testing"
)

func sampleQuestions() []Question {
	return []Question{
		{ID: "q1", Category: "go"},
		{ID: "q2", Category: "linux"},
		{ID: "q3", Category: "go"},
		{ID: "q4"},
	}
}

// TestSelectCategory verifies case-insensitive category filtering.
func TestSelectCategory(t *testing.T) {
	selected := Select(sampleQuestions(), Filter{Category: "GO"})
	if len(selected) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(selected))
	}
	if selected[0].ID != "q1" || selected[1].ID != "q3" {
		t.Fatalf("expected q1,q3 in input order, got %s,%s", selected[0].ID, selected[1].ID)
	}
}

// TestSelectLimit verifies the limit applies after filtering.
func TestSelectLimit(t *testing.T) {
	selected := Select(sampleQuestions(), Filter{Limit: 2})
	if len(selected) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(selected))
	}
}

// TestSelectShuffleDeterministic verifies a seeded source shuffles
// reproducibly and keeps the same elements.
func TestSelectShuffleDeterministic(t *testing.T) {
	first := Select(sampleQuestions(), Filter{Shuffle: true, Rand: rand.New(rand.NewSource(7))})
	second := Select(sampleQuestions(), Filter{Shuffle: true, Rand: rand.New(rand.NewSource(7))})
	if len(first) != 4 || len(second) != 4 {
		t.Fatalf("expected 4 questions, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("expected identical order for identical seeds")
		}
	}
	seen := map[string]struct{}{}
	for _, q := range first {
		seen[q.ID] = struct{}{}
	}
	if len(seen) != 4 {
		t.Fatalf("shuffle lost questions: %v", seen)
	}
}

// TestSelectNoMatch verifies an unmatched category yields an empty slice.
func TestSelectNoMatch(t *testing.T) {
	selected := Select(sampleQuestions(), Filter{Category: "history"})
	if len(selected) != 0 {
		t.Fatalf("expected no questions, got %d", len(selected))
	}
}

// TestCategories verifies distinct sorted categories.
func TestCategories(t *testing.T) {
	categories := Categories(sampleQuestions())
	if len(categories) != 2 || categories[0] != "go" || categories[1] != "linux" {
		t.Fatalf("unexpected categories: %v", categories)
	}
}
