package question

import (
	"math/rand"
	"sort"
	"strings"
)

// Filter narrows and orders a question sequence for one session.
type Filter struct {
	Category string
	Shuffle  bool
	Limit    int
	// Rand overrides the shuffle source in tests. Nil uses the package
	// default source.
	Rand *rand.Rand
}

// Select applies category filtering, optional shuffling, and an optional
// limit, in that order. The input slice is not modified. An empty result
// is not an error; the caller decides whether that is fatal.
func Select(questions []Question, filter Filter) []Question {
	selected := make([]Question, 0, len(questions))
	for _, q := range questions {
		if filter.Category != "" && !strings.EqualFold(q.Category, filter.Category) {
			continue
		}
		selected = append(selected, q)
	}
	if filter.Shuffle {
		shuffle := rand.Shuffle
		if filter.Rand != nil {
			shuffle = filter.Rand.Shuffle
		}
		shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
	}
	if filter.Limit > 0 && filter.Limit < len(selected) {
		selected = selected[:filter.Limit]
	}
	return selected
}

// Categories returns the distinct non-empty categories in sorted order.
func Categories(questions []Question) []string {
	seen := map[string]struct{}{}
	categories := make([]string, 0)
	for _, q := range questions {
		if q.Category == "" {
			continue
		}
		if _, ok := seen[q.Category]; ok {
			continue
		}
		seen[q.Category] = struct{}{}
		categories = append(categories, q.Category)
	}
	sort.Strings(categories)
	return categories
}
