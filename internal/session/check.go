package session

import (
	"sort"
	"strings"

	"quizcli/internal/question"
)

// CheckSingleChoice reports whether the selected index matches the sole
// resolved correct index.
func CheckSingleChoice(q question.Question, selected int) bool {
	return len(q.CorrectIndexes) == 1 && selected == q.CorrectIndexes[0]
}

// CheckMultipleChoice reports whether the selection matches the resolved
// correct indices exactly. Both sides are compared sorted ascending, so
// selection order never matters but subsets and supersets fail.
func CheckMultipleChoice(q question.Question, selected []int) bool {
	if len(selected) != len(q.CorrectIndexes) {
		return false
	}
	sorted := append([]int(nil), selected...)
	sort.Ints(sorted)
	for i := range sorted {
		if sorted[i] != q.CorrectIndexes[i] {
			return false
		}
	}
	return true
}

// MatchKeywords returns the keywords contained in the answer,
// case-insensitively. Informational only; free-form correctness is
// decided by self-assessment.
func MatchKeywords(keywords []string, answer string) []string {
	lowered := strings.ToLower(answer)
	matched := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if keyword == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(keyword)) {
			matched = append(matched, keyword)
		}
	}
	return matched
}
