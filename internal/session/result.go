package session

import (
	"math"
	"time"

	"quizcli/internal/question"
)

// AnswerRecord is the durable outcome of one terminal attempt at a
// question. Retries replace the record; at most one survives per
// question.
type AnswerRecord struct {
	QuestionID string        `json:"question_id"`
	Question   string        `json:"question"`
	Type       question.Type `json:"type"`
	// SelectedIndexes holds the chosen option indices, sorted ascending.
	// Single-choice answers carry exactly one entry.
	SelectedIndexes []int  `json:"selected_indexes,omitempty"`
	ResponseText    string `json:"response_text,omitempty"`
	Correct         bool   `json:"correct"`
	// CorrectAnswers is a denormalized copy of the expected answer
	// labels (or sample answers for free-form) for later review.
	CorrectAnswers []string  `json:"correct_answers,omitempty"`
	AnsweredAt     time.Time `json:"answered_at"`
}

// Result is the aggregate outcome of one session, handed to the history
// store at finalization.
type Result struct {
	ID             string         `json:"id"`
	FinishedAt     time.Time      `json:"finished_at"`
	TotalQuestions int            `json:"total_questions"`
	CorrectCount   int            `json:"correct_count"`
	Percentage     int            `json:"percentage"`
	DurationMs     int64          `json:"duration_ms"`
	TimedOut       bool           `json:"timed_out"`
	Answers        []AnswerRecord `json:"answers"`
}

// Duration returns the elapsed session time.
func (r *Result) Duration() time.Duration {
	return time.Duration(r.DurationMs) * time.Millisecond
}

// Percentage computes the rounded score percentage against the configured
// question total. A timed-out session keeps the full total, so truncated
// runs can never reach 100%.
func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// GradeBand maps a percentage to a qualitative band. Presentational
// only, not part of the persisted contract.
func GradeBand(percentage int) string {
	switch {
	case percentage >= 90:
		return "Excellent work!"
	case percentage >= 80:
		return "Great job!"
	case percentage >= 70:
		return "Good effort!"
	case percentage >= 60:
		return "Not bad, keep practicing!"
	default:
		return "Keep studying, you'll get there!"
	}
}
