package question

import (
	"fmt"
	"sort"
	"strings"
)

// Issue captures a validation problem in a question bank.
type Issue struct {
	Field   string
	Message string
}

// ValidationError reports one or more validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error returns a readable message for validation failures.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return ""
	}
	parts := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return fmt.Sprintf("question bank validation failed: %s", strings.Join(parts, "; "))
}

type issueCollector struct {
	issues []Issue
}

func (collector *issueCollector) add(field, message string) {
	collector.issues = append(collector.issues, Issue{Field: field, Message: message})
}

func (collector *issueCollector) result() error {
	if len(collector.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: collector.issues}
}

// NormalizeBank trims whitespace, validates every question, and resolves
// correct-answer references to option indices.
func NormalizeBank(bank Bank) (Bank, error) {
	collector := &issueCollector{}
	if len(bank.Questions) == 0 {
		collector.add("questions", "must include at least one entry")
	}

	seenIDs := map[string]struct{}{}
	for i, q := range bank.Questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q.ID = strings.TrimSpace(q.ID)
		if q.ID == "" {
			collector.add(prefix+".id", "is required")
		} else {
			if _, exists := seenIDs[q.ID]; exists {
				collector.add(prefix+".id", fmt.Sprintf("duplicate id %q", q.ID))
			} else {
				seenIDs[q.ID] = struct{}{}
			}
		}

		q.Category = strings.TrimSpace(q.Category)
		q.Prompt = strings.TrimSpace(q.Prompt)
		if q.Prompt == "" {
			collector.add(prefix+".question", "is required")
		}
		q.Description = strings.TrimSpace(q.Description)
		q.Explanation = strings.TrimSpace(q.Explanation)
		q.SampleAnswers = trimStringSlice(q.SampleAnswers)
		q.Keywords = trimStringSlice(q.Keywords)

		if q.Type == "" {
			collector.add(prefix+".type", "is required")
			bank.Questions[i] = q
			continue
		}
		if !KnownType(q.Type) {
			collector.add(prefix+".type", fmt.Sprintf("unsupported type %q", q.Type))
			bank.Questions[i] = q
			continue
		}

		switch q.Type {
		case TypeSingleChoice, TypeMultipleChoice:
			normalizeChoice(&q, prefix, collector)
		case TypeFreeForm:
			if len(q.CorrectAnswers) > 0 {
				collector.add(prefix+".correctAnswers", "not applicable to free-form questions")
			}
		}
		bank.Questions[i] = q
	}

	if err := collector.result(); err != nil {
		return Bank{}, err
	}
	return bank, nil
}

func normalizeChoice(q *Question, prefix string, collector *issueCollector) {
	for optIndex, opt := range q.Options {
		opt.Text = strings.TrimSpace(opt.Text)
		opt.Value = strings.TrimSpace(opt.Value)
		if opt.Label() == "" {
			collector.add(fmt.Sprintf("%s.options[%d]", prefix, optIndex), "is required")
		}
		q.Options[optIndex] = opt
	}
	if len(q.Options) < 2 {
		collector.add(prefix+".options", "must include at least two entries")
		return
	}

	switch {
	case q.Type == TypeSingleChoice && len(q.CorrectAnswers) != 1:
		collector.add(prefix+".correctAnswers", "must include exactly one entry for single-choice")
		return
	case q.Type == TypeMultipleChoice && len(q.CorrectAnswers) == 0:
		collector.add(prefix+".correctAnswers", "must include at least one entry")
		return
	}

	resolved := make([]int, 0, len(q.CorrectAnswers))
	for refIndex, ref := range q.CorrectAnswers {
		index, err := ResolveAnswerIndex(q.Options, ref)
		if err != nil {
			collector.add(fmt.Sprintf("%s.correctAnswers[%d]", prefix, refIndex), err.Error())
			continue
		}
		resolved = append(resolved, index)
	}
	if len(resolved) != len(q.CorrectAnswers) {
		return
	}
	sort.Ints(resolved)
	q.CorrectIndexes = resolved
}

func trimStringSlice(values []string) []string {
	if len(values) == 0 {
		return values
	}
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		trimmed = append(trimmed, strings.TrimSpace(value))
	}
	return trimmed
}
