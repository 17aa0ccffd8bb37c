package session

import (
	"fmt"
	"strings"
	"time"

	"quizcli/internal/question"
)

// askQuestion runs the per-question retry loop. Each attempt produces a
// fresh terminal record; retrying discards the previous one, so exactly
// one record is ever returned per question. Retries are unbounded.
func (e *Engine) askQuestion(q question.Question, number, total int, deadline time.Time) (AnswerRecord, error) {
	for {
		record, err := e.attempt(q, number, total)
		if err != nil {
			return AnswerRecord{}, err
		}
		if record.Correct || !e.allowRetry {
			return record, nil
		}
		again, err := e.prompter.Confirm("Try again?", false)
		if err != nil {
			return AnswerRecord{}, fmt.Errorf("retry prompt: %w", err)
		}
		if !again {
			return record, nil
		}
		// Re-presentation is a deadline safe point: past it, the
		// incorrect attempt stands.
		if e.expired(deadline) {
			return record, nil
		}
	}
}

// attempt presents a question once, collects and validates the answer,
// and emits feedback before any retry decision is made.
func (e *Engine) attempt(q question.Question, number, total int) (AnswerRecord, error) {
	e.printHeader(q, number, total)

	record := AnswerRecord{
		QuestionID: q.ID,
		Question:   q.Prompt,
		Type:       q.Type,
	}
	switch q.Type {
	case question.TypeSingleChoice:
		selected, err := e.prompter.Select("Select an answer:", optionLabels(q))
		if err != nil {
			return AnswerRecord{}, fmt.Errorf("answer prompt: %w", err)
		}
		record.SelectedIndexes = []int{selected}
		record.Correct = CheckSingleChoice(q, selected)
		record.CorrectAnswers = correctLabels(q)
	case question.TypeMultipleChoice:
		selected, err := e.prompter.MultiSelect("Select all that apply:", optionLabels(q))
		if err != nil {
			return AnswerRecord{}, fmt.Errorf("answer prompt: %w", err)
		}
		record.SelectedIndexes = selected
		record.Correct = CheckMultipleChoice(q, selected)
		record.CorrectAnswers = correctLabels(q)
	case question.TypeFreeForm:
		correct, text, err := e.freeFormAttempt(q)
		if err != nil {
			return AnswerRecord{}, err
		}
		record.ResponseText = text
		record.Correct = correct
		record.CorrectAnswers = q.SampleAnswers
	default:
		return AnswerRecord{}, fmt.Errorf("unsupported question type %q", q.Type)
	}
	record.AnsweredAt = e.now()

	e.printFeedback(q, record)
	return record, nil
}

// freeFormAttempt collects free text, surfaces keyword hints, shows
// sample answers, and resolves correctness by self-assessment.
func (e *Engine) freeFormAttempt(q question.Question) (bool, string, error) {
	text, err := e.prompter.Input("Your answer")
	if err != nil {
		return false, "", fmt.Errorf("answer prompt: %w", err)
	}

	if len(q.Keywords) > 0 {
		matched := MatchKeywords(q.Keywords, text)
		if len(matched) > 0 {
			fmt.Fprintln(e.out, stylize("Your answer mentions: "+strings.Join(matched, ", "), e.noColor, detailStyle))
		} else {
			fmt.Fprintln(e.out, stylize("Hint: expected keywords were "+strings.Join(q.Keywords, ", "), e.noColor, detailStyle))
		}
	}
	if len(q.SampleAnswers) > 0 {
		fmt.Fprintln(e.out, stylize("Sample answer: "+strings.Join(q.SampleAnswers, " / "), e.noColor, revealStyle))
	}

	assessment, err := e.prompter.Select("How was your answer?", []string{
		"Correct",
		"Partially correct",
		"Incorrect",
	})
	if err != nil {
		return false, "", fmt.Errorf("assessment prompt: %w", err)
	}
	// Partial credit counts as correct.
	return assessment != 2, text, nil
}

func (e *Engine) printHeader(q question.Question, number, total int) {
	fmt.Fprintln(e.out)
	header := fmt.Sprintf("Question %d/%d", number, total)
	if q.Category != "" {
		header += " [" + q.Category + "]"
	}
	fmt.Fprintln(e.out, stylize(header, e.noColor, detailStyle))
	fmt.Fprintln(e.out, stylize(q.Prompt, e.noColor, promptStyle))
	if q.Description != "" {
		fmt.Fprintln(e.out, stylize(q.Description, e.noColor, detailStyle))
	}
}

// printFeedback reports correctness and reveals the expected answers
// immediately after the attempt, before any retry decision.
func (e *Engine) printFeedback(q question.Question, record AnswerRecord) {
	if record.Correct {
		fmt.Fprintln(e.out, stylize("Correct!", e.noColor, correctStyle))
	} else {
		fmt.Fprintln(e.out, stylize("Incorrect.", e.noColor, wrongStyle))
		// Free-form sample answers were already revealed before the
		// self-assessment.
		if q.Type != question.TypeFreeForm && len(record.CorrectAnswers) > 0 {
			label := "Correct answer"
			if len(record.CorrectAnswers) > 1 {
				label += "s"
			}
			fmt.Fprintln(e.out, stylize(label+": "+strings.Join(record.CorrectAnswers, ", "), e.noColor, revealStyle))
		}
	}
	if q.Explanation != "" {
		fmt.Fprintln(e.out, stylize("Explanation: "+q.Explanation, e.noColor, detailStyle))
	}
}

func optionLabels(q question.Question) []string {
	labels := make([]string, len(q.Options))
	for i, opt := range q.Options {
		labels[i] = opt.Label()
	}
	return labels
}

func correctLabels(q question.Question) []string {
	labels := make([]string, len(q.CorrectIndexes))
	for i, index := range q.CorrectIndexes {
		labels[i] = q.Options[index].Label()
	}
	return labels
}
