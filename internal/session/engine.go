// Package session drives an interactive quiz run: question presentation,
// answer collection, the per-question retry loop, the session deadline,
// and score aggregation.
package session

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"quizcli/internal/prompt"
	"quizcli/internal/question"
)

// Config fixes the question sequence and policy for one session. The
// sequence is expected to be filtered, shuffled, and limited already;
// questions are asked in input order.
type Config struct {
	Questions []question.Question
	// TimeLimit bounds the session wall clock. Zero disables it.
	TimeLimit time.Duration
	// AllowRetry re-offers a question after an incorrect attempt.
	AllowRetry bool
}

// ResultSink receives the finished session result. Persistence is
// best-effort; sink errors are logged, never escalated.
type ResultSink interface {
	SaveResult(ctx context.Context, result *Result) error
}

// Options carries the engine's collaborators. Zero values get sane
// defaults.
type Options struct {
	Out     io.Writer
	Now     func() time.Time
	Sink    ResultSink
	Logger  logrus.FieldLogger
	NoColor bool
}

// Engine runs one quiz session. It owns the running answer list and
// score; nothing else mutates them mid-session.
type Engine struct {
	questions  []question.Question
	timeLimit  time.Duration
	allowRetry bool

	prompter prompt.Prompter
	out      io.Writer
	now      func() time.Time
	sink     ResultSink
	log      logrus.FieldLogger
	noColor  bool
}

// New constructs an engine. An empty question sequence is rejected; the
// front-end is expected to have checked for an empty selection already.
func New(cfg Config, prompter prompt.Prompter, opts Options) (*Engine, error) {
	if len(cfg.Questions) == 0 {
		return nil, fmt.Errorf("session requires at least one question")
	}
	if prompter == nil {
		return nil, fmt.Errorf("session requires a prompter")
	}
	engine := &Engine{
		questions:  cfg.Questions,
		timeLimit:  cfg.TimeLimit,
		allowRetry: cfg.AllowRetry,
		prompter:   prompter,
		out:        opts.Out,
		now:        opts.Now,
		sink:       opts.Sink,
		log:        opts.Logger,
		noColor:    opts.NoColor,
	}
	if engine.out == nil {
		engine.out = io.Discard
	}
	if engine.now == nil {
		engine.now = time.Now
	}
	if engine.log == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		engine.log = silent
	}
	return engine, nil
}

// Run executes the session protocol: confirmation, the question loop
// with its deadline, and finalization. A declined confirmation returns
// (nil, nil) with no side effects. Prompt failures and unsupported
// question types abort the session; nothing is persisted on that path.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	label := fmt.Sprintf("Start the quiz? (%d questions", len(e.questions))
	if e.timeLimit > 0 {
		label += fmt.Sprintf(", %s time limit", e.timeLimit)
	}
	label += ")"
	confirmed, err := e.prompter.Confirm(label, true)
	if err != nil {
		return nil, fmt.Errorf("confirm start: %w", err)
	}
	if !confirmed {
		return nil, nil
	}

	start := e.now()
	var deadline time.Time
	if e.timeLimit > 0 {
		deadline = start.Add(e.timeLimit)
	}
	e.log.WithFields(logrus.Fields{
		"questions":  len(e.questions),
		"time_limit": e.timeLimit,
		"retry":      e.allowRetry,
	}).Debug("session started")

	answers := make([]AnswerRecord, 0, len(e.questions))
	correct := 0
	timedOut := false
	for i, q := range e.questions {
		if e.expired(deadline) {
			timedOut = true
			break
		}
		record, err := e.askQuestion(q, i+1, len(e.questions), deadline)
		if err != nil {
			return nil, err
		}
		answers = append(answers, record)
		if record.Correct {
			correct++
		}
	}
	if timedOut {
		fmt.Fprintln(e.out)
		fmt.Fprintln(e.out, stylize("Time is up! Finishing the session.", e.noColor, wrongStyle))
	}

	return e.finalize(ctx, start, answers, correct, timedOut), nil
}

// expired reports whether the session deadline has passed. The deadline
// is observed at safe points only: an answer prompt already in flight
// completes before the forced finish is seen.
func (e *Engine) expired(deadline time.Time) bool {
	return !deadline.IsZero() && !e.now().Before(deadline)
}

// finalize assembles the session result, persists it best-effort, and
// prints the summary.
func (e *Engine) finalize(ctx context.Context, start time.Time, answers []AnswerRecord, correct int, timedOut bool) *Result {
	finished := e.now()
	result := &Result{
		ID:             uuid.NewString(),
		FinishedAt:     finished,
		TotalQuestions: len(e.questions),
		CorrectCount:   correct,
		Percentage:     Percentage(correct, len(e.questions)),
		DurationMs:     finished.Sub(start).Milliseconds(),
		TimedOut:       timedOut,
		Answers:        answers,
	}

	fmt.Fprintln(e.out)
	fmt.Fprintln(e.out, stylize(fmt.Sprintf("Score: %d/%d (%d%%) in %s",
		result.CorrectCount, result.TotalQuestions, result.Percentage,
		result.Duration().Round(time.Second)), e.noColor, summaryStyle))
	fmt.Fprintln(e.out, GradeBand(result.Percentage))

	if e.sink != nil {
		if err := e.sink.SaveResult(ctx, result); err != nil {
			e.log.WithError(err).Warn("failed to save session result")
		}
	}
	return result
}
