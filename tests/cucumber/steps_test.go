package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cucumber/godog"

	"quizcli/internal/cli"
)

type featureState struct {
	workDir     string
	bankPath    string
	historyPath string
	stdout      bytes.Buffer
	stderr      bytes.Buffer
	exitCode    int
}

func (state *featureState) reset() {
	state.workDir = ""
	state.bankPath = ""
	state.historyPath = ""
	state.stdout.Reset()
	state.stderr.Reset()
	state.exitCode = 0
}

func (state *featureState) run(stdin string, args ...string) {
	state.stdout.Reset()
	state.stderr.Reset()
	state.exitCode = cli.Run(args, strings.NewReader(stdin), &state.stdout, &state.stderr)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		dir, err := os.MkdirTemp("", "quizcli-cucumber-*")
		if err != nil {
			return ctx, err
		}
		state.workDir = dir
		state.historyPath = filepath.Join(dir, "history.db")
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if state.workDir != "" {
			_ = os.RemoveAll(state.workDir)
		}
		return ctx, nil
	})

	ctx.Step(`^a question bank:$`, state.aQuestionBank)
	ctx.Step(`^I start a session answering:$`, state.startSession)
	ctx.Step(`^I show the history$`, state.showHistory)
	ctx.Step(`^I validate the bank$`, state.validateBank)
	ctx.Step(`^the command succeeds$`, state.commandSucceeds)
	ctx.Step(`^the output contains "([^"]*)"$`, state.outputContains)
	ctx.Step(`^the history is empty$`, state.historyIsEmpty)
}

func (state *featureState) aQuestionBank(payload *godog.DocString) error {
	state.bankPath = filepath.Join(state.workDir, "questions.json")
	return os.WriteFile(state.bankPath, []byte(payload.Content), 0o644)
}

func (state *featureState) startSession(answers *godog.DocString) error {
	stdin := answers.Content
	if !strings.HasSuffix(stdin, "\n") {
		stdin += "\n"
	}
	state.run(stdin, "start",
		"--file", state.bankPath,
		"--history", state.historyPath,
		"--ui", "plain",
		"--no-color",
	)
	return nil
}

func (state *featureState) showHistory() error {
	state.run("", "history", "--history", state.historyPath)
	return nil
}

func (state *featureState) validateBank() error {
	state.run("", "validate", "--file", state.bankPath)
	return nil
}

func (state *featureState) commandSucceeds() error {
	if state.exitCode != 0 {
		return fmt.Errorf("expected exit 0, got %d (stderr: %s)", state.exitCode, state.stderr.String())
	}
	return nil
}

func (state *featureState) outputContains(expected string) error {
	if !strings.Contains(state.stdout.String(), expected) {
		return fmt.Errorf("expected output to contain %q, got:\n%s", expected, state.stdout.String())
	}
	return nil
}

func (state *featureState) historyIsEmpty() error {
	state.run("", "history", "--history", state.historyPath)
	if err := state.commandSucceeds(); err != nil {
		return err
	}
	return state.outputContains("No sessions recorded yet.")
}
