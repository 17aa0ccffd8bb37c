package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"quizcli/internal/config"
	"quizcli/internal/history"
	"quizcli/internal/prompt"
	"quizcli/internal/question"
	"quizcli/internal/session"
)

func runStart(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to .quizcli.yml")
		filePath := fs.String("file", "", "Question bank path")
		category := fs.String("category", "", "Only ask questions from this category")
		shuffle := fs.Bool("shuffle", false, "Shuffle question order")
		limit := fs.Int("limit", 0, "Maximum number of questions (0 = all)")
		timeLimit := fs.Duration("time-limit", 0, "Session time limit (0 = unbounded)")
		noRetry := fs.Bool("no-retry", false, "Do not offer retries on incorrect answers")
		uiMode := fs.String("ui", "", "Prompt surface: auto, tui, or plain")
		historyPath := fs.String("history", "", "History database path")
		noColor := fs.Bool("no-color", false, "Disable colored output")
		verbose := fs.Bool("verbose", false, "Enable debug logging")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		set := map[string]bool{}
		fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		resolved := resolveStartOptions(cfg, set, startFlags{
			file:        *filePath,
			category:    *category,
			shuffle:     *shuffle,
			limit:       *limit,
			timeLimit:   *timeLimit,
			noRetry:     *noRetry,
			uiMode:      *uiMode,
			historyPath: *historyPath,
		})
		if resolved.file == "" {
			fmt.Fprintln(stderr, "A question bank is required (--file or the questions field in .quizcli.yml).")
			return ExitUsage
		}

		logger := logrus.New()
		logger.SetOutput(stderr)
		if *verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}

		bank, err := question.LoadBank(resolved.file)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}
		selected := question.Select(bank.Questions, question.Filter{
			Category: resolved.category,
			Shuffle:  resolved.shuffle,
			Limit:    resolved.limit,
		})
		if len(selected) == 0 {
			fmt.Fprintln(stderr, "No questions matched the selection.")
			return ExitError
		}

		decision, err := resolveUIMode(resolved.uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}
		var prompter prompt.Prompter
		if decision.useTUI {
			prompter = prompt.NewTUI(stdin, stdout, *noColor)
		} else {
			prompter = prompt.NewTerminal(stdin, stdout)
		}

		// History stays best-effort: an unopenable store downgrades to
		// a session without persistence.
		var sink session.ResultSink
		store, err := history.Open(resolved.historyPath)
		if err != nil {
			logger.WithError(err).Warn("history unavailable, session will not be saved")
		} else {
			defer store.Close()
			sink = store
		}

		engine, err := session.New(session.Config{
			Questions:  selected,
			TimeLimit:  resolved.timeLimit,
			AllowRetry: resolved.allowRetry,
		}, prompter, session.Options{
			Out:     stdout,
			Sink:    sink,
			Logger:  logger,
			NoColor: *noColor,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Failed to start session: %v\n", err)
			return ExitError
		}

		result, err := engine.Run(context.Background())
		if err != nil {
			fmt.Fprintf(stderr, "Session failed: %v\n", err)
			return ExitError
		}
		if result == nil {
			fmt.Fprintln(stdout, "Session cancelled.")
		}
		return ExitOK
	}
}

// startFlags carries the raw flag values for merging with config.
type startFlags struct {
	file        string
	category    string
	shuffle     bool
	limit       int
	timeLimit   time.Duration
	noRetry     bool
	uiMode      string
	historyPath string
}

type startOptions struct {
	file        string
	category    string
	shuffle     bool
	limit       int
	timeLimit   time.Duration
	allowRetry  bool
	uiMode      string
	historyPath string
}

// resolveStartOptions merges flags over config; a flag wins only when it
// was set on the command line.
func resolveStartOptions(cfg config.Config, set map[string]bool, flags startFlags) startOptions {
	resolved := startOptions{
		file:        cfg.Questions,
		category:    flags.category,
		shuffle:     cfg.Shuffle,
		limit:       cfg.Limit,
		timeLimit:   cfg.TimeLimitDuration,
		allowRetry:  cfg.AllowRetry(),
		uiMode:      cfg.UI,
		historyPath: cfg.History,
	}
	if set["file"] {
		resolved.file = flags.file
	}
	if set["shuffle"] {
		resolved.shuffle = flags.shuffle
	}
	if set["limit"] {
		resolved.limit = flags.limit
	}
	if set["time-limit"] {
		resolved.timeLimit = flags.timeLimit
	}
	if set["no-retry"] {
		resolved.allowRetry = !flags.noRetry
	}
	if set["ui"] {
		resolved.uiMode = flags.uiMode
	}
	if set["history"] {
		resolved.historyPath = flags.historyPath
	}
	return resolved
}
