package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"quizcli/internal/config"
	"quizcli/internal/history"
	"quizcli/internal/session"
)

func runHistory(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to .quizcli.yml")
		historyPath := fs.String("history", "", "History database path")
		last := fs.Int("last", 10, "Number of most recent sessions to show")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		results, code := loadHistory(*configPath, *historyPath, stderr)
		if code != ExitOK {
			return code
		}
		if len(results) == 0 {
			fmt.Fprintln(stdout, "No sessions recorded yet.")
			return ExitOK
		}

		if *last > 0 && *last < len(results) {
			results = results[len(results)-*last:]
		}
		for _, result := range results {
			fmt.Fprintln(stdout, formatResultLine(result))
		}
		return ExitOK
	}
}

// loadHistory opens the resolved history database and reads all results.
func loadHistory(configPath, historyPath string, stderr io.Writer) ([]session.Result, int) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return nil, ExitError
	}
	path := historyPath
	if path == "" {
		path = cfg.History
	}
	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open history: %v\n", err)
		return nil, ExitError
	}
	defer store.Close()
	results, err := store.LoadResults(context.Background())
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read history: %v\n", err)
		return nil, ExitError
	}
	return results, ExitOK
}

func formatResultLine(result session.Result) string {
	line := fmt.Sprintf("%s  %d/%d (%d%%) in %s",
		result.FinishedAt.Local().Format("2006-01-02 15:04"),
		result.CorrectCount, result.TotalQuestions, result.Percentage,
		result.Duration().Round(time.Second))
	if result.TimedOut {
		line += "  [timed out]"
	}
	return line
}
