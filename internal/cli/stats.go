package cli

import (
	"flag"
	"fmt"
	"io"

	"quizcli/internal/history"
)

func runStats(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to .quizcli.yml")
		historyPath := fs.String("history", "", "History database path")
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

		stats := history.Summarize(results)
		fmt.Fprintf(stdout, "Sessions:        %d\n", stats.Sessions)
		fmt.Fprintf(stdout, "Questions asked: %d\n", stats.TotalQuestions)
		fmt.Fprintf(stdout, "Correct answers: %d\n", stats.TotalCorrect)
		fmt.Fprintf(stdout, "Average score:   %d%%\n", stats.AveragePercentage)
		fmt.Fprintf(stdout, "Best score:      %d%%\n", stats.BestPercentage)
		fmt.Fprintf(stdout, "Worst score:     %d%%\n", stats.WorstPercentage)
		if stats.TimedOut > 0 {
			fmt.Fprintf(stdout, "Timed out:       %d\n", stats.TimedOut)
		}
		return ExitOK
	}
}
