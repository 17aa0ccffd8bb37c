package cli

import (
	"flag"
	"fmt"
	"io"

	"quizcli/internal/config"
	"quizcli/internal/question"
)

func runList(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to .quizcli.yml")
		filePath := fs.String("file", "", "Question bank path")
		category := fs.String("category", "", "Only list questions from this category")
		categoriesOnly := fs.Bool("categories", false, "List distinct categories instead of questions")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		cfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		path := *filePath
		if path == "" {
			path = cfg.Questions
		}
		if path == "" {
			fmt.Fprintln(stderr, "A question bank is required (--file or the questions field in .quizcli.yml).")
			return ExitUsage
		}

		bank, err := question.LoadBank(path)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load questions: %v\n", err)
			return ExitError
		}

		if *categoriesOnly {
			for _, name := range question.Categories(bank.Questions) {
				fmt.Fprintln(stdout, name)
			}
			return ExitOK
		}

		selected := question.Select(bank.Questions, question.Filter{Category: *category})
		for _, q := range selected {
			line := fmt.Sprintf("%-12s %-16s %s", q.ID, q.Type, q.Prompt)
			if q.Category != "" {
				line += " [" + q.Category + "]"
			}
			fmt.Fprintln(stdout, line)
		}
		fmt.Fprintf(stdout, "%d questions\n", len(selected))
		return ExitOK
	}
}
