package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"quizcli/internal/question"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return func(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		filePath := fs.String("file", "", "Question bank path")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *filePath == "" {
			fmt.Fprintln(stderr, "A question bank is required (--file).")
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		bank, err := question.LoadBank(*filePath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}
		fmt.Fprintf(stdout, "Question bank OK (%d questions)\n", len(bank.Questions))
		return ExitOK
	}
}
