package prompt

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// Terminal prompts over plain line-based input. It is the fallback when
// stdout is not a TTY, and the surface scripted tests drive.
type Terminal struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminal wraps an input stream and output writer.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{reader: bufio.NewReader(in), out: out}
}

// readLine reads a line, trimming line endings.
func (t *Terminal) readLine() (string, error) {
	line, err := t.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if err == io.EOF {
			return "", ErrAborted
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Confirm prompts for a yes/no response with a default.
func (t *Terminal) Confirm(label string, defaultYes bool) (bool, error) {
	suffix := "y/N"
	if defaultYes {
		suffix = "Y/n"
	}
	for {
		fmt.Fprintf(t.out, "%s [%s]: ", label, suffix)
		line, err := t.readLine()
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(strings.ToLower(line)) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			fmt.Fprintln(t.out, "Please answer yes or no.")
		}
	}
}

// Select prompts for one option from a numbered list.
func (t *Terminal) Select(label string, options []string) (int, error) {
	fmt.Fprintln(t.out, label)
	t.printOptions(options)
	for {
		fmt.Fprintf(t.out, "Choice [1-%d]: ", len(options))
		line, err := t.readLine()
		if err != nil {
			return 0, err
		}
		index, ok := parseChoice(line, len(options))
		if !ok {
			fmt.Fprintf(t.out, "Please enter a number between 1 and %d.\n", len(options))
			continue
		}
		return index, nil
	}
}

// MultiSelect prompts for one or more comma-separated options.
func (t *Terminal) MultiSelect(label string, options []string) ([]int, error) {
	fmt.Fprintln(t.out, label)
	t.printOptions(options)
	for {
		fmt.Fprintf(t.out, "Choices (comma-separated) [1-%d]: ", len(options))
		line, err := t.readLine()
		if err != nil {
			return nil, err
		}
		indexes, ok := parseChoices(line, len(options))
		if !ok || len(indexes) == 0 {
			fmt.Fprintf(t.out, "Please enter at least one number between 1 and %d.\n", len(options))
			continue
		}
		return indexes, nil
	}
}

// Input prompts for non-blank free text.
func (t *Terminal) Input(label string) (string, error) {
	for {
		fmt.Fprintf(t.out, "%s: ", label)
		line, err := t.readLine()
		if err != nil {
			return "", err
		}
		line = strings.TrimSpace(line)
		if line != "" {
			return line, nil
		}
		fmt.Fprintln(t.out, "An answer is required.")
	}
}

func (t *Terminal) printOptions(options []string) {
	for i, option := range options {
		fmt.Fprintf(t.out, "  %d) %s\n", i+1, option)
	}
}

// parseChoice converts 1-based user input to a 0-based index.
func parseChoice(line string, count int) (int, bool) {
	number, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || number < 1 || number > count {
		return 0, false
	}
	return number - 1, true
}

// parseChoices converts comma-separated 1-based input to sorted unique
// 0-based indexes.
func parseChoices(line string, count int) ([]int, bool) {
	parts := strings.Split(line, ",")
	seen := map[int]struct{}{}
	indexes := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		index, ok := parseChoice(part, count)
		if !ok {
			return nil, false
		}
		if _, dup := seen[index]; dup {
			continue
		}
		seen[index] = struct{}{}
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)
	return indexes, true
}
