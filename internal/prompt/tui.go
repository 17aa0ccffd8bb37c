package prompt

import (
	"fmt"
	"io"
	"sort"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI prompts through full-screen-less Bubble Tea programs: cursor
// selection for lists, space-toggle multi-selection, and a text input
// for free-form answers.
type TUI struct {
	in      io.Reader
	out     io.Writer
	noColor bool
}

// NewTUI wraps an input stream and output writer.
func NewTUI(in io.Reader, out io.Writer, noColor bool) *TUI {
	return &TUI{in: in, out: out, noColor: noColor}
}

func (t *TUI) run(model tea.Model) (tea.Model, error) {
	program := tea.NewProgram(model, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("run prompt: %w", err)
	}
	return final, nil
}

// Confirm presents a yes/no choice as a two-entry list.
func (t *TUI) Confirm(label string, defaultYes bool) (bool, error) {
	cursor := 1
	if defaultYes {
		cursor = 0
	}
	final, err := t.run(newSelectModel(label, []string{"Yes", "No"}, cursor, t.noColor))
	if err != nil {
		return false, err
	}
	model := final.(selectModel)
	if model.aborted {
		return false, ErrAborted
	}
	return model.cursor == 0, nil
}

// Select presents a single-choice list.
func (t *TUI) Select(label string, options []string) (int, error) {
	final, err := t.run(newSelectModel(label, options, 0, t.noColor))
	if err != nil {
		return 0, err
	}
	model := final.(selectModel)
	if model.aborted {
		return 0, ErrAborted
	}
	return model.cursor, nil
}

// MultiSelect presents a list with space-toggled selection and requires
// at least one choice before submitting.
func (t *TUI) MultiSelect(label string, options []string) ([]int, error) {
	final, err := t.run(newMultiSelectModel(label, options, t.noColor))
	if err != nil {
		return nil, err
	}
	model := final.(multiSelectModel)
	if model.aborted {
		return nil, ErrAborted
	}
	indexes := make([]int, 0, len(model.selected))
	for index := range model.selected {
		indexes = append(indexes, index)
	}
	sort.Ints(indexes)
	return indexes, nil
}

// Input collects non-blank free text.
func (t *TUI) Input(label string) (string, error) {
	final, err := t.run(newInputModel(label, t.noColor))
	if err != nil {
		return "", err
	}
	model := final.(inputModel)
	if model.aborted {
		return "", ErrAborted
	}
	return model.value, nil
}
