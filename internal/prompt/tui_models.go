package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

// selectModel is a cursor-driven single-choice list.
type selectModel struct {
	label   string
	options []string
	cursor  int
	done    bool
	aborted bool
	noColor bool
}

func newSelectModel(label string, options []string, cursor int, noColor bool) selectModel {
	return selectModel{label: label, options: options, cursor: cursor, noColor: noColor}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(stylize(m.label, m.noColor, labelStyle))
	b.WriteString("\n")
	for i, option := range m.options {
		if i == m.cursor {
			b.WriteString(stylize("> "+option, m.noColor, cursorStyle))
		} else {
			b.WriteString("  " + option)
		}
		b.WriteString("\n")
	}
	b.WriteString(stylize("enter: confirm", m.noColor, hintStyle))
	b.WriteString("\n")
	return b.String()
}

// multiSelectModel is a cursor-driven list with space-toggled selection.
type multiSelectModel struct {
	label    string
	options  []string
	cursor   int
	selected map[int]struct{}
	warn     bool
	done     bool
	aborted  bool
	noColor  bool
}

func newMultiSelectModel(label string, options []string, noColor bool) multiSelectModel {
	return multiSelectModel{
		label:    label,
		options:  options,
		selected: map[int]struct{}{},
		noColor:  noColor,
	}
}

func (m multiSelectModel) Init() tea.Cmd { return nil }

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case " ":
		if _, ok := m.selected[m.cursor]; ok {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = struct{}{}
		}
		m.warn = false
	case "enter":
		if len(m.selected) == 0 {
			m.warn = true
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(stylize(m.label, m.noColor, labelStyle))
	b.WriteString("\n")
	for i, option := range m.options {
		marker := "[ ]"
		if _, ok := m.selected[i]; ok {
			marker = "[x]"
		}
		line := marker + " " + option
		switch {
		case i == m.cursor:
			b.WriteString(stylize("> "+line, m.noColor, cursorStyle))
		case marker == "[x]":
			b.WriteString("  " + stylize(line, m.noColor, selectedStyle))
		default:
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if m.warn {
		b.WriteString(stylize("Select at least one option.", m.noColor, errorStyle))
		b.WriteString("\n")
	}
	b.WriteString(stylize("space: toggle, enter: confirm", m.noColor, hintStyle))
	b.WriteString("\n")
	return b.String()
}

// inputModel collects a non-blank line of text.
type inputModel struct {
	label   string
	input   textinput.Model
	value   string
	warn    bool
	done    bool
	aborted bool
	noColor bool
}

func newInputModel(label string, noColor bool) inputModel {
	input := textinput.New()
	input.Placeholder = "Type your answer"
	input.Focus()
	return inputModel{label: label, input: input, noColor: noColor}
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.warn = true
				return m, nil
			}
			m.value = value
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	var b strings.Builder
	b.WriteString(stylize(m.label, m.noColor, labelStyle))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.warn {
		b.WriteString(stylize("An answer is required.", m.noColor, errorStyle))
		b.WriteString("\n")
	}
	return b.String()
}
