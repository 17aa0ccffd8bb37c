package session

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle  = lipgloss.NewStyle().Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	revealStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true)
)

// stylize applies optional color styling.
func stylize(text string, noColor bool, style lipgloss.Style) string {
	if noColor {
		return text
	}
	return style.Render(text)
}
