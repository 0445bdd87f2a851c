package cli

import "github.com/charmbracelet/lipgloss"

// Output styling. lipgloss degrades these to plain text when stdout is not
// a terminal or NO_COLOR is set.
var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	targetStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)
