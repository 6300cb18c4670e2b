package progress

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	hours      lipgloss.Style
	goal       lipgloss.Style
	percent    lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		hours:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		goal:       lipgloss.NewStyle().Faint(true),
		percent:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
