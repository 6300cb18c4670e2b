package study

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	card       lipgloss.Style
	cardTitle  lipgloss.Style
	label      lipgloss.Style
	value      lipgloss.Style
	focused    lipgloss.Style
	blurred    lipgloss.Style
	notice     lipgloss.Style
	errText    lipgloss.Style
	faint      lipgloss.Style
	dayHeader  lipgloss.Style
	tip        lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		card:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1).MarginTop(1),
		cardTitle:  lipgloss.NewStyle().Bold(true),
		label:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		value:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		focused:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		blurred:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		notice:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		errText:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		faint:      lipgloss.NewStyle().Faint(true),
		dayHeader:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		tip:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
