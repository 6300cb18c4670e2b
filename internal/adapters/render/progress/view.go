package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/studyplan-cli/internal/domain"
)

const barWidth = 24

// RenderOptions controls the weekly goal the studied hours are measured
// against.
type RenderOptions struct {
	Goal float64
}

func renderView(hours float64, opts RenderOptions, s styles) string {
	goal := opts.Goal
	if goal <= 0 {
		goal = domain.DefaultWeeklyGoal
	}

	percent := domain.WeeklyPercent(hours, goal)

	lines := []string{
		s.title.Render("Weekly Progress"),
		s.hours.Render(fmt.Sprintf("%.0f hrs", hours)),
		s.goal.Render(fmt.Sprintf("Goal: %.0f hrs / week", goal)),
		renderBar(percent, barWidth, s),
		s.percent.Render(fmt.Sprintf("%.0f%% completed", math.Round(percent))),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(percent / 100 * float64(width)))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return s.barBracket.Render("[") +
		s.barFill.Render(strings.Repeat("█", filled)) +
		s.barEmpty.Render(strings.Repeat("░", width-filled)) +
		s.barBracket.Render("]")
}
