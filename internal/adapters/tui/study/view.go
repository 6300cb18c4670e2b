package study

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/studyplan-cli/internal/domain"
)

var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (m Model) View() string {
	sections := []string{
		m.styles.title.Render("Smart Learning Planner"),
		m.viewForm(),
	}

	if m.notice != "" {
		sections = append(sections, m.styles.notice.Render(m.notice))
	}

	sections = append(sections,
		m.viewSmartPlan(),
		m.viewTimetable(),
		m.viewSavedPlans(),
		m.viewProgress(),
		m.help.View(m.keys),
	)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewForm() string {
	categoryLabel := "subject type?"
	if m.category >= 0 {
		categoryLabel = string(categoryOptions[m.category])
	}
	difficultyLabel := "difficulty?"
	if m.difficulty >= 0 {
		difficultyLabel = string(difficultyOptions[m.difficulty])
	}

	lines := []string{
		m.styles.cardTitle.Render("Create Study Plan"),
		m.fieldLine(focusSubject, "Subject", m.subject.View()),
		m.fieldLine(focusHours, "Hours/week", m.hours.View()),
		m.fieldLine(focusCategory, "Category", m.selectorView(focusCategory, categoryLabel)),
		m.fieldLine(focusDifficulty, "Difficulty", m.selectorView(focusDifficulty, difficultyLabel)),
	}
	if m.create.loading() {
		lines = append(lines, fmt.Sprintf("%s saving plan...", m.spinner.View()))
	}
	if m.create.failed() {
		lines = append(lines, m.styles.errText.Render("Failed to save study plan"))
	}

	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) fieldLine(focusIdx int, label, field string) string {
	marker := "  "
	style := m.styles.blurred
	if m.focus == focusIdx {
		marker = "> "
		style = m.styles.focused
	}

	return marker + style.Render(label) + " " + field
}

func (m Model) selectorView(focusIdx int, label string) string {
	if m.focus == focusIdx {
		return m.styles.focused.Render("< " + label + " >")
	}

	return m.styles.value.Render(label)
}

func (m Model) viewSmartPlan() string {
	switch {
	case m.smart.loading():
		return fmt.Sprintf("%s Generating smart plan...", m.spinner.View())
	case m.smart.failed():
		return m.styles.errText.Render("Failed to generate smart plan")
	case !m.smart.succeeded():
		return ""
	}

	result := m.smart.value
	lines := []string{m.styles.cardTitle.Render("Recommended Study Plan")}

	labels := make([]string, 0, len(result.Breakdown))
	for label := range result.Breakdown {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	for _, label := range labels {
		lines = append(lines, fmt.Sprintf("%s: %.1f hrs", m.styles.label.Render(label), result.Breakdown[label]))
	}

	if result.DailySuggestion != "" {
		lines = append(lines, m.styles.value.Render("Daily: "+result.DailySuggestion))
	}
	for _, tipText := range result.Tips {
		lines = append(lines, m.styles.tip.Render("• "+tipText))
	}

	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewTimetable() string {
	switch {
	case m.timetable.loading():
		return fmt.Sprintf("%s Generating AI timetable...", m.spinner.View())
	case m.timetable.failed():
		return m.styles.errText.Render("Failed to generate AI timetable")
	case !m.timetable.succeeded():
		return ""
	}

	record := m.timetable.value
	lines := []string{m.styles.cardTitle.Render("AI Weekly Timetable")}
	if record.Subject != "" {
		lines = append(lines, m.styles.faint.Render(record.Subject))
	}

	for _, day := range orderedDays(record.Days) {
		lines = append(lines, m.styles.dayHeader.Render(day))
		for _, task := range record.Days[day] {
			lines = append(lines, "  - "+task)
		}
	}

	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// orderedDays lists Monday..Sunday first, then any unexpected keys in
// alphabetical order. The server usually sends seven days but nothing
// here depends on that.
func orderedDays(days map[string][]string) []string {
	ordered := make([]string, 0, len(days))
	seen := make(map[string]struct{}, len(days))

	for _, day := range weekdayOrder {
		if _, ok := days[day]; ok {
			ordered = append(ordered, day)
			seen[day] = struct{}{}
		}
	}

	var extras []string
	for day := range days {
		if _, ok := seen[day]; !ok {
			extras = append(extras, day)
		}
	}
	sort.Strings(extras)

	return append(ordered, extras...)
}

func (m Model) viewSavedPlans() string {
	lines := []string{m.styles.cardTitle.Render("Your Saved Plans")}

	switch {
	case m.plans.loading():
		lines = append(lines, fmt.Sprintf("%s loading plans...", m.spinner.View()))
	case m.plans.failed() && len(m.plans.value) == 0:
		lines = append(lines, m.styles.errText.Render("Failed to fetch plans"))
	case len(m.plans.value) == 0:
		lines = append(lines, m.styles.faint.Render("No plans yet"))
	default:
		for _, plan := range m.plans.value {
			lines = append(lines, fmt.Sprintf("%s — %d hrs", plan.Subject, plan.HoursPerWeek))
		}
		if m.plans.failed() {
			lines = append(lines, m.styles.faint.Render("(refresh failed, showing last known plans)"))
		}
	}

	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewProgress() string {
	lines := []string{m.styles.cardTitle.Render("Weekly Progress")}

	switch {
	case m.progress.loading():
		lines = append(lines, fmt.Sprintf("%s loading progress...", m.spinner.View()))
	case m.progress.failed():
		lines = append(lines, m.styles.errText.Render("Progress unavailable"))
	default:
		hours := m.progress.value
		percent := domain.WeeklyPercent(hours, m.weeklyGoal)
		lines = append(lines,
			fmt.Sprintf("%.0f hrs (goal: %.0f hrs / week)", hours, m.weeklyGoal),
			m.progressBar(percent, 24),
			fmt.Sprintf("%.0f%% completed", math.Round(percent)),
		)
	}

	return m.styles.card.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) progressBar(percent float64, width int) string {
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

	return m.styles.barBracket.Render("[") +
		m.styles.barFill.Render(strings.Repeat("█", filled)) +
		m.styles.barEmpty.Render(strings.Repeat("░", width-filled)) +
		m.styles.barBracket.Render("]")
}
