package study

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/studyplan-cli/internal/application"
	"github.com/bnema/studyplan-cli/internal/domain"
	"github.com/bnema/studyplan-cli/internal/ports"
)

var (
	categoryOptions = []domain.Category{
		domain.CategoryTheory,
		domain.CategoryProblem,
		domain.CategoryPractical,
	}
	difficultyOptions = []domain.Difficulty{
		domain.DifficultyEasy,
		domain.DifficultyMedium,
		domain.DifficultyHard,
	}
)

const (
	focusSubject = iota
	focusHours
	focusCategory
	focusDifficulty
	focusCount
)

// ─── async messages ──────────────────────────────────────────────────────────

type plansLoadedMsg struct {
	plans []domain.SavedPlan
	err   error
}

type planCreatedMsg struct {
	plan domain.SavedPlan
	err  error
}

type smartPlanReadyMsg struct {
	result domain.SmartPlanResult
	err    error
}

type timetableReadyMsg struct {
	record domain.TimetableRecord
	err    error
}

type latestTimetableMsg struct {
	record domain.TimetableRecord
	err    error
}

type progressLoadedMsg struct {
	hours float64
	err   error
}

type logoutDoneMsg struct {
	err error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the study screen: a shared input form and independently
// loading operations, one slot each. Slots only ever change in Update,
// on the bubbletea event loop, so responses are applied one at a time no
// matter how many requests are in flight at the transport layer.
type Model struct {
	gateway ports.Gateway
	session *application.Session

	subject    textinput.Model
	hours      textinput.Model
	category   int
	difficulty int
	focus      int

	plans     slot[[]domain.SavedPlan]
	create    slot[domain.SavedPlan]
	smart     slot[domain.SmartPlanResult]
	timetable slot[domain.TimetableRecord]
	progress  slot[float64]

	weeklyGoal float64
	spinner    spinner.Model
	keys       keyMap
	help       help.Model
	styles     styles
	notice     string
	width      int
	loggedOut  bool
	logoutErr  error
}

func New(gateway ports.Gateway, session *application.Session, weeklyGoal float64) Model {
	subject := textinput.New()
	subject.Placeholder = "Subject"
	subject.CharLimit = 80
	subject.Focus()

	hours := textinput.New()
	hours.Placeholder = "Hours per week"
	hours.CharLimit = 3

	if weeklyGoal <= 0 {
		weeklyGoal = domain.DefaultWeeklyGoal
	}

	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	m := Model{
		gateway:    gateway,
		session:    session,
		subject:    subject,
		hours:      hours,
		category:   -1,
		difficulty: -1,
		weeklyGoal: weeklyGoal,
		spinner:    s,
		keys:       newKeyMap(),
		help:       help.New(),
		styles:     newStyles(),
	}

	// Mount hydration starts here so the loading state is already visible
	// on the first render.
	m.plans.start()
	m.timetable.start()
	m.progress.start()

	return m
}

// LoggedOut reports whether the user left the screen through logout
// rather than quit.
func (m Model) LoggedOut() bool { return m.loggedOut }

func (m Model) LogoutErr() error { return m.logoutErr }

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchPlansCmd(),
		m.latestTimetableCmd(),
		m.progressCmd(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case plansLoadedMsg:
		m.plans.finish(msg.plans, msg.err)
		return m, nil

	case planCreatedMsg:
		m.create.finish(msg.plan, msg.err)
		if msg.err != nil {
			return m, nil
		}
		m.subject.SetValue("")
		m.hours.SetValue("")
		m.notice = "Plan saved"
		if m.plans.start() {
			return m, m.fetchPlansCmd()
		}
		return m, nil

	case smartPlanReadyMsg:
		m.smart.finish(msg.result, msg.err)
		return m, nil

	case timetableReadyMsg:
		m.timetable.finish(msg.record, msg.err)
		return m, nil

	case latestTimetableMsg:
		if msg.err != nil {
			if errors.Is(msg.err, domain.ErrTimetableNotFound) {
				// No prior timetable is not a failure.
				m.timetable = slot[domain.TimetableRecord]{}
				return m, nil
			}
			m.timetable.finish(domain.TimetableRecord{}, msg.err)
			return m, nil
		}
		m.timetable.finish(msg.record, nil)
		// The one background write into the shared form: the subject
		// field only, never hours, category or difficulty.
		if msg.record.Subject != "" {
			m.subject.SetValue(msg.record.Subject)
		}
		return m, nil

	case progressLoadedMsg:
		m.progress.finish(msg.hours, msg.err)
		return m, nil

	case logoutDoneMsg:
		m.loggedOut = true
		m.logoutErr = msg.err
		return m, tea.Quit

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m.moveFocus(1), nil
	case key.Matches(msg, m.keys.PrevField):
		return m.moveFocus(-1), nil
	case key.Matches(msg, m.keys.AddPlan):
		return m.triggerCreate()
	case key.Matches(msg, m.keys.SmartPlan):
		return m.triggerSmartPlan()
	case key.Matches(msg, m.keys.Timetable):
		return m.triggerTimetable()
	case key.Matches(msg, m.keys.Refresh):
		return m.triggerListFetch()
	case key.Matches(msg, m.keys.Logout):
		return m, m.logoutCmd()
	}

	switch m.focus {
	case focusSubject:
		var cmd tea.Cmd
		m.subject, cmd = m.subject.Update(msg)
		return m, cmd
	case focusHours:
		var cmd tea.Cmd
		m.hours, cmd = m.hours.Update(msg)
		return m, cmd
	case focusCategory:
		m.category = cycleOption(m.category, len(categoryOptions), msg)
		return m, nil
	case focusDifficulty:
		m.difficulty = cycleOption(m.difficulty, len(difficultyOptions), msg)
		return m, nil
	}

	return m, nil
}

func (m Model) moveFocus(delta int) Model {
	m.focus = (m.focus + delta + focusCount) % focusCount

	m.subject.Blur()
	m.hours.Blur()
	switch m.focus {
	case focusSubject:
		m.subject.Focus()
	case focusHours:
		m.hours.Focus()
	}

	return m
}

func cycleOption(current, count int, msg tea.KeyMsg) int {
	switch msg.String() {
	case "right", "l", " ", "enter":
		if current >= count-1 {
			return -1
		}
		return current + 1
	case "left", "h":
		if current < 0 {
			return count - 1
		}
		if current == 0 {
			return -1
		}
		return current - 1
	default:
		return current
	}
}

// ─── trigger operations ──────────────────────────────────────────────────────

// formInput snapshots the shared form at trigger time; it is never
// re-read once a request is in flight.
func (m Model) formInput() domain.StudyPlanInput {
	hours, _ := strconv.Atoi(strings.TrimSpace(m.hours.Value()))

	input := domain.StudyPlanInput{
		Subject:      strings.TrimSpace(m.subject.Value()),
		HoursPerWeek: hours,
	}
	if m.category >= 0 && m.category < len(categoryOptions) {
		input.Category = categoryOptions[m.category]
	}
	if m.difficulty >= 0 && m.difficulty < len(difficultyOptions) {
		input.Difficulty = difficultyOptions[m.difficulty]
	}

	return input
}

func (m Model) triggerCreate() (tea.Model, tea.Cmd) {
	input := m.formInput()
	if err := input.ValidateBasic(); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	if !m.create.start() {
		return m, nil
	}

	m.notice = ""
	return m, m.createPlanCmd(input)
}

func (m Model) triggerSmartPlan() (tea.Model, tea.Cmd) {
	input := m.formInput()
	if err := input.Validate(); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	if !m.smart.start() {
		return m, nil
	}

	m.notice = ""
	return m, m.smartPlanCmd(input)
}

func (m Model) triggerTimetable() (tea.Model, tea.Cmd) {
	input := m.formInput()
	if err := input.Validate(); err != nil {
		m.notice = err.Error()
		return m, nil
	}
	if !m.timetable.start() {
		return m, nil
	}

	m.notice = ""
	return m, m.timetableCmd(input)
}

func (m Model) triggerListFetch() (tea.Model, tea.Cmd) {
	if !m.plans.start() {
		return m, nil
	}

	return m, m.fetchPlansCmd()
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) fetchPlansCmd() tea.Cmd {
	gateway := m.gateway
	return func() tea.Msg {
		plans, err := gateway.ListPlans(context.Background())
		return plansLoadedMsg{plans: plans, err: err}
	}
}

func (m Model) createPlanCmd(input domain.StudyPlanInput) tea.Cmd {
	gateway := m.gateway
	return func() tea.Msg {
		plan, err := gateway.CreatePlan(context.Background(), input.Subject, input.HoursPerWeek)
		return planCreatedMsg{plan: plan, err: err}
	}
}

func (m Model) smartPlanCmd(input domain.StudyPlanInput) tea.Cmd {
	gateway := m.gateway
	return func() tea.Msg {
		result, err := gateway.SmartPlan(context.Background(), input)
		return smartPlanReadyMsg{result: result, err: err}
	}
}

func (m Model) timetableCmd(input domain.StudyPlanInput) tea.Cmd {
	gateway := m.gateway
	return func() tea.Msg {
		record, err := gateway.GenerateTimetable(context.Background(), input)
		return timetableReadyMsg{record: record, err: err}
	}
}

func (m Model) latestTimetableCmd() tea.Cmd {
	gateway := m.gateway
	return func() tea.Msg {
		record, err := gateway.LatestTimetable(context.Background())
		return latestTimetableMsg{record: record, err: err}
	}
}

func (m Model) progressCmd() tea.Cmd {
	gateway := m.gateway
	return func() tea.Msg {
		hours, err := gateway.WeeklyProgress(context.Background())
		return progressLoadedMsg{hours: hours, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return logoutDoneMsg{err: session.ClearCredential(context.Background())}
	}
}
