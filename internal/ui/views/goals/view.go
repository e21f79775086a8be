package goals

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fittrack/internal/modules/goals/dto"
	"fittrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type GoalsPort interface {
	Set(ctx context.Context, weeklyHours, dailyLimit string) (dto.GoalOutput, error)
	Latest(ctx context.Context) (dto.GoalOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type SetMsg struct {
	Out dto.GoalOutput
	Err error
}

type LatestLoadedMsg struct {
	Out dto.GoalOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Goal Setting tab. Submitting replaces whatever goal was
// stored before; the status line below the form always shows the current
// pair once one exists.
type Model struct {
	port  GoalsPort
	theme theme.Theme

	weekly     textinput.Model
	daily      textinput.Model
	focus      int
	submitting bool

	goalLine  string
	status    string
	statusErr bool
	width     int
	height    int
}

func New(port GoalsPort, th theme.Theme) Model {
	weekly := textinput.New()
	weekly.Placeholder = "hours per week"
	weekly.Width = 24
	weekly.Focus()

	daily := textinput.New()
	daily.Placeholder = "calories per day"
	daily.Width = 24

	return Model{port: port, theme: th, weekly: weekly, daily: daily}
}

func (m Model) Init() tea.Cmd {
	return m.loadLatestCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case LatestLoadedMsg:
		// A missing goal is the normal first-run state, not an error worth
		// surfacing on the tab.
		if msg.Err == nil {
			m.goalLine = msg.Out.StatusLine
		}
		return m, nil

	case SetMsg:
		m.submitting = false
		if msg.Err != nil {
			m.status = "Input error: " + msg.Err.Error()
			m.statusErr = true
			return m, nil
		}
		m.status = "Goals set successfully!"
		m.statusErr = false
		m.goalLine = msg.Out.StatusLine
		m.weekly.SetValue("")
		m.daily.SetValue("")
		m.setFocus(0)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.submitCmd()
		case "up", "down":
			m.setFocus((m.focus + 1) % 2)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.weekly, cmd = m.weekly.Update(msg)
	} else {
		m.daily, cmd = m.daily.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.theme.Title.Render("Set Your Goals") + "\n\n")
	sb.WriteString(m.formRow("Weekly Exercise Goal (hours):", m.weekly.View(), m.focus == 0))
	sb.WriteString(m.formRow("Daily Calorie Limit:", m.daily.View(), m.focus == 1))
	sb.WriteString("\n" + m.statusView() + "\n")
	if m.goalLine != "" {
		sb.WriteString("\n" + m.theme.Accent.Render(m.goalLine) + "\n")
	}
	sb.WriteString("\n" + m.theme.Muted.Render("enter: set goals  ctrl+v: view summary  esc: exit"))
	return sb.String()
}

func (m Model) Filtering() bool { return false }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) setFocus(focus int) {
	m.focus = focus
	m.weekly.Blur()
	m.daily.Blur()
	if focus == 0 {
		m.weekly.Focus()
	} else {
		m.daily.Focus()
	}
}

func (m Model) formRow(label, field string, focused bool) string {
	style := m.theme.Label
	if focused {
		style = m.theme.Accent
	}
	return lipgloss.NewStyle().Width(32).Render(style.Render(label)) + field + "\n"
}

func (m Model) statusView() string {
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return m.theme.Error.Render(m.status)
	}
	return m.theme.Success.Render(m.status)
}

func (m Model) submitCmd() tea.Cmd {
	weekly := m.weekly.Value()
	daily := m.daily.Value()
	return func() tea.Msg {
		out, err := m.port.Set(context.Background(), weekly, daily)
		return SetMsg{Out: out, Err: err}
	}
}

func (m Model) loadLatestCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Latest(context.Background())
		return LatestLoadedMsg{Out: out, Err: err}
	}
}
