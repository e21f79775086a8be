package activity

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fittrack/internal/modules/activity/domain"
	"fittrack/internal/modules/activity/dto"
	"fittrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ActivityPort interface {
	Log(ctx context.Context, name, duration, intensity string) (dto.ActivityOutput, error)
	ListLines(ctx context.Context) ([]string, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LinesLoadedMsg struct {
	Lines []string
	Err   error
}

type LoggedMsg struct {
	Out dto.ActivityOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

const (
	focusName = iota
	focusDuration
	focusIntensity
	focusCount
)

// Model is the Activity Tracking tab: a three-field entry form over the
// logged-activity list. One submission runs the whole validate-persist-
// refresh cycle before the form accepts the next one.
type Model struct {
	port   ActivityPort
	theme  theme.Theme
	banner string

	name       textinput.Model
	duration   textinput.Model
	intensity  int // index into domain.IntensityLevels(), -1 while unset
	focus      int
	submitting bool

	list      viewport.Model
	status    string
	statusErr bool
	width     int
	height    int
}

func New(port ActivityPort, th theme.Theme, banner string) Model {
	name := textinput.New()
	name.Placeholder = "Activity Name"
	name.Width = 24
	name.Focus()

	duration := textinput.New()
	duration.Placeholder = "Duration (min)"
	duration.Width = 24

	return Model{
		port:      port,
		theme:     th,
		banner:    banner,
		name:      name,
		duration:  duration,
		intensity: -1,
		list:      viewport.New(0, 0),
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadLinesCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case LinesLoadedMsg:
		if msg.Err != nil {
			m.status = "load activities: " + msg.Err.Error()
			m.statusErr = true
			return m, nil
		}
		m.list.SetContent(strings.Join(msg.Lines, "\n"))
		return m, nil

	case LoggedMsg:
		m.submitting = false
		if msg.Err != nil {
			m.status = "Input error: " + msg.Err.Error()
			m.statusErr = true
			return m, nil
		}
		m.status = "Activity logged successfully!"
		m.statusErr = false
		m.name.SetValue("")
		m.duration.SetValue("")
		m.intensity = -1
		m.setFocus(focusName)
		return m, m.loadLinesCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			return m, m.submitCmd()
		case "up":
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		case "down":
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case "left", "right", " ":
			if m.focus == focusIntensity {
				m.cycleIntensity(msg.String())
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusName:
		m.name, cmd = m.name.Update(msg)
	case focusDuration:
		m.duration, cmd = m.duration.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	if m.banner != "" {
		sb.WriteString(m.theme.Accent.Render(m.banner) + "\n\n")
	}
	sb.WriteString(m.theme.Title.Render("Log an Activity") + "\n\n")
	sb.WriteString(m.formRow("Activity Name:", m.name.View(), m.focus == focusName))
	sb.WriteString(m.formRow("Duration (min):", m.duration.View(), m.focus == focusDuration))
	sb.WriteString(m.formRow("Intensity:", m.intensityView(), m.focus == focusIntensity))
	sb.WriteString("\n" + m.statusView() + "\n\n")
	sb.WriteString(m.theme.Pane.Width(max(m.width-4, 20)).Render(m.list.View()))
	return sb.String()
}

// Filtering always reports false: the activity form has no search filter,
// but the app model treats every tab uniformly.
func (m Model) Filtering() bool { return false }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) setFocus(focus int) {
	m.focus = focus
	m.name.Blur()
	m.duration.Blur()
	switch focus {
	case focusName:
		m.name.Focus()
	case focusDuration:
		m.duration.Focus()
	}
}

func (m *Model) cycleIntensity(key string) {
	levels := domain.IntensityLevels()
	switch key {
	case "left":
		if m.intensity <= 0 {
			m.intensity = len(levels) - 1
		} else {
			m.intensity--
		}
	default:
		m.intensity = (m.intensity + 1) % len(levels)
	}
}

func (m Model) intensityValue() string {
	levels := domain.IntensityLevels()
	if m.intensity < 0 || m.intensity >= len(levels) {
		return ""
	}
	return levels[m.intensity]
}

func (m Model) intensityView() string {
	value := m.intensityValue()
	if value == "" {
		return m.theme.Muted.Render("(select: ←/→)")
	}
	return m.theme.Accent.Render("◂ " + value + " ▸")
}

func (m Model) formRow(label, field string, focused bool) string {
	style := m.theme.Label
	if focused {
		style = m.theme.Accent
	}
	return lipgloss.NewStyle().Width(18).Render(style.Render(label)) + field + "\n"
}

func (m Model) statusView() string {
	if m.status == "" {
		return m.theme.Muted.Render("enter: log activity  ↑/↓: move between fields")
	}
	if m.statusErr {
		return m.theme.Error.Render(m.status)
	}
	return m.theme.Success.Render(m.status)
}

func (m *Model) resize() {
	m.list.Width = max(m.width-8, 16)
	bannerH := 0
	if m.banner != "" {
		bannerH = lipgloss.Height(m.banner) + 2
	}
	m.list.Height = max(m.height-bannerH-11, 3)
}

func (m Model) submitCmd() tea.Cmd {
	name := m.name.Value()
	duration := m.duration.Value()
	intensity := m.intensityValue()
	return func() tea.Msg {
		out, err := m.port.Log(context.Background(), name, duration, intensity)
		return LoggedMsg{Out: out, Err: err}
	}
}

func (m Model) loadLinesCmd() tea.Cmd {
	return func() tea.Msg {
		lines, err := m.port.ListLines(context.Background())
		return LinesLoadedMsg{Lines: lines, Err: err}
	}
}
