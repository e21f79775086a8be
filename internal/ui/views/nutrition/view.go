package nutrition

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fittrack/internal/modules/nutrition/dto"
	"fittrack/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type NutritionPort interface {
	Log(ctx context.Context, foodItem, calories, carbs, protein, fats string) (dto.EntryOutput, error)
	ListLines(ctx context.Context) ([]string, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LinesLoadedMsg struct {
	Lines []string
	Err   error
}

type LoggedMsg struct {
	Out dto.EntryOutput
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the Nutrition Logging tab. Food item and calories are required;
// the macro fields may be left empty and store as zero.
type Model struct {
	port   NutritionPort
	theme  theme.Theme
	banner string

	fields     []textinput.Model
	labels     []string
	focus      int
	submitting bool

	list      viewport.Model
	status    string
	statusErr bool
	width     int
	height    int
}

func New(port NutritionPort, th theme.Theme, banner string) Model {
	labels := []string{"Food Item:", "Calories:", "Carbs (g):", "Protein (g):", "Fats (g):"}
	placeholders := []string{"Food Item", "Calories", "optional", "optional", "optional"}
	fields := make([]textinput.Model, len(labels))
	for i := range fields {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Width = 24
		fields[i] = ti
	}
	fields[0].Focus()

	return Model{
		port:   port,
		theme:  th,
		banner: banner,
		fields: fields,
		labels: labels,
		list:   viewport.New(0, 0),
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
			m.status = "load nutrition: " + msg.Err.Error()
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
		m.status = "Nutrition logged successfully!"
		m.statusErr = false
		for i := range m.fields {
			m.fields[i].SetValue("")
		}
		m.setFocus(0)
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
			m.setFocus((m.focus + len(m.fields) - 1) % len(m.fields))
			return m, nil
		case "down":
			m.setFocus((m.focus + 1) % len(m.fields))
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.fields[m.focus], cmd = m.fields[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var sb strings.Builder
	if m.banner != "" {
		sb.WriteString(m.theme.Accent.Render(m.banner) + "\n\n")
	}
	sb.WriteString(m.theme.Title.Render("Log Nutrition") + "\n\n")
	for i, field := range m.fields {
		style := m.theme.Label
		if i == m.focus {
			style = m.theme.Accent
		}
		sb.WriteString(lipgloss.NewStyle().Width(18).Render(style.Render(m.labels[i])) + field.View() + "\n")
	}
	sb.WriteString("\n" + m.statusView() + "\n\n")
	sb.WriteString(m.theme.Pane.Width(max(m.width-4, 20)).Render(m.list.View()))
	return sb.String()
}

func (m Model) Filtering() bool { return false }

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) setFocus(focus int) {
	m.focus = focus
	for i := range m.fields {
		if i == focus {
			m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}
}

func (m Model) statusView() string {
	if m.status == "" {
		return m.theme.Muted.Render("enter: log nutrition  ↑/↓: move between fields  macros may stay empty")
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
	m.list.Height = max(m.height-bannerH-13, 3)
}

func (m Model) submitCmd() tea.Cmd {
	values := make([]string, len(m.fields))
	for i, field := range m.fields {
		values[i] = field.Value()
	}
	return func() tea.Msg {
		out, err := m.port.Log(context.Background(), values[0], values[1], values[2], values[3], values[4])
		return LoggedMsg{Out: out, Err: err}
	}
}

func (m Model) loadLinesCmd() tea.Cmd {
	return func() tea.Msg {
		lines, err := m.port.ListLines(context.Background())
		return LinesLoadedMsg{Lines: lines, Err: err}
	}
}
