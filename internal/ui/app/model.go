package app

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fittrack/internal/ui/theme"
	activityview "fittrack/internal/ui/views/activity"
	goalsview "fittrack/internal/ui/views/goals"
	nutritionview "fittrack/internal/ui/views/nutrition"
)

// ─── ports ───────────────────────────────────────────────────────────────────

// goalsPort widens the goal view's port with the read-only summarize action
// the summary overlay needs.
type goalsPort interface {
	goalsview.GoalsPort
	SummaryLines(ctx context.Context) ([]string, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabActivity tabID = iota
	tabNutrition
	tabGoals
	tabCount
)

var tabLabels = [tabCount]string{
	"Activity Tracking", "Nutrition Logging", "Goal Setting",
}

// ─── overlays ────────────────────────────────────────────────────────────────

type overlayID int

const (
	overlayNone overlayID = iota
	overlaySummary
	overlayExit
)

type summaryLoadedMsg struct {
	lines []string
	err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the goal-summary
// overlay, and the exit confirmation. All record handling is delegated to
// port interfaces; all form rendering is delegated to the tab views.
type Model struct {
	theme theme.Theme
	goals goalsPort

	activityView  activityview.Model
	nutritionView nutritionview.Model
	goalsView     goalsview.Model

	activeTab    tabID
	overlay      overlayID
	summaryLines []string
	width        int
	height       int
}

func NewModel(
	th theme.Theme,
	activity activityview.ActivityPort,
	nutrition nutritionview.NutritionPort,
	goals goalsPort,
	activityBanner string,
	nutritionBanner string,
) Model {
	return Model{
		theme:         th,
		goals:         goals,
		activityView:  activityview.New(activity, th, activityBanner),
		nutritionView: nutritionview.New(nutrition, th, nutritionBanner),
		goalsView:     goalsview.New(goals, th),
		activeTab:     tabActivity,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.activityView.Init(),
		m.nutritionView.Init(),
		m.goalsView.Init(),
	)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.propagateSize()
		return m, nil

	case summaryLoadedMsg:
		if msg.err != nil {
			m.summaryLines = []string{"summary unavailable: " + msg.err.Error()}
		} else {
			m.summaryLines = msg.lines
		}
		m.overlay = overlaySummary
		return m, nil

	case tea.KeyMsg:
		if m.overlay != overlayNone {
			return m.updateOverlay(msg)
		}
		switch msg.String() {
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			return m, nil
		case "esc", "ctrl+c":
			m.overlay = overlayExit
			return m, nil
		case "ctrl+v":
			if m.activeTab == tabGoals {
				return m, m.loadSummaryCmd()
			}
		}
	}

	var cmd tea.Cmd
	switch m.activeTab {
	case tabActivity:
		m.activityView, cmd = m.activityView.Update(msg)
	case tabNutrition:
		m.nutritionView, cmd = m.nutritionView.Update(msg)
	case tabGoals:
		m.goalsView, cmd = m.goalsView.Update(msg)
	}
	return m, cmd
}

func (m Model) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay {
	case overlayExit:
		switch msg.String() {
		case "y", "enter":
			return m, tea.Quit
		case "n", "esc":
			m.overlay = overlayNone
		}
	case overlaySummary:
		switch msg.String() {
		case "esc", "enter", "q":
			m.overlay = overlayNone
		}
	}
	return m, nil
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch m.overlay {
	case overlaySummary:
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.renderSummary())
	case overlayExit:
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.renderExitConfirm())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabActivity:
		return m.activityView.View()
	case tabNutrition:
		return m.nutritionView.View()
	case tabGoals:
		return m.goalsView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = m.theme.TabActive.Render(" " + label + " ")
		} else {
			parts[i] = m.theme.Tab.Render(" " + label + " ")
		}
	}
	sep := m.theme.Muted.Render(" │ ")
	bar := "fittrack  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(m.theme.Background).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	hints := "tab: switch  esc: exit"
	if m.activeTab == tabGoals {
		hints = "tab: switch  ctrl+v: summary  esc: exit"
	}
	bar := m.theme.Muted.Render(hints)
	return "\n" + lipgloss.NewStyle().Background(m.theme.Background).Width(m.width).Render(bar)
}

func (m Model) renderSummary() string {
	var sb strings.Builder
	sb.WriteString(m.theme.Title.Render("Your Current Goals:") + "\n\n")
	for _, line := range m.summaryLines {
		sb.WriteString(m.theme.Label.Render(line) + "\n")
	}
	sb.WriteString("\n" + m.theme.Muted.Render("esc: close"))
	return m.theme.Pane.Render(sb.String())
}

func (m Model) renderExitConfirm() string {
	body := m.theme.Title.Render("Exit") + "\n\n" +
		m.theme.Label.Render("Are you sure you want to exit the application?") + "\n\n" +
		m.theme.Muted.Render("y: exit  n: stay")
	return m.theme.Pane.Render(body)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.activityView, _ = m.activityView.Update(sz)
	m.nutritionView, _ = m.nutritionView.Update(sz)
	m.goalsView, _ = m.goalsView.Update(sz)
}

func (m Model) loadSummaryCmd() tea.Cmd {
	return func() tea.Msg {
		lines, err := m.goals.SummaryLines(context.Background())
		return summaryLoadedMsg{lines: lines, err: err}
	}
}
