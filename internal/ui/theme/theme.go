package theme

import (
	"github.com/charmbracelet/lipgloss"

	"fittrack/internal/platform/config"
)

// Theme bundles the styles the views render with. It is built once from the
// configured palette and passed into each view explicitly, so no style state
// is shared through package globals.
type Theme struct {
	Background lipgloss.Color
	Frame      lipgloss.Color

	App       lipgloss.Style
	Pane      lipgloss.Style
	Title     lipgloss.Style
	Label     lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Tab       lipgloss.Style
	TabActive lipgloss.Style
}

func New(p config.Palette) Theme {
	background := lipgloss.Color(p.Background)
	frame := lipgloss.Color(p.Frame)
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)

	return Theme{
		Background: background,
		Frame:      frame,

		App: lipgloss.NewStyle().
			Background(background).
			Foreground(text),

		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Background(frame).
			Foreground(text).
			Padding(1),

		Title:     lipgloss.NewStyle().Foreground(accent).Bold(true),
		Label:     lipgloss.NewStyle().Foreground(text),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Accent:    lipgloss.NewStyle().Foreground(accent),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success)).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error)).Bold(true),
		Tab:       lipgloss.NewStyle().Background(background).Foreground(text),
		TabActive: lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color("#000000")).Bold(true),
	}
}
