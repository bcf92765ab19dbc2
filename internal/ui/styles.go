package ui

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles used by the session view.
type Styles struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Clock    lipgloss.Style
	Hint     lipgloss.Style
	Chip     lipgloss.Style
	Muted    lipgloss.Style
	Warning  lipgloss.Style
}

// NewStyles returns the session view styles for a dark or light terminal.
func NewStyles(dark bool) *Styles {
	accent := lipgloss.Color("#5A56E0")
	text := lipgloss.Color("#1A1A1A")
	muted := lipgloss.Color("#6B6B6B")

	if dark {
		accent = lipgloss.Color("#A8A4FF")
		text = lipgloss.Color("#F2F2F2")
		muted = lipgloss.Color("#8A8A8A")
	}

	return &Styles{
		Base:     lipgloss.NewStyle().Padding(1, 2),
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtitle: lipgloss.NewStyle().Foreground(text),
		Clock:    lipgloss.NewStyle().Bold(true).Foreground(text),
		Hint:     lipgloss.NewStyle().Foreground(muted),
		Chip: lipgloss.NewStyle().
			Foreground(accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		Muted:   lipgloss.NewStyle().Foreground(muted).Italic(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#E5A50A")),
	}
}
