package ui

import "github.com/charmbracelet/lipgloss"

// Styles is the immutable visual configuration for the form. It is
// passed into New rather than read from package state, so alternative
// themes are just alternative values.
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
	Preview  lipgloss.Style
}

// DefaultStyles returns the standard dark theme.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			MarginTop(1),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			MarginTop(1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1),
		Preview: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1),
	}
}
