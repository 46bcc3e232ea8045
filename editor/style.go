package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's terminal rendering.
type Style struct {
	Text      lipgloss.Style
	Cursor    lipgloss.Style
	Preview   lipgloss.Style
	PageLabel lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:      lipgloss.NewStyle(),
		Cursor:    lipgloss.NewStyle().Reverse(true),
		Preview:   lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		PageLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
