package ui

import (
	"github.com/charmbracelet/lipgloss"

	"quickhelp/internal/render"
)

// Terminal-only styles. Content styles live in render.Styles.
var (
	appTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(render.ColorHighlight))
	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(render.ColorMuted))
	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(render.ColorHighlight)).
				Bold(true)
	blurredLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(render.ColorMuted))
	focusedFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(render.ColorText))
	blurredFieldStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(render.ColorMuted))
)

func labelStyle(focused bool) lipgloss.Style {
	if focused {
		return focusedLabelStyle
	}
	return blurredLabelStyle
}

func fieldBox(focused bool) lipgloss.Style {
	if focused {
		return focusedFieldStyle
	}
	return blurredFieldStyle
}
