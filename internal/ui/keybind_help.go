package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"quickhelp/internal/render"
)

// RenderKeybindHelp produces the one-line help bar shown in the footer.
func RenderKeybindHelp(reg *KeybindRegistry, width int) string {
	helpModel := help.New()
	helpModel.Width = width
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(render.ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(render.ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(render.ColorMuted))
	helpModel.Styles.Ellipsis = helpModel.Styles.ShortSeparator

	return helpModel.View(NewKeyMap(reg))
}
