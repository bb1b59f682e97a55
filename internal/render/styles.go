// Package render turns controller content into HTML fragments for the web
// UI and styled text for the terminal UI and CLI.
package render

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the terminal UI.
const (
	ColorAccent    = "86"  // Cyan/green - titles, counters
	ColorHighlight = "205" // Magenta - active tab, focused input
	ColorDanger    = "196" // Red - errors
	ColorSuccess   = "42"  // Green - success banners
	ColorMuted     = "241" // Gray - paths, hints
	ColorText      = "252" // Light gray - body text
	ColorWarning   = "208" // Orange - scores
)

// Styles contains shared style definitions used by renderers and views.
var Styles = struct {
	Title        lipgloss.Style // Bold accent - headings
	TitleError   lipgloss.Style // Bold danger - error message titles
	TitleInfo    lipgloss.Style // Bold accent - info message titles
	TitleSuccess lipgloss.Style // Bold success - success banners

	Box        lipgloss.Style // Rounded box (highlight border)
	BoxLoading lipgloss.Style // Loading overlay box

	Selected lipgloss.Style // Active tab, focused field
	Muted    lipgloss.Style // Paths, separators
	Normal   lipgloss.Style // Body text
	Hint     lipgloss.Style // Help text
	Score    lipgloss.Style // Relevance scores
	Tag      lipgloss.Style // #tags and keywords
	Section  lipgloss.Style // Sub-headings (Sources:, Keywords:)
	Empty    lipgloss.Style // Placeholder text

	Tab       lipgloss.Style
	TabActive lipgloss.Style
	Stat      lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleError: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	TitleInfo: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleSuccess: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorSuccess)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	BoxLoading: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 3),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Score: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Tag: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Tab: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	TabActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Underline(true).
		Padding(0, 2),
	Stat: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
}
