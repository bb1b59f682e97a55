package ui

import "github.com/charmbracelet/lipgloss"

// Terminal size assumed before the first WindowSizeMsg (and in tests).
const (
	defaultWidth  = 80
	defaultHeight = 24

	minResultsHeight = 3
)

// remainingHeight returns the rows left for the results area once the
// given sections are drawn, never less than minResultsHeight.
func remainingHeight(total int, sections ...string) int {
	used := 0
	for _, s := range sections {
		used += lipgloss.Height(s)
	}
	if h := total - used; h > minResultsHeight {
		return h
	}
	return minResultsHeight
}
