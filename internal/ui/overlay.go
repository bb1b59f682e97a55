package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quickhelp/internal/render"
)

// LoadingOverlay is the spinner box drawn over the results while any
// user-triggered operation holds the overlay.
type LoadingOverlay struct {
	spinner spinner.Model
	ticking bool
}

// NewLoadingOverlay creates an idle overlay.
func NewLoadingOverlay() *LoadingOverlay {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(render.ColorAccent))
	return &LoadingOverlay{spinner: s}
}

// Start begins ticking unless already ticking.
func (o *LoadingOverlay) Start() tea.Cmd {
	if o.ticking {
		return nil
	}
	o.ticking = true
	return o.spinner.Tick
}

// Tick advances the spinner. keepGoing decides whether another tick is
// scheduled.
func (o *LoadingOverlay) Tick(msg spinner.TickMsg, keepGoing bool) tea.Cmd {
	if !keepGoing {
		o.ticking = false
		return nil
	}
	var cmd tea.Cmd
	o.spinner, cmd = o.spinner.Update(msg)
	return cmd
}

// Ticking reports whether a tick is scheduled.
func (o *LoadingOverlay) Ticking() bool {
	return o.ticking
}

// Render centers the loading box in a width x height area.
func (o *LoadingOverlay) Render(width, height int) string {
	box := render.Styles.BoxLoading.Render(o.spinner.View() + " Loading...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
