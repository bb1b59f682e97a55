package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// ResultsView scrolls over the rendered content of the active tab.
type ResultsView struct {
	viewport viewport.Model
	content  string
}

// Ensure ResultsView implements View.
var _ View = (*ResultsView)(nil)

// NewResultsView creates an empty results view.
func NewResultsView() *ResultsView {
	vp := viewport.New(80, 10)
	return &ResultsView{viewport: vp}
}

// SetSize resizes the viewport.
func (r *ResultsView) SetSize(width, height int) {
	if height < 1 {
		height = 1
	}
	r.viewport.Width = width
	r.viewport.Height = height
}

// SetContent replaces the content. New content scrolls back to the top.
func (r *ResultsView) SetContent(s string) {
	if s == r.content {
		return
	}
	r.content = s
	r.viewport.SetContent(s)
	r.viewport.GotoTop()
}

// Content returns the unstyled-by-viewport content last set.
func (r *ResultsView) Content() string {
	return r.content
}

// Init implements View.
func (r *ResultsView) Init() tea.Cmd {
	return nil
}

// Update implements View. Only paging keys scroll; everything else belongs
// to the form.
func (r *ResultsView) Update(msg tea.Msg) (View, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "pgup":
			r.viewport.SetYOffset(r.viewport.YOffset - r.page())
		case "pgdown":
			r.viewport.SetYOffset(r.viewport.YOffset + r.page())
		}
	}
	return r, nil
}

// page is the scroll step: half the visible height.
func (r *ResultsView) page() int {
	if h := r.viewport.Height / 2; h > 0 {
		return h
	}
	return 1
}

// View implements View.
func (r *ResultsView) View() string {
	return r.viewport.View()
}

// Offset returns the current scroll offset.
func (r *ResultsView) Offset() int {
	return r.viewport.YOffset
}
