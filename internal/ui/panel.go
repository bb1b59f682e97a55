package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quickhelp/internal/controller"
	"quickhelp/internal/render"
)

// Field IDs, also the keys of SubmitMsg.Values.
const (
	FieldQuery     = "query"
	FieldMode      = "mode"
	FieldQuestion  = "question"
	FieldAlgorithm = "algorithm"
	FieldPath      = "path"
)

// FormPanel hosts the inputs of one tab. Enter submits the whole form.
type FormPanel struct {
	Tab    controller.Tab
	Hint   string
	fields []field
	focus  FocusManager
}

// Ensure FormPanel implements View.
var _ View = (*FormPanel)(nil)

// NewFormPanel creates a panel with focus on the first field.
func NewFormPanel(tab controller.Tab, hint string, fields ...field) *FormPanel {
	p := &FormPanel{Tab: tab, Hint: hint, fields: fields}
	for _, f := range fields {
		p.focus.Order = append(p.focus.Order, f.ID())
	}
	p.focus.OnChange = func(from, _ string) {
		if f := p.field(from); f != nil {
			f.Blur()
		}
	}
	if len(fields) > 0 {
		p.focus.Current = fields[0].ID()
		fields[0].Focus()
	}
	return p
}

// Init implements View.
func (p *FormPanel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (p *FormPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "tab":
		p.focus.Next()
		return p, p.focusCurrent()
	case "shift+tab":
		p.focus.Prev()
		return p, p.focusCurrent()
	case "enter":
		values := p.Values()
		tab := p.Tab
		return p, func() tea.Msg { return SubmitMsg{Tab: tab, Values: values} }
	}
	if f := p.field(p.focus.Current); f != nil {
		return p, f.Update(key)
	}
	return p, nil
}

// View implements View.
func (p *FormPanel) View() string {
	lines := make([]string, 0, len(p.fields)+1)
	for _, f := range p.fields {
		lines = append(lines, f.View(p.focus.Is(f.ID())))
	}
	if p.Hint != "" {
		lines = append(lines, render.Styles.Hint.Render(p.Hint))
	}
	return strings.Join(lines, "\n")
}

// Values returns the current value of every field by ID.
func (p *FormPanel) Values() map[string]string {
	out := make(map[string]string, len(p.fields))
	for _, f := range p.fields {
		out[f.ID()] = f.Value()
	}
	return out
}

// Focused returns the ID of the focused field.
func (p *FormPanel) Focused() string {
	return p.focus.Current
}

func (p *FormPanel) focusCurrent() tea.Cmd {
	if f := p.field(p.focus.Current); f != nil {
		return f.Focus()
	}
	return nil
}

func (p *FormPanel) field(id string) field {
	for _, f := range p.fields {
		if f.ID() == id {
			return f
		}
	}
	return nil
}

// PanelOptions seed the form panels.
type PanelOptions struct {
	Modes      []string
	SearchMode string
	Algorithms []string
	Algorithm  string
	IndexPath  string
}

// Default option lists offered by the selectors. The controller passes the
// chosen value through unchanged.
var (
	DefaultModes      = []string{"keyword", "semantic", "hybrid"}
	DefaultAlgorithms = []string{"hdbscan", "kmeans", "hierarchical"}
)

// NewPanels builds the four tab panels.
func NewPanels(opts PanelOptions) map[controller.Tab]*FormPanel {
	modes := opts.Modes
	if len(modes) == 0 {
		modes = DefaultModes
	}
	algorithms := opts.Algorithms
	if len(algorithms) == 0 {
		algorithms = DefaultAlgorithms
	}
	return map[controller.Tab]*FormPanel{
		controller.TabSearch: NewFormPanel(controller.TabSearch, "enter: search  tab: next field  ←/→: change mode",
			newTextField(FieldQuery, "Query", "Search your documentation...", ""),
			newSelectField(FieldMode, "Mode ", modes, opts.SearchMode),
		),
		controller.TabAsk: NewFormPanel(controller.TabAsk, "enter: ask",
			newTextField(FieldQuestion, "Question", "Ask a question about your documents...", ""),
		),
		controller.TabCluster: NewFormPanel(controller.TabCluster, "enter: Run Clustering  ←/→: change algorithm",
			newSelectField(FieldAlgorithm, "Algorithm", algorithms, opts.Algorithm),
		),
		controller.TabIndex: NewFormPanel(controller.TabIndex, "enter: index documents",
			newTextField(FieldPath, "Path", "./data/documents", opts.IndexPath),
		),
	}
}
