package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quickhelp/internal/render"
)

// field is one input on a form panel.
type field interface {
	ID() string
	Value() string
	Focus() tea.Cmd
	Blur()
	Update(tea.KeyMsg) tea.Cmd
	View(focused bool) string
}

// textField is a single-line text input.
type textField struct {
	id    string
	label string
	input textinput.Model
}

func newTextField(id, label, placeholder, value string) *textField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.Width = 50
	ti.SetValue(value)
	return &textField{id: id, label: label, input: ti}
}

func (f *textField) ID() string     { return f.id }
func (f *textField) Value() string  { return f.input.Value() }
func (f *textField) Focus() tea.Cmd { return f.input.Focus() }
func (f *textField) Blur()          { f.input.Blur() }

func (f *textField) Update(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *textField) View(focused bool) string {
	return labelStyle(focused).Render(f.label) + " " + fieldBox(focused).Render(f.input.View())
}

// selectField cycles through a fixed list of options with left/right.
type selectField struct {
	id      string
	label   string
	options []string
	idx     int
}

// newSelectField selects value if it is one of options, else the first option.
func newSelectField(id, label string, options []string, value string) *selectField {
	f := &selectField{id: id, label: label, options: options}
	for i, o := range options {
		if o == value {
			f.idx = i
		}
	}
	return f
}

func (f *selectField) ID() string { return f.id }

func (f *selectField) Value() string {
	if len(f.options) == 0 {
		return ""
	}
	return f.options[f.idx]
}

func (f *selectField) Focus() tea.Cmd { return nil }
func (f *selectField) Blur()          {}

func (f *selectField) Update(msg tea.KeyMsg) tea.Cmd {
	n := len(f.options)
	if n == 0 {
		return nil
	}
	switch msg.String() {
	case "left", "h":
		f.idx = (f.idx + n - 1) % n
	case "right", "l", " ":
		f.idx = (f.idx + 1) % n
	}
	return nil
}

func (f *selectField) View(focused bool) string {
	value := "‹ " + f.Value() + " ›"
	if focused {
		value = render.Styles.Selected.Render(value)
	} else {
		value = render.Styles.Normal.Render(value)
	}
	return labelStyle(focused).Render(f.label) + " " + value
}
