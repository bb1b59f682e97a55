package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("ctrl+c", tea.Quit)
	reg.Bind("f1", func() tea.Msg { return SwitchTabMsg{} })

	if reg.Lookup("ctrl+c") == nil {
		t.Error("expected ctrl+c to be bound")
	}
	if reg.Lookup("f1") == nil {
		t.Error("expected f1 to be bound")
	}
	if reg.Lookup("q") != nil {
		t.Error("q must stay free for typing")
	}
}

func TestKeyHandler_Dispatch(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("ctrl+r", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("ctrl+r"))
	if !consumed || cmd == nil {
		t.Fatalf("ctrl+r: consumed=%v cmd=%v", consumed, cmd)
	}
	cmd()
	if !executed {
		t.Error("expected command to execute")
	}

	consumed, cmd = h.Handle(keyMsg("x"))
	if consumed || cmd != nil {
		t.Errorf("x: consumed=%v cmd=%v, want pass-through", consumed, cmd)
	}
}

func TestKeybindRegistry_BindingsGroupByDescription(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "quit")
	reg.BindWithDesc("esc", tea.Quit, "quit")
	for _, k := range []string{"f1", "f2", "f3", "f4"} {
		reg.BindWithDesc(k, tea.Quit, "go to tab")
	}
	reg.Bind("ctrl+z", tea.Quit)

	got := reg.Bindings()
	if len(got) != 2 {
		t.Fatalf("got %d bindings, want 2", len(got))
	}
	if h := got[0].Help(); h.Key != "ctrl+c/esc" || h.Desc != "quit" {
		t.Errorf("first binding help = %+v", h)
	}
	if h := got[1].Help(); h.Key != "f1…f4" {
		t.Errorf("function keys label = %q", h.Key)
	}
}

func TestRenderKeybindHelp(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+r", tea.Quit, "reload stats")
	out := RenderKeybindHelp(reg, 200)
	for _, want := range []string{"enter", "submit", "ctrl+r", "reload stats"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q: %s", want, out)
		}
	}
}

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+left":
		return tea.KeyMsg{Type: tea.KeyCtrlLeft}
	case "ctrl+right":
		return tea.KeyMsg{Type: tea.KeyCtrlRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyMsg{Type: tea.KeyPgDown}
	case "f1":
		return tea.KeyMsg{Type: tea.KeyF1}
	case "f2":
		return tea.KeyMsg{Type: tea.KeyF2}
	case "f3":
		return tea.KeyMsg{Type: tea.KeyF3}
	case "f4":
		return tea.KeyMsg{Type: tea.KeyF4}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeText feeds s to v one rune at a time.
func typeText(v View, s string) {
	for _, r := range s {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}
