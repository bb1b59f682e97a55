package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps global keys to commands. Keys use tea.KeyMsg.String()
// notation: "ctrl+c", "f1", "ctrl+right".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	order        []string // registration order, for stable help
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
	}
}

// Bind registers a key to a command without a help entry.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
// Keys sharing a description are shown together.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	if _, exists := r.bindings[k]; !exists {
		r.order = append(r.order, k)
	}
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	} else {
		delete(r.descriptions, k)
	}
}

// Lookup returns the command for a key, or nil if not bound.
func (r *KeybindRegistry) Lookup(k string) tea.Cmd {
	return r.bindings[k]
}

// Bindings returns one key.Binding per description, in registration order.
func (r *KeybindRegistry) Bindings() []key.Binding {
	var descs []string
	keysByDesc := make(map[string][]string)
	for _, k := range r.order {
		d, ok := r.descriptions[k]
		if !ok || r.bindings[k] == nil {
			continue
		}
		if _, seen := keysByDesc[d]; !seen {
			descs = append(descs, d)
		}
		keysByDesc[d] = append(keysByDesc[d], k)
	}
	out := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		keys := keysByDesc[d]
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeyLabel(keys), d),
		))
	}
	return out
}

// helpKeyLabel compresses a key group for display: "f1…f4" for runs of
// function keys, otherwise keys joined with "/".
func helpKeyLabel(keys []string) string {
	if len(keys) > 2 && strings.HasPrefix(keys[0], "f") && strings.HasPrefix(keys[len(keys)-1], "f") {
		return keys[0] + "…" + keys[len(keys)-1]
	}
	return strings.Join(keys, "/")
}

// KeyHandler dispatches global keys to the registry before views see them.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler for reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled and must not reach the views.
func (h *KeyHandler) Handle(msg tea.KeyMsg) (consumed bool, cmd tea.Cmd) {
	if h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String()); c != nil {
		return true, c
	}
	return false, nil
}

// formKeys are handled by panels and the results view, not the registry,
// but belong in the help bar.
var formKeys = []key.Binding{
	key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
	key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
}

// KeyMap implements help.KeyMap over the registry plus the form keys.
type KeyMap struct {
	registry *KeybindRegistry
}

// NewKeyMap creates a KeyMap for the given registry.
func NewKeyMap(registry *KeybindRegistry) help.KeyMap {
	return &KeyMap{registry: registry}
}

// ShortHelp returns bindings for the short help view.
func (km *KeyMap) ShortHelp() []key.Binding {
	out := append([]key.Binding(nil), formKeys...)
	if km.registry != nil {
		out = append(out, km.registry.Bindings()...)
	}
	return out
}

// FullHelp returns form keys and global keys as two columns.
func (km *KeyMap) FullHelp() [][]key.Binding {
	cols := [][]key.Binding{formKeys}
	if km.registry != nil {
		if global := km.registry.Bindings(); len(global) > 0 {
			cols = append(cols, global)
		}
	}
	return cols
}
