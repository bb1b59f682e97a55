package ui

// FocusManager tracks and rotates focus across the fields of a panel.
type FocusManager struct {
	Current  string   // ID of the currently focused field
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// Next moves focus to the next field, wrapping around.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	return f.move(1)
}

// Prev moves focus to the previous field, wrapping around.
func (f *FocusManager) Prev() string {
	return f.move(-1)
}

// Is reports whether id has focus.
func (f *FocusManager) Is(id string) bool {
	return f.Current == id
}

// SetFocus sets focus to the given field ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	if f.index(id) < 0 {
		return false
	}
	f.set(id)
	return true
}

func (f *FocusManager) move(delta int) string {
	n := len(f.Order)
	if n == 0 {
		return ""
	}
	idx := f.index(f.Current)
	if idx < 0 {
		// Unknown current: forward starts at the first field, backward at the last.
		if delta > 0 {
			idx = -1
		} else {
			idx = 0
		}
	}
	f.set(f.Order[((idx+delta)%n+n)%n])
	return f.Current
}

func (f *FocusManager) index(id string) int {
	for i, o := range f.Order {
		if o == id {
			return i
		}
	}
	return -1
}

func (f *FocusManager) set(id string) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
