package controller

import "sync"

// Surface is where the controller writes. Front ends implement it (or use
// ViewState) and redraw from it.
type Surface interface {
	SetActiveTab(Tab)
	Render(Target, Content)
	SetCounters(Counters)
	ShowLoading()
	HideLoading()
}

// ViewState is a Surface safe for use from many goroutines.
// Loading is a counter: overlapping operations keep the overlay up until
// the last one hides it.
type ViewState struct {
	mu       sync.Mutex
	tab      Tab
	contents map[Target]Content
	counters Counters
	hasStats bool
	loading  int
	version  uint64
}

// NewViewState returns an empty state with the given tab active.
func NewViewState(initial Tab) *ViewState {
	return &ViewState{
		tab:      initial,
		contents: make(map[Target]Content),
	}
}

// Snapshot is a point-in-time copy of a ViewState.
type Snapshot struct {
	Tab         Tab
	Contents    map[Target]Content
	Counters    Counters
	HasCounters bool
	Loading     bool
	// Version increases on every change.
	Version uint64
}

// Content returns what target currently shows, or nil.
func (s Snapshot) Content(t Target) Content {
	return s.Contents[t]
}

func (v *ViewState) SetActiveTab(t Tab) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tab = t
	v.version++
}

func (v *ViewState) Render(t Target, c Content) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.contents[t] = c
	v.version++
}

func (v *ViewState) SetCounters(c Counters) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.counters = c
	v.hasStats = true
	v.version++
}

func (v *ViewState) ShowLoading() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading++
	v.version++
}

// HideLoading releases one ShowLoading. Extra calls are ignored.
func (v *ViewState) HideLoading() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loading > 0 {
		v.loading--
	}
	v.version++
}

// Loading reports whether any operation holds the overlay.
func (v *ViewState) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading > 0
}

// Snapshot copies the current state.
func (v *ViewState) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	contents := make(map[Target]Content, len(v.contents))
	for k, c := range v.contents {
		contents[k] = c
	}
	return Snapshot{
		Tab:         v.tab,
		Contents:    contents,
		Counters:    v.counters,
		HasCounters: v.hasStats,
		Loading:     v.loading > 0,
		Version:     v.version,
	}
}
