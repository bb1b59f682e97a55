package controller

import "fmt"

// Tab is one of the four operation panels. Exactly one is active.
type Tab int

const (
	TabSearch Tab = iota
	TabAsk
	TabCluster
	TabIndex
)

var tabNames = [...]string{
	TabSearch:  "search",
	TabAsk:     "ask",
	TabCluster: "cluster",
	TabIndex:   "index",
}

var tabTitles = [...]string{
	TabSearch:  "Search",
	TabAsk:     "Ask",
	TabCluster: "Clusters",
	TabIndex:   "Index",
}

// Tabs lists every tab in display order.
func Tabs() []Tab {
	return []Tab{TabSearch, TabAsk, TabCluster, TabIndex}
}

// String returns the tab's wire name (data-tab attribute, ?tab= value).
func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabNames) {
		return fmt.Sprintf("tab(%d)", int(t))
	}
	return tabNames[t]
}

// Title returns the label shown in tab bars.
func (t Tab) Title() string {
	if t < 0 || int(t) >= len(tabTitles) {
		return t.String()
	}
	return tabTitles[t]
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(tabNames))
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return Tab((int(t) + len(tabNames) - 1) % len(tabNames))
}

// ParseTab maps a wire name to a Tab.
func ParseTab(name string) (Tab, error) {
	for i, n := range tabNames {
		if n == name {
			return Tab(i), nil
		}
	}
	return TabSearch, fmt.Errorf("unknown tab %q", name)
}
