package controller

import "testing"

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs() {
		got, err := ParseTab(tab.String())
		if err != nil {
			t.Fatalf("ParseTab(%q): %v", tab, err)
		}
		if got != tab {
			t.Errorf("ParseTab(%q) = %v", tab, got)
		}
	}
	if _, err := ParseTab("clusters"); err == nil {
		t.Error("expected error for unknown tab")
	}
}

func TestTab_NextPrev(t *testing.T) {
	if got := TabIndex.Next(); got != TabSearch {
		t.Errorf("TabIndex.Next() = %v, want search", got)
	}
	if got := TabSearch.Prev(); got != TabIndex {
		t.Errorf("TabSearch.Prev() = %v, want index", got)
	}
	if got := TabAsk.Next(); got != TabCluster {
		t.Errorf("TabAsk.Next() = %v, want cluster", got)
	}
}

func TestTargetFor(t *testing.T) {
	want := map[Tab]string{
		TabSearch:  "searchResults",
		TabAsk:     "answerResult",
		TabCluster: "clusterResults",
		TabIndex:   "indexResult",
	}
	for tab, id := range want {
		if got := TargetFor(tab).String(); got != id {
			t.Errorf("TargetFor(%v) = %q, want %q", tab, got, id)
		}
	}
}

func TestMessageKind(t *testing.T) {
	tests := []struct {
		kind              MessageKind
		name, icon, title string
	}{
		{MessageError, "error", "✗", "Error"},
		{MessageInfo, "info", "ℹ", "Info"},
		{MessageSuccess, "success", "✓", "Success"},
	}
	for _, tt := range tests {
		if tt.kind.String() != tt.name || tt.kind.Icon() != tt.icon || tt.kind.Title() != tt.title {
			t.Errorf("kind %d = (%q, %q, %q)", tt.kind, tt.kind.String(), tt.kind.Icon(), tt.kind.Title())
		}
	}
}
