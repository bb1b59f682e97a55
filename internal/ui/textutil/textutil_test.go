package textutil

import (
	"reflect"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "install", 10, "install"},
		{"exact", "install", 7, "install"},
		{"cut", "installation guide", 8, "install…"},
		{"zero", "abc", 0, ""},
		{"one column", "abc", 1, "…"},
		{"wide runes", "日本語ドキュメント", 7, "日本語…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if Width(got) > tt.width {
				t.Errorf("result %q is %d columns, limit %d", got, Width(got), tt.width)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	in := "# Install\n\nRun   make install\tthen restart."
	if got := Excerpt(in, 100); got != "# Install Run make install then restart." {
		t.Errorf("Excerpt = %q", got)
	}
	if got := Excerpt(in, 12); got != "# Install R…" {
		t.Errorf("Excerpt short = %q", got)
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("run make install then restart the service", 16)
	want := []string{"run make install", "then restart the", "service"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap = %q, want %q", got, want)
	}

	got = Wrap("first\n\nsecond", 10)
	want = []string{"first", "", "second"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Wrap paragraphs = %q, want %q", got, want)
	}

	if Wrap("anything", 0) != nil {
		t.Error("zero width should wrap to nothing")
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 5); got != "ab   " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcdef", 4); got != "abc…" {
		t.Errorf("PadRight truncating = %q", got)
	}
}
