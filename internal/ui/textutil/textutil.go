// Package textutil provides unicode-aware text helpers for terminal rendering.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies. ANSI styling is
// ignored.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate cuts s to at most maxWidth columns, ending in an ellipsis when
// anything was dropped.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	avail := maxWidth - runewidth.StringWidth(Ellipsis)
	if avail < 0 {
		return Ellipsis
	}

	var b strings.Builder
	w := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if w+rw > avail {
			break
		}
		b.WriteRune(r)
		w += rw
	}
	return b.String() + Ellipsis
}

// Excerpt collapses all whitespace in s to single spaces and truncates the
// result to maxWidth columns. Backend content is often multi-line markdown.
func Excerpt(s string, maxWidth int) string {
	return Truncate(strings.Join(strings.Fields(s), " "), maxWidth)
}

// Wrap breaks s into lines of at most width columns on word boundaries.
// Words wider than width are truncated. Existing newlines are kept.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var cur strings.Builder
		curW := 0
		for _, word := range words {
			word = Truncate(word, width)
			ww := runewidth.StringWidth(word)
			switch {
			case curW == 0:
				cur.WriteString(word)
				curW = ww
			case curW+1+ww <= width:
				cur.WriteByte(' ')
				cur.WriteString(word)
				curW += 1 + ww
			default:
				lines = append(lines, cur.String())
				cur.Reset()
				cur.WriteString(word)
				curW = ww
			}
		}
		lines = append(lines, cur.String())
	}
	return lines
}

// PadRight pads s with spaces to width columns, truncating if it is wider.
func PadRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return Truncate(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}
