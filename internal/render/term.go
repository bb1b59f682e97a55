package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"quickhelp/internal/api"
	"quickhelp/internal/controller"
	"quickhelp/internal/format"
	"quickhelp/internal/ui/textutil"
)

const (
	defaultWidth = 80
	// Result bodies are excerpts; the full document is one path away.
	contentLines = 3
)

// Terminal renders content as styled text wrapped to Width columns.
type Terminal struct {
	Width int
}

func (t Terminal) width() int {
	if t.Width <= 0 {
		return defaultWidth
	}
	return t.Width
}

// Render renders c. A nil content renders as an empty string.
func (t Terminal) Render(c controller.Content) string {
	switch c := c.(type) {
	case controller.Message:
		return t.message(c)
	case controller.SearchResults:
		return t.searchResults(c)
	case controller.Answer:
		return t.answer(c)
	case controller.ClusterList:
		return t.clusters(c)
	case controller.IndexReport:
		return t.indexReport(c)
	default:
		return ""
	}
}

// Counters renders the header statistics on one line.
func (t Terminal) Counters(c controller.Counters, known bool) string {
	docs, words, tags := "-", "-", "-"
	if known {
		docs = fmt.Sprint(c.Documents)
		words = format.Count(c.Words)
		tags = fmt.Sprint(c.Tags)
	}
	sep := Styles.Muted.Render("  │  ")
	return Styles.Stat.Render(docs) + " " + Styles.Muted.Render("documents") + sep +
		Styles.Stat.Render(words) + " " + Styles.Muted.Render("words") + sep +
		Styles.Stat.Render(tags) + " " + Styles.Muted.Render("tags")
}

func (t Terminal) message(m controller.Message) string {
	title := m.Kind.Icon() + " " + m.Kind.Title()
	var style lipgloss.Style
	switch m.Kind {
	case controller.MessageInfo:
		style = Styles.TitleInfo
	case controller.MessageSuccess:
		style = Styles.TitleSuccess
	default:
		style = Styles.TitleError
	}
	return style.Render(title) + "\n" + t.wrap(m.Text, Styles.Normal)
}

func (t Terminal) searchResults(r controller.SearchResults) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Found %d results:", len(r.Results))))
	b.WriteString("\n")
	for i, res := range r.Results {
		b.WriteString("\n")
		head := fmt.Sprintf("%d. %s", i+1, res.Title)
		b.WriteString(t.heading(head, format.Score(res.Score)))
		b.WriteString("\n")
		lines := textutil.Wrap(textutil.Excerpt(res.Content, contentLines*(t.width()-2)), t.width()-2)
		for _, line := range lines {
			b.WriteString("  " + Styles.Normal.Render(line) + "\n")
		}
		b.WriteString("  " + Styles.Muted.Render(textutil.Truncate(res.Path, t.width()-2)) + "\n")
		if tags := tagLine(res.Tags); tags != "" {
			b.WriteString("  " + tags + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (t Terminal) answer(a controller.Answer) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Answer:"))
	b.WriteString("\n")
	b.WriteString(t.wrap(a.Text, Styles.Normal))
	if len(a.Sources) > 0 {
		b.WriteString("\n\n")
		b.WriteString(Styles.Section.Render("Sources:"))
		for _, s := range a.Sources {
			b.WriteString("\n")
			b.WriteString(t.source(s))
		}
	}
	return b.String()
}

func (t Terminal) source(s api.Source) string {
	var b strings.Builder
	b.WriteString(t.heading(fmt.Sprintf("[%d] %s", s.ID, s.Title), format.Score(s.Score)))
	b.WriteString("\n    " + Styles.Muted.Render(textutil.Truncate(s.Path, t.width()-4)))
	if tags := tagLine(s.Tags); tags != "" {
		b.WriteString("\n    " + tags)
	}
	return b.String()
}

func (t Terminal) clusters(l controller.ClusterList) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("Generated %d clusters:", len(l.Clusters))))
	b.WriteString("\n")
	for _, c := range l.Clusters {
		b.WriteString("\n")
		b.WriteString(t.heading(c.Name, fmt.Sprintf("%d documents", c.Size)))
		b.WriteString("\n")
		if len(c.Keywords) > 0 {
			kw := make([]string, len(c.Keywords))
			for i, k := range c.Keywords {
				kw[i] = Styles.Tag.Render(k)
			}
			b.WriteString("  " + Styles.Section.Render("Keywords:") + " " + strings.Join(kw, ", ") + "\n")
		}
		if tags := tagLine(c.Tags); tags != "" {
			b.WriteString("  " + Styles.Section.Render("Tags:") + " " + tags + "\n")
		}
		b.WriteString("  " + Styles.Section.Render("Sample Documents:") + "\n")
		for _, d := range c.Documents {
			b.WriteString("    • " + Styles.Normal.Render(textutil.Truncate(d.Title, t.width()-6)) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (t Terminal) indexReport(r controller.IndexReport) string {
	var b strings.Builder
	b.WriteString(Styles.TitleSuccess.Render("✓ Success!"))
	if r.Message != "" {
		b.WriteString("\n")
		b.WriteString(t.wrap(r.Message, Styles.Normal))
	}
	if s := r.Stats; s != nil {
		b.WriteString("\n\n")
		b.WriteString(Styles.Section.Render("Statistics:"))
		rows := [][2]string{
			{"Total Documents", fmt.Sprint(s.TotalDocuments)},
			{"Total Words", format.Count(s.TotalWords)},
			{"Average Words per Document", format.Average(s.AvgWordsPerDoc)},
			{"Unique Tags", fmt.Sprint(s.UniqueTags)},
			{"Formats", strings.Join(s.Formats, ", ")},
		}
		for _, row := range rows {
			b.WriteString("\n  " + Styles.Muted.Render(row[0]+":") + " " + Styles.Normal.Render(row[1]))
		}
	}
	return b.String()
}

// heading lays out a title with a right-aligned detail on one line.
func (t Terminal) heading(title, detail string) string {
	avail := t.width() - textutil.Width(detail) - 2
	left := textutil.PadRight(title, avail)
	return Styles.Title.Render(left) + "  " + Styles.Score.Render(detail)
}

func (t Terminal) wrap(s string, style lipgloss.Style) string {
	lines := textutil.Wrap(s, t.width())
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

func tagLine(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = Styles.Tag.Render("#" + tag)
	}
	return strings.Join(parts, " ")
}
