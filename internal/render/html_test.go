package render

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickhelp/internal/api"
	"quickhelp/internal/controller"
)

func parse(t *testing.T, c controller.Content) *goquery.Document {
	t.Helper()
	out, err := HTML(c)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(out)))
	require.NoError(t, err)
	return doc
}

func text(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

func TestHTML_Message(t *testing.T) {
	tests := []struct {
		msg   controller.Message
		class string
		title string
	}{
		{controller.ErrorMessage("Please enter a search query"), "message-error", "✗ Error"},
		{controller.InfoMessage("No results found"), "message-info", "ℹ Info"},
		{controller.Message{Kind: controller.MessageSuccess, Text: "done"}, "message-success", "✓ Success"},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			doc := parse(t, tt.msg)
			box := doc.Find("div.message." + tt.class)
			require.Equal(t, 1, box.Length())
			assert.Equal(t, tt.title, text(box.Find("strong")))
			assert.Contains(t, text(box), tt.msg.Text)
		})
	}
}

func TestHTML_SearchResults(t *testing.T) {
	doc := parse(t, controller.SearchResults{Results: []api.SearchResult{{
		Title:   "Install",
		Content: "Run make install",
		Path:    "docs/install.md",
		Score:   0.8421,
		Tags:    []string{"setup", "install"},
	}}})

	assert.Equal(t, "Found 1 results:", text(doc.Find("h3")))
	items := doc.Find(".result-item")
	require.Equal(t, 1, items.Length())
	assert.Equal(t, "0.842", text(items.Find(".result-score")))
	assert.True(t, strings.HasPrefix(text(items.Find(".result-title")), "1. Install"))
	assert.Equal(t, "Run make install", text(items.Find(".result-content")))
	assert.Equal(t, "docs/install.md", text(items.Find(".result-meta small")))

	var tags []string
	items.Find(".tag").Each(func(_ int, s *goquery.Selection) { tags = append(tags, s.Text()) })
	assert.Equal(t, []string{"#setup", "#install"}, tags)
}

func TestHTML_EscapesBackendText(t *testing.T) {
	out, err := HTML(controller.SearchResults{Results: []api.SearchResult{{
		Title:   "<script>alert(1)</script>",
		Content: "a < b & c",
	}}})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
	assert.Contains(t, string(out), "&lt;script&gt;")
}

func TestHTML_Answer(t *testing.T) {
	t.Run("with sources", func(t *testing.T) {
		doc := parse(t, controller.Answer{
			Text: "Run make install.",
			Sources: []api.Source{
				{ID: 1, Title: "Install", Path: "docs/install.md", Score: 0.9, Tags: []string{"setup"}},
				{ID: 2, Title: "FAQ", Path: "docs/faq.md", Score: 0.5},
			},
		})
		assert.Equal(t, "Run make install.", text(doc.Find(".answer-box .answer-text")))
		sources := doc.Find(".sources-section .source-item")
		require.Equal(t, 2, sources.Length())
		assert.Equal(t, "[1] Install", text(sources.First().Find("strong")))
		assert.Equal(t, "0.900", text(sources.First().Find(".result-score")))
		assert.Equal(t, 0, sources.Last().Find(".tag").Length())
	})

	t.Run("without sources", func(t *testing.T) {
		doc := parse(t, controller.Answer{Text: "I don't know."})
		assert.Equal(t, 1, doc.Find(".answer-box").Length())
		assert.Equal(t, 0, doc.Find(".sources-section").Length())
	})
}

func TestHTML_Clusters(t *testing.T) {
	doc := parse(t, controller.ClusterList{Clusters: []api.Cluster{
		{
			Name:      "Setup",
			Size:      3,
			Keywords:  []string{"install", "config"},
			Tags:      []string{"setup"},
			Documents: []api.ClusterDocument{{Title: "Install"}, {Title: "Configure"}},
		},
		{Name: "Misc", Size: 1, Documents: []api.ClusterDocument{{Title: "Notes"}}},
	}})

	assert.Equal(t, "Generated 2 clusters:", text(doc.Find("h3")))
	items := doc.Find(".cluster-item")
	require.Equal(t, 2, items.Length())

	first := items.First()
	assert.Equal(t, "Setup", text(first.Find(".cluster-name")))
	assert.Equal(t, "3 documents", text(first.Find(".cluster-size")))
	assert.Equal(t, 2, first.Find(".cluster-keywords .keyword").Length())
	assert.Equal(t, "• Install", text(first.Find(".cluster-doc").First()))

	last := items.Last()
	assert.Equal(t, 0, last.Find(".cluster-keywords").Length(), "empty keywords are omitted")
	assert.Equal(t, 0, last.Find(".tag").Length())
}

func TestHTML_IndexReport(t *testing.T) {
	doc := parse(t, controller.IndexReport{
		Message: "Indexed 3 documents",
		Stats: &api.Stats{
			TotalDocuments: 3,
			TotalWords:     1234567,
			AvgWordsPerDoc: 3,
			UniqueTags:     4,
			Formats:        []string{".md", ".txt"},
		},
	})

	assert.Equal(t, "✓ Success!", text(doc.Find(".message-success strong")))
	assert.Contains(t, text(doc.Find(".message-success")), "Indexed 3 documents")

	var rows []string
	doc.Find(".result-item li").Each(func(_ int, s *goquery.Selection) { rows = append(rows, text(s)) })
	assert.Equal(t, []string{
		"Total Documents: 3",
		"Total Words: 1,234,567",
		"Average Words per Document: 3.0",
		"Unique Tags: 4",
		"Formats: .md, .txt",
	}, rows)

	noStats := parse(t, controller.IndexReport{Message: "ok"})
	assert.Equal(t, 0, noStats.Find(".result-item").Length())
}

func TestHTML_Nil(t *testing.T) {
	out, err := HTML(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCountersHTML(t *testing.T) {
	out, err := CountersHTML(controller.Counters{Documents: 42, Words: 1234567, Tags: 7}, true, false)
	require.NoError(t, err)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, "42", doc.Find("#docCount").Text())
	assert.Equal(t, "1,234,567", doc.Find("#wordCount").Text())
	assert.Equal(t, "7", doc.Find("#tagCount").Text())
	_, oob := doc.Find("#stats").Attr("hx-swap-oob")
	assert.False(t, oob)

	out, err = CountersHTML(controller.Counters{}, false, true)
	require.NoError(t, err)
	doc, err = goquery.NewDocumentFromReader(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, "-", doc.Find("#docCount").Text())
	val, oob := doc.Find("#stats").Attr("hx-swap-oob")
	assert.True(t, oob)
	assert.Equal(t, "true", val)
}
