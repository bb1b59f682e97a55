package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"quickhelp/internal/controller"
	"quickhelp/internal/format"
)

// fragmentTemplates mirror the containers of the web page. Each one fully
// replaces its container's inner HTML.
const fragmentTemplates = `
{{define "message"}}<div class="message message-{{.Kind}}">
  <strong>{{.Kind.Icon}} {{.Kind.Title}}</strong><br>
  {{.Text}}
</div>{{end}}

{{define "tags"}}{{range .}}<span class="tag">#{{.}}</span>{{end}}{{end}}

{{define "searchResults"}}<h3>Found {{len .Results}} results:</h3>
{{range $i, $r := .Results}}<div class="result-item">
  <div class="result-title">
    {{inc $i}}. {{$r.Title}}
    <span class="result-score">{{score $r.Score}}</span>
  </div>
  <div class="result-content">{{$r.Content}}</div>
  <div class="result-meta">
    <small>{{$r.Path}}</small><br>
    {{template "tags" $r.Tags}}
  </div>
</div>
{{end}}{{end}}

{{define "answer"}}<div class="answer-box">
  <h3>Answer:</h3>
  <div class="answer-text">{{.Text}}</div>
</div>
{{if .Sources}}<div class="sources-section">
  <h3 class="sources-title">Sources:</h3>
  {{range .Sources}}<div class="source-item">
    <strong>[{{.ID}}] {{.Title}}</strong>
    <span class="result-score">{{score .Score}}</span>
    <br>
    <small>{{.Path}}</small>
    <br>
    {{template "tags" .Tags}}
  </div>
  {{end}}
</div>{{end}}{{end}}

{{define "clusters"}}<h3>Generated {{len .Clusters}} clusters:</h3>
{{range .Clusters}}<div class="cluster-item">
  <div class="cluster-header">
    <div class="cluster-name">{{.Name}}</div>
    <div class="cluster-size">{{.Size}} documents</div>
  </div>
  {{if .Keywords}}<div class="cluster-keywords"><strong>Keywords:</strong> {{range .Keywords}}<span class="keyword">{{.}}</span>{{end}}</div>{{end}}
  {{if .Tags}}<div><strong>Tags:</strong> {{template "tags" .Tags}}</div>{{end}}
  <div class="cluster-documents">
    <strong>Sample Documents:</strong>
    {{range .Documents}}<div class="cluster-doc">• {{.Title}}</div>
    {{end}}
  </div>
</div>
{{end}}{{end}}

{{define "indexReport"}}<div class="message message-success">
  <strong>✓ Success!</strong><br>
  {{.Message}}
</div>
{{with .Stats}}<div class="result-item">
  <h4>Statistics:</h4>
  <ul class="index-stats">
    <li>Total Documents: {{.TotalDocuments}}</li>
    <li>Total Words: {{count .TotalWords}}</li>
    <li>Average Words per Document: {{average .AvgWordsPerDoc}}</li>
    <li>Unique Tags: {{.UniqueTags}}</li>
    <li>Formats: {{join .Formats ", "}}</li>
  </ul>
</div>{{end}}{{end}}

{{define "counters"}}<div class="stats" id="stats"{{if .OOB}} hx-swap-oob="true"{{end}}>
  <div class="stat"><span class="stat-value" id="docCount">{{if .Known}}{{.Counters.Documents}}{{else}}-{{end}}</span><span class="stat-label">Documents</span></div>
  <div class="stat"><span class="stat-value" id="wordCount">{{if .Known}}{{count .Counters.Words}}{{else}}-{{end}}</span><span class="stat-label">Words</span></div>
  <div class="stat"><span class="stat-value" id="tagCount">{{if .Known}}{{.Counters.Tags}}{{else}}-{{end}}</span><span class="stat-label">Tags</span></div>
</div>{{end}}
`

var fragments = template.Must(template.New("fragments").Funcs(template.FuncMap{
	"inc":     func(i int) int { return i + 1 },
	"score":   format.Score,
	"count":   format.Count,
	"average": format.Average,
	"join":    strings.Join,
}).Parse(fragmentTemplates))

// HTML renders content as the inner HTML of its container. Backend text is
// escaped. A nil content renders as nothing.
func HTML(c controller.Content) (template.HTML, error) {
	var name string
	switch c.(type) {
	case nil:
		return "", nil
	case controller.Message:
		name = "message"
	case controller.SearchResults:
		name = "searchResults"
	case controller.Answer:
		name = "answer"
	case controller.ClusterList:
		name = "clusters"
	case controller.IndexReport:
		name = "indexReport"
	default:
		return "", fmt.Errorf("render: unsupported content %T", c)
	}
	return execute(name, c)
}

// CountersHTML renders the header statistics block. Unknown counters show
// a dash. With oob set the block is marked for an htmx out-of-band swap.
func CountersHTML(c controller.Counters, known, oob bool) (template.HTML, error) {
	return execute("counters", struct {
		Counters controller.Counters
		Known    bool
		OOB      bool
	}{c, known, oob})
}

func execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	// Output of html/template is already escaped.
	return template.HTML(buf.String()), nil
}
