package web

import (
	"html/template"

	"quickhelp/internal/controller"
)

// htmxURL is the htmx build the page loads.
const htmxURL = "https://unpkg.com/htmx.org@1.9.12"

// pageTemplates hold the full page and the fragments that swap parts of it.
// Panels are shown by the data-active attribute of the tab nav, so
// swapping the nav alone switches tabs without touching panel contents.
const pageTemplates = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>QuickHelp</title>
<script src="{{.HTMX}}"></script>
<style>
* { box-sizing: border-box; }
body { margin: 0; font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: #f4f6fb; color: #2d3748; }
.container { max-width: 1100px; margin: 0 auto; padding: 24px; }
header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: #fff; border-radius: 12px; padding: 24px; margin-bottom: 20px; }
header h1 { margin: 0 0 4px; }
.subtitle { margin: 0 0 16px; opacity: .85; }
#statsBar { cursor: pointer; }
.stats { display: flex; gap: 16px; }
.stat { background: rgba(255,255,255,.15); border-radius: 8px; padding: 10px 16px; display: flex; flex-direction: column; }
.stat-value { font-size: 1.4em; font-weight: 700; }
.stat-label { font-size: .8em; opacity: .85; }
.tabs { display: flex; gap: 8px; margin-bottom: 16px; }
.tab-btn { border: 0; background: #fff; padding: 10px 18px; border-radius: 8px; cursor: pointer; font-size: 1em; }
.tab-btn.active { background: #667eea; color: #fff; }
.tab-content { display: none; background: #fff; border-radius: 12px; padding: 20px; }
#tabNav[data-active="search"] ~ #searchTab,
#tabNav[data-active="ask"] ~ #askTab,
#tabNav[data-active="cluster"] ~ #clusterTab,
#tabNav[data-active="index"] ~ #indexTab { display: block; }
form { display: flex; gap: 8px; margin-bottom: 16px; }
input[type=text], textarea, select { padding: 10px; border: 1px solid #cbd5e0; border-radius: 6px; font-size: 1em; }
input[type=text], textarea { flex: 1; }
button[type=submit] { background: #667eea; color: #fff; border: 0; padding: 10px 18px; border-radius: 6px; cursor: pointer; }
.result-item, .cluster-item, .source-item { border: 1px solid #e2e8f0; border-radius: 8px; padding: 14px; margin-bottom: 10px; }
.result-title, .cluster-header { display: flex; justify-content: space-between; font-weight: 600; }
.result-score, .cluster-size { color: #667eea; font-size: .9em; }
.result-content { margin: 8px 0; color: #4a5568; }
.tag, .keyword { display: inline-block; background: #edf2f7; border-radius: 4px; padding: 2px 6px; margin: 2px; font-size: .85em; }
.answer-box { background: #f7fafc; border-left: 4px solid #667eea; padding: 14px; border-radius: 6px; white-space: pre-wrap; }
.message { padding: 12px; border-radius: 6px; margin-bottom: 10px; }
.message-error { background: #fed7d7; color: #9b2c2c; }
.message-info { background: #bee3f8; color: #2a4365; }
.message-success { background: #c6f6d5; color: #22543d; }
.loading-overlay { display: none; position: fixed; inset: 0; background: rgba(0,0,0,.35); align-items: center; justify-content: center; flex-direction: column; color: #fff; }
.loading-overlay.htmx-request { display: flex; }
.spinner { width: 48px; height: 48px; border: 5px solid rgba(255,255,255,.4); border-top-color: #fff; border-radius: 50%; animation: spin 1s linear infinite; }
@keyframes spin { to { transform: rotate(360deg); } }
</style>
</head>
<body>
<div class="container">
<header>
  <h1>QuickHelp</h1>
  <p class="subtitle">Search, ask and explore your knowledge base</p>
  <div id="statsBar" hx-get="/ui/stats" hx-trigger="click" hx-target="#stats" hx-swap="outerHTML" title="Click to refresh">{{.Counters}}</div>
</header>
<main>
{{template "tabNav" .Nav}}
<section id="searchTab" class="tab-content">
  <form hx-post="/ui/search" hx-target="#searchResults" hx-swap="innerHTML" hx-sync="this:replace" hx-indicator="#loadingOverlay">
    <input type="text" id="searchQuery" name="query" placeholder="Enter your search query..." autocomplete="off">
    <select id="searchMode" name="mode">{{range .Form.Modes}}<option value="{{.}}"{{if eq . $.Form.SearchMode}} selected{{end}}>{{.}}</option>{{end}}</select>
    <button type="submit">Search</button>
  </form>
  <div id="searchResults" class="results">{{index .Contents "searchResults"}}</div>
</section>
<section id="askTab" class="tab-content">
  <form hx-post="/ui/ask" hx-target="#answerResult" hx-swap="innerHTML" hx-sync="this:replace" hx-indicator="#loadingOverlay">
    <textarea id="questionInput" name="question" rows="3" placeholder="Ask a question about your documents..."></textarea>
    <button type="submit">Ask</button>
  </form>
  <div id="answerResult" class="results">{{index .Contents "answerResult"}}</div>
</section>
<section id="clusterTab" class="tab-content">
  <form hx-post="/ui/cluster" hx-target="#clusterResults" hx-swap="innerHTML" hx-sync="this:replace" hx-indicator="#loadingOverlay">
    <select id="clusterAlgorithm" name="algorithm">{{range .Form.Algorithms}}<option value="{{.}}"{{if eq . $.Form.Algorithm}} selected{{end}}>{{.}}</option>{{end}}</select>
    <button type="submit">Run Clustering</button>
  </form>
  <div id="clusterResults" class="results">{{index .Contents "clusterResults"}}</div>
</section>
<section id="indexTab" class="tab-content">
  <form hx-post="/ui/index" hx-target="#indexResult" hx-swap="innerHTML" hx-sync="this:replace" hx-indicator="#loadingOverlay">
    <input type="text" id="docPath" name="path" value="{{.Form.IndexPath}}" placeholder="Path to documents...">
    <button type="submit">Index Documents</button>
  </form>
  <div id="indexResult" class="results">{{index .Contents "indexResult"}}</div>
</section>
</main>
</div>
<div id="loadingOverlay" class="loading-overlay"><div class="spinner"></div><p>Loading...</p></div>
</body>
</html>
{{end}}

{{define "tabNav"}}<nav id="tabNav" class="tabs" data-active="{{.Active}}">
{{range .Tabs}}  <button type="button" class="tab-btn{{if .Active}} active{{end}}" data-tab="{{.Name}}" hx-get="/ui/tab/{{.Name}}" hx-target="#tabNav" hx-swap="outerHTML" hx-push-url="/?tab={{.Name}}">{{.Title}}</button>
{{end}}</nav>{{end}}

{{define "oob"}}<div id="{{.ID}}" hx-swap-oob="innerHTML">{{.Inner}}</div>{{end}}
`

var pages = template.Must(template.New("page").Parse(pageTemplates))

// FormDefaults are the choices and initial values of the page's forms.
type FormDefaults struct {
	Modes      []string
	SearchMode string
	Algorithms []string
	Algorithm  string
	IndexPath  string
}

type tabItem struct {
	Name   string
	Title  string
	Active bool
}

type navData struct {
	Active string
	Tabs   []tabItem
}

type pageData struct {
	HTMX     string
	Counters template.HTML
	Nav      navData
	Form     FormDefaults
	// Contents maps a container id to its rendered inner HTML.
	Contents map[string]template.HTML
}

type oobData struct {
	ID    string
	Inner template.HTML
}

func newNav(active controller.Tab) navData {
	nav := navData{Active: active.String()}
	for _, t := range controller.Tabs() {
		nav.Tabs = append(nav.Tabs, tabItem{
			Name:   t.String(),
			Title:  t.Title(),
			Active: t == active,
		})
	}
	return nav
}
