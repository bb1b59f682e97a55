package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"quickhelp/internal/api"
	"quickhelp/internal/controller"
)

// stubBackend returns canned responses for the app tests.
type stubBackend struct {
	searchReq api.SearchRequest
	clusters  []api.Cluster
	searchErr error
}

func (s *stubBackend) Stats(context.Context) (*api.StatsResponse, error) {
	return &api.StatsResponse{
		Envelope: api.Envelope{Success: true},
		Stats:    &api.Stats{TotalDocuments: 42, TotalWords: 1234567, UniqueTags: 7},
	}, nil
}

func (s *stubBackend) Clusters(context.Context) (*api.ClustersResponse, error) {
	return &api.ClustersResponse{Envelope: api.Envelope{Success: true}, Clusters: s.clusters}, nil
}

func (s *stubBackend) Search(_ context.Context, req api.SearchRequest) (*api.SearchResponse, error) {
	s.searchReq = req
	if s.searchErr != nil {
		return nil, s.searchErr
	}
	return &api.SearchResponse{
		Envelope: api.Envelope{Success: true},
		Results: []api.SearchResult{{
			Title: "Install", Content: "Run make install", Path: "docs/install.md",
			Score: 0.8421, Tags: []string{"setup", "install"},
		}},
	}, nil
}

func (s *stubBackend) Ask(context.Context, api.AskRequest) (*api.AskResponse, error) {
	return &api.AskResponse{Envelope: api.Envelope{Success: true}, Answer: "Run make install."}, nil
}

func (s *stubBackend) Cluster(context.Context, api.ClusterRequest) (*api.ClustersResponse, error) {
	return &api.ClustersResponse{Envelope: api.Envelope{Success: true}, Clusters: s.clusters}, nil
}

func (s *stubBackend) Index(context.Context, api.IndexRequest) (*api.IndexResponse, error) {
	return &api.IndexResponse{Envelope: api.Envelope{Error: "path not found"}}, nil
}

func newTestApp(t *testing.T, backend controller.Backend, initial controller.Tab) *appModelAdapter {
	t.Helper()
	state := controller.NewViewState(initial)
	ctrl := controller.New(backend, state, controller.Options{})
	m := NewAppModel(context.Background(), ctrl, state, Options{})
	return m.AsTeaModel().(*appModelAdapter)
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, a *appModelAdapter, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	a.Update(cmd())
}

func TestApp_InitialView(t *testing.T) {
	a := newTestApp(t, &stubBackend{}, controller.TabSearch)
	view := a.View()
	for _, want := range []string{"QuickHelp", "F1 Search", "F4 Index", "Query", "- documents", "Type a query"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_ReloadStats(t *testing.T) {
	a := newTestApp(t, &stubBackend{}, controller.TabSearch)

	_, cmd := a.Update(keyMsg("ctrl+r"))
	run(t, a, cmd) // ReloadStatsMsg
	_, cmd = a.Update(ReloadStatsMsg{})
	run(t, a, cmd) // OperationDoneMsg

	view := a.View()
	for _, want := range []string{"42 documents", "1,234,567 words", "7 tags"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestApp_SearchFlow(t *testing.T) {
	backend := &stubBackend{}
	a := newTestApp(t, backend, controller.TabSearch)

	typeText(a.activePanel(), "install steps")
	_, cmd := a.Update(keyMsg("enter"))
	if cmd == nil {
		t.Fatal("enter should submit")
	}
	submit, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatal("expected SubmitMsg")
	}

	op := a.handleSubmit(submit)
	if a.inflight != 1 {
		t.Errorf("inflight = %d, want 1", a.inflight)
	}
	run(t, a, op)

	if a.inflight != 0 {
		t.Errorf("inflight after done = %d, want 0", a.inflight)
	}
	if backend.searchReq.Query != "install steps" || backend.searchReq.MaxResults != 10 {
		t.Errorf("search request = %+v", backend.searchReq)
	}
	view := a.View()
	for _, want := range []string{"Found 1 results:", "1. Install", "0.842", "#setup #install"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Loading...") {
		t.Error("overlay should be hidden after the search returns")
	}
}

func TestApp_SearchValidation(t *testing.T) {
	backend := &stubBackend{}
	a := newTestApp(t, backend, controller.TabSearch)

	run(t, a, a.handleSubmit(SubmitMsg{Tab: controller.TabSearch, Values: map[string]string{FieldQuery: "   "}}))

	if !strings.Contains(a.View(), "Please enter a search query") {
		t.Error("expected validation message")
	}
	if backend.searchReq.Query != "" {
		t.Error("no request may be issued for a blank query")
	}
}

func TestApp_SearchTransportError(t *testing.T) {
	backend := &stubBackend{searchErr: errors.New("search: connection refused")}
	a := newTestApp(t, backend, controller.TabSearch)

	run(t, a, a.handleSubmit(SubmitMsg{Tab: controller.TabSearch, Values: map[string]string{FieldQuery: "q"}}))

	if !strings.Contains(a.View(), "Error performing search: connection refused") {
		t.Errorf("expected transport error in view:\n%s", a.View())
	}
}

func TestApp_TabSwitching(t *testing.T) {
	a := newTestApp(t, &stubBackend{}, controller.TabSearch)

	_, cmd := a.Update(keyMsg("ctrl+right"))
	run(t, a, cmd)
	if a.snap.Tab != controller.TabAsk {
		t.Fatalf("tab after ctrl+right = %v, want ask", a.snap.Tab)
	}

	_, cmd = a.Update(keyMsg("ctrl+left"))
	run(t, a, cmd)
	_, cmd = a.Update(keyMsg("ctrl+left"))
	run(t, a, cmd)
	if a.snap.Tab != controller.TabIndex {
		t.Fatalf("tab after wrap = %v, want index", a.snap.Tab)
	}

	_, cmd = a.Update(keyMsg("f2"))
	run(t, a, cmd)
	if a.snap.Tab != controller.TabAsk {
		t.Errorf("tab after f2 = %v, want ask", a.snap.Tab)
	}
}

func TestApp_EnterClusterTabLoadsClusters(t *testing.T) {
	a := newTestApp(t, &stubBackend{}, controller.TabSearch)

	_, cmd := a.Update(SwitchTabMsg{Tab: controller.TabCluster})
	if cmd == nil {
		t.Fatal("entering the cluster tab should load clusters")
	}
	run(t, a, cmd)

	if !strings.Contains(a.View(), `No clusters available. Click "Run Clustering" to generate.`) {
		t.Errorf("expected no-clusters message:\n%s", a.View())
	}

	_, cmd = a.Update(SwitchTabMsg{Tab: controller.TabAsk})
	if cmd != nil {
		t.Error("other tabs load nothing")
	}
}

func TestApp_IndexRejection(t *testing.T) {
	a := newTestApp(t, &stubBackend{}, controller.TabIndex)

	run(t, a, a.handleSubmit(SubmitMsg{Tab: controller.TabIndex, Values: map[string]string{FieldPath: "/missing"}}))

	view := a.View()
	if !strings.Contains(view, "✗ Error") || !strings.Contains(view, "path not found") {
		t.Errorf("expected error block:\n%s", view)
	}
}

func TestApp_OverlayWhileLoading(t *testing.T) {
	a := newTestApp(t, &stubBackend{}, controller.TabSearch)

	a.State.ShowLoading()
	a.refresh()
	if !strings.Contains(a.View(), "Loading...") {
		t.Error("overlay should render while loading")
	}
	a.State.HideLoading()
	a.refresh()
	if strings.Contains(a.View(), "Loading...") {
		t.Error("overlay should be gone after hide")
	}
}

func TestApp_Quit(t *testing.T) {
	a := newTestApp(t, &stubBackend{}, controller.TabSearch)
	for _, k := range []string{"ctrl+c", "esc"} {
		_, cmd := a.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s should quit", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s: expected QuitMsg", k)
		}
	}
}

func TestApp_WindowResize(t *testing.T) {
	a := newTestApp(t, &stubBackend{}, controller.TabSearch)
	a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if a.width != 120 || a.height != 40 {
		t.Errorf("size = %dx%d", a.width, a.height)
	}
	if lines := strings.Count(a.View(), "\n") + 1; lines > 40 {
		t.Errorf("view is %d lines tall, terminal has 40", lines)
	}
}
