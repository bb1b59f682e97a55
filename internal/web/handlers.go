package web

import (
	"bytes"
	"context"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quickhelp/internal/controller"
	"quickhelp/internal/logger"
	"quickhelp/internal/render"
)

// newController builds a controller writing to a fresh view state.
func (s *Server) newController(ctx context.Context, tab controller.Tab) (*controller.Controller, *controller.ViewState) {
	state := controller.NewViewState(tab)
	opts := s.opts.Controller
	opts.Logger = logger.FromContext(ctx)
	return controller.New(s.backend, state, opts), state
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	tab := s.opts.InitialTab
	if name := r.URL.Query().Get("tab"); name != "" {
		t, err := controller.ParseTab(name)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		tab = t
	}

	ctx := r.Context()
	ctrl, state := s.newController(ctx, tab)

	var g errgroup.Group
	g.Go(func() error {
		ctrl.LoadStats(ctx)
		return nil
	})
	if tab == controller.TabCluster {
		g.Go(func() error {
			ctrl.LoadClusters(ctx)
			return nil
		})
	}
	_ = g.Wait()

	snap := state.Snapshot()
	counters, err := render.CountersHTML(snap.Counters, snap.HasCounters, false)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data := pageData{
		HTMX:     htmxURL,
		Counters: counters,
		Nav:      newNav(snap.Tab),
		Form:     s.opts.Form,
		Contents: make(map[string]template.HTML),
	}
	for target, c := range snap.Contents {
		html, err := render.HTML(c)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		data.Contents[target.String()] = html
	}
	s.write(w, r, "page", data)
}

// handleTab swaps the tab nav. Entering the cluster tab also swaps in the
// saved clusters out of band.
func (s *Server) handleTab(w http.ResponseWriter, r *http.Request) {
	tab, err := controller.ParseTab(chi.URLParam(r, "name"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	ctx := r.Context()
	ctrl, state := s.newController(ctx, s.opts.InitialTab)
	ctrl.SelectTab(ctx, tab)
	snap := state.Snapshot()

	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, "tabNav", newNav(snap.Tab)); err != nil {
		s.fail(w, r, err)
		return
	}
	if c := snap.Content(controller.TargetClusterResults); c != nil {
		inner, err := render.HTML(c)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		oob := oobData{ID: controller.TargetClusterResults.String(), Inner: inner}
		if err := pages.ExecuteTemplate(&buf, "oob", oob); err != nil {
			s.fail(w, r, err)
			return
		}
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	ctrl, state := s.newController(ctx, s.opts.InitialTab)
	ctrl.LoadStats(ctx)
	snap := state.Snapshot()

	html, err := render.CountersHTML(snap.Counters, snap.HasCounters, false)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, []byte(html))
}

func (s *Server) handleClusters(w http.ResponseWriter, r *http.Request) {
	s.fragment(w, r, controller.TargetClusterResults, func(ctx context.Context, c *controller.Controller) {
		c.LoadClusters(ctx)
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	s.fragment(w, r, controller.TargetSearchResults, func(ctx context.Context, c *controller.Controller) {
		mode := r.PostFormValue("mode")
		if mode == "" {
			mode = s.opts.Form.SearchMode
		}
		c.Search(ctx, r.PostFormValue("query"), mode)
	})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	s.fragment(w, r, controller.TargetAnswerResult, func(ctx context.Context, c *controller.Controller) {
		c.Ask(ctx, r.PostFormValue("question"))
	})
}

func (s *Server) handleCluster(w http.ResponseWriter, r *http.Request) {
	s.fragment(w, r, controller.TargetClusterResults, func(ctx context.Context, c *controller.Controller) {
		algorithm := r.PostFormValue("algorithm")
		if algorithm == "" {
			algorithm = s.opts.Form.Algorithm
		}
		c.RunClustering(ctx, algorithm)
	})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.fragment(w, r, controller.TargetIndexResult, func(ctx context.Context, c *controller.Controller) {
		c.Index(ctx, r.PostFormValue("path"))
	})
}

// fragment runs one operation and writes the inner HTML of target. When the
// operation refreshed the counters they follow as an out-of-band swap.
func (s *Server) fragment(w http.ResponseWriter, r *http.Request, target controller.Target, run func(context.Context, *controller.Controller)) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	ctrl, state := s.newController(ctx, tabFor(target))
	run(ctx, ctrl)
	snap := state.Snapshot()

	html, err := render.HTML(snap.Content(target))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out := []byte(html)
	if snap.HasCounters {
		counters, err := render.CountersHTML(snap.Counters, true, true)
		if err != nil {
			s.fail(w, r, err)
			return
		}
		out = append(out, counters...)
	}
	writeHTML(w, out)
}

func (s *Server) write(w http.ResponseWriter, r *http.Request, name string, data any) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		s.fail(w, r, err)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromContext(r.Context()).Error("render failed", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(body)
}

func tabFor(target controller.Target) controller.Tab {
	for _, t := range controller.Tabs() {
		if controller.TargetFor(t) == target {
			return t
		}
	}
	return controller.TabSearch
}
