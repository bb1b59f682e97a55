// Package web serves the QuickHelp page and the HTML fragments htmx swaps
// into it. Each request gets its own view state and controller, so the
// server keeps no per-user state.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"quickhelp/internal/controller"
	"quickhelp/internal/metrics"
)

// Options configure a Server. Zero values take defaults.
type Options struct {
	InitialTab controller.Tab
	// Controller is applied to every per-request controller. Its Logger is
	// replaced by the request logger.
	Controller  controller.Options
	Form        FormDefaults
	CORSOrigins []string
	Logger      *zap.Logger
}

// Server renders the web UI.
type Server struct {
	backend controller.Backend
	opts    Options
	logger  *zap.Logger
	router  chi.Router
}

// NewServer creates a Server backed by backend.
func NewServer(backend controller.Backend, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if len(opts.CORSOrigins) == 0 {
		opts.CORSOrigins = []string{"*"}
	}
	s := &Server{
		backend: backend,
		opts:    opts,
		logger:  opts.Logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(recoverer(s.logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "HX-Request", "HX-Target", "HX-Trigger", "HX-Current-URL"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(metrics.Middleware())

	r.Get("/", s.handlePage)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/ui", func(r chi.Router) {
		r.Get("/tab/{name}", s.handleTab)
		r.Get("/stats", s.handleStats)
		r.Get("/clusters", s.handleClusters)
		r.Post("/search", s.handleSearch)
		r.Post("/ask", s.handleAsk)
		r.Post("/cluster", s.handleCluster)
		r.Post("/index", s.handleIndex)
	})
	return r
}

// ServeConfig holds listener settings for ListenAndServe.
type ServeConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, cfg ServeConfig) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Received shutdown signal")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("Server stopped gracefully")
	return nil
}
