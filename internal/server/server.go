// Package server exposes the render pipeline and graph store over HTTP.
//
// The API is JSON in, JSON out:
//
//	POST   /api/render        render a graph document sent in the body
//	POST   /api/graphs        save a named graph
//	GET    /api/graphs        list saved graphs
//	GET    /api/graphs/{id}   fetch a saved graph
//	PUT    /api/graphs/{id}   replace a saved graph
//	GET    /api/graphs/{id}/dot  render a saved graph to DOT
//	DELETE /api/graphs/{id}   delete a saved graph
//	GET    /healthz           liveness probe
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/dotgen/pkg/cache"
	"github.com/matzehuels/dotgen/pkg/pipeline"
	"github.com/matzehuels/dotgen/pkg/store"
)

// Config holds the server dependencies. Zero values get safe defaults:
// an in-memory store and a disabled cache.
type Config struct {
	Addr   string
	Store  store.Store
	Cache  cache.Cache
	Logger *log.Logger
}

// Server routes API requests to the pipeline and the graph store.
type Server struct {
	addr   string
	store  store.Store
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server with the given configuration.
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.Store == nil {
		cfg.Store = store.NewMemoryStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	s := &Server{
		addr:   cfg.Addr,
		store:  cfg.Store,
		runner: pipeline.NewRunner(cfg.Cache, cfg.Logger),
		logger: cfg.Logger,
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/render", s.handleRender)
		r.Route("/graphs", func(r chi.Router) {
			r.Post("/", s.handleSaveGraph)
			r.Get("/", s.handleListGraphs)
			r.Get("/{id}", s.handleGetGraph)
			r.Put("/{id}", s.handleUpdateGraph)
			r.Get("/{id}/dot", s.handleRenderStored)
			r.Delete("/{id}", s.handleDeleteGraph)
		})
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "addr", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info("server stopped")
		return nil
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
