// Package server exposes loaded libraries over a small JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/specdoc-labs/specdoc/internal/registry"
)

// Server serves the contents of a library registry.
type Server struct {
	registry *registry.LibraryRegistry
	logger   *slog.Logger
}

// New creates a server over reg. A nil logger discards logs.
func New(reg *registry.LibraryRegistry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{registry: reg, logger: logger}
}

// librarySummary is the list-endpoint view of a library.
type librarySummary struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Type     string `json:"type"`
	Scope    string `json:"scope"`
	Keywords int    `json:"keywords"`
	Inits    int    `json:"inits"`
	Format   string `json:"format"`
	Path     string `json:"path"`
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/libraries", s.handleList)
		r.Get("/libraries/{name}", s.handleGet)
	})
	return r
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	libs := s.registry.List()
	summaries := make([]librarySummary, 0, len(libs))
	for _, lib := range libs {
		summaries = append(summaries, librarySummary{
			Name:     lib.Doc.Name,
			Version:  lib.Doc.Version,
			Type:     lib.Doc.Type,
			Scope:    lib.Doc.Scope,
			Keywords: len(lib.Doc.Keywords),
			Inits:    len(lib.Doc.Inits),
			Format:   string(lib.Format),
			Path:     lib.Path,
		})
	}
	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	lib, ok := s.registry.Get(name)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "library not found", "name": name})
		return
	}
	s.writeJSON(w, http.StatusOK, lib.Doc)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving library API", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
