// Package api exposes the scanner and playbook builder over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/flux-imaging/prospect-cli/internal/config"
	"github.com/flux-imaging/prospect-cli/internal/intel"
	"github.com/flux-imaging/prospect-cli/internal/playbook"
	"github.com/flux-imaging/prospect-cli/internal/store"
)

// Server holds the dependencies for the HTTP server. Builder may be nil
// when no API key is configured; playbook routes then return 503.
type Server struct {
	cfg        config.ServerConfig
	router     http.Handler
	httpServer *http.Server
	scanner    *intel.Scanner
	store      store.Store
	builder    *playbook.Builder
}

// NewServer wires the scanner, store, and optional playbook builder into a
// routed server.
func NewServer(cfg config.ServerConfig, scanner *intel.Scanner, st store.Store, builder *playbook.Builder) *Server {
	s := &Server{
		cfg:     cfg,
		scanner: scanner,
		store:   st,
		builder: builder,
	}
	s.router = s.setupRouter()
	return s
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.cfg.Port),
		Handler:      s.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
