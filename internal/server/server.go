// Package server provides the HTTP API exposing the moji text tools.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hyperjump/moji/internal/config"
	"github.com/hyperjump/moji/internal/extract"
	"go.uber.org/zap"
)

// Server is the HTTP server for the moji API.
type Server struct {
	extractor *extract.Extractor
	config    *config.Config
	logger    *zap.Logger
	server    *http.Server
}

// NewServer creates a server with the given dependencies.
func NewServer(extractor *extract.Extractor, cfg *config.Config, logger *zap.Logger) *Server {
	return &Server{
		extractor: extractor,
		config:    cfg,
		logger:    logger,
	}
}

// routes builds the router. Split out so handler tests can exercise the full
// middleware stack without a listening socket.
func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Post("/api/v1/analyze", s.handleAnalyze)
	r.Post("/api/v1/analyze/file", s.handleAnalyzeFile)
	r.Post("/api/v1/palindrome", s.handlePalindrome)
	r.Post("/api/v1/caesar", s.handleCaesar)
	r.Get("/health", s.handleHealth)
	return r
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.routes(),
	}
	s.logger.Info("Starting server", zap.String("addr", addr))
	return s.server.ListenAndServe()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	s.logger.Info("Stopping server")
	return s.server.Shutdown(ctx)
}
