// Package server provides the HTTP server for the redaction review dashboard.
// It handles routing, middleware configuration, and server lifecycle
// management, including graceful shutdown.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/example/redactview/internal/config"
	"github.com/example/redactview/internal/constants"
	"github.com/example/redactview/internal/dashboard"
	"github.com/example/redactview/internal/handlers"
	"github.com/example/redactview/internal/pipeline"
)

// Server represents the dashboard server. It owns the pipeline client, the
// dashboard state (regions, loader, uploader), and the HTTP surface toward
// the operator's browser.
type Server struct {
	// Config contains application configuration
	Config *config.AppConfig

	// Dashboard holds the render regions and the load/upload flows
	Dashboard *dashboard.Dashboard

	// router handles HTTP routing
	router chi.Router

	// handler serves the dashboard routes
	handler *handlers.DashboardHandler

	// assetProxy forwards redacted-image requests to the pipeline backend
	assetProxy http.Handler

	// httpServer is the underlying HTTP server
	httpServer *http.Server
}

// NewServer creates a new server instance with all required components:
// pipeline client → dashboard → handlers → routes.
func NewServer(cfg *config.AppConfig) (*Server, error) {
	client := pipeline.NewClient(&cfg.Pipeline)

	s := &Server{
		Config:    cfg,
		Dashboard: dashboard.New(client),
	}
	s.handler = handlers.NewDashboardHandler(s.Dashboard, cfg.App.Version)

	proxy, err := handlers.NewAssetProxy(client.BaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to set up asset proxy: %w", err)
	}
	s.assetProxy = proxy

	s.SetupRoutes()

	s.httpServer = &http.Server{
		Addr:         cfg.Server.ServerAddress(),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	return s, nil
}

// Start starts the HTTP server and sets up signal handling for graceful
// shutdown. It also kicks off the initial report load, the server-side analog
// of the browser page-load fetch, so the first operator to open the page sees
// a rendered report (or its error placeholders) rather than blank regions.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)

	go func() {
		log.Info().
			Str("address", s.Config.Server.ServerAddress()).
			Msg("Starting server")

		serverErrors <- s.httpServer.ListenAndServe()
	}()

	// Initial load; runs alongside ListenAndServe because the fetch has no
	// deadline and must not delay serving the page shell.
	go func() {
		state := s.Dashboard.Refresh(context.Background())
		log.Info().Stringer("state", state).Msg("Initial report load completed")
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info().
			Str("signal", sig.String()).
			Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), s.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if closeErr := s.httpServer.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the server, waiting for in-flight requests
// to complete within the context timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown error: %w", err)
	}

	log.Info().Msg("Server stopped gracefully")
	return nil
}
