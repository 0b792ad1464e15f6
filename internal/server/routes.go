package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/example/redactview/internal/constants"
	"github.com/example/redactview/internal/middleware"
	"github.com/example/redactview/internal/utils"
)

// SetupRoutes configures the routes for the application.
//
// The configured routes include:
// - Health check and version endpoints
// - The dashboard page itself
// - Upload and manual-refresh form posts
// - The redacted-image asset proxy under the fixed image root
func (s *Server) SetupRoutes() {
	r := chi.NewRouter()

	// Base middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Recovery())
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.SecurityHeaders())

	// Health check and version routes
	r.Group(func(r chi.Router) {
		r.Get(constants.HealthPath, func(w http.ResponseWriter, r *http.Request) {
			utils.JSON(w, http.StatusOK, map[string]string{
				"status":  "healthy",
				"version": s.Config.App.Version,
			})
		})

		r.Get(constants.VersionPath, func(w http.ResponseWriter, r *http.Request) {
			utils.JSON(w, http.StatusOK, map[string]string{
				"version":     s.Config.App.Version,
				"environment": s.Config.App.Environment,
			})
		})
	})

	// Dashboard routes. The page is never cached: its regions change with
	// every load and upload, and stale snapshots would hide the status line.
	r.Group(func(r chi.Router) {
		r.Use(chimiddleware.NoCache)

		r.Get(constants.DashboardPath, s.handler.ServePage)
		r.Post(constants.UploadPath, s.handler.Upload)
		r.Post(constants.RefreshPath, s.handler.Refresh)
	})

	// Redacted-image assets, proxied to the pipeline backend.
	r.Handle(constants.ImageRoot+"/*", s.assetProxy)

	s.router = r
}

// GetRouter returns the configured router. Primarily used for testing.
func (s *Server) GetRouter() chi.Router {
	return s.router
}
