// Copyright (c) 2026 Marquee. All rights reserved.
// Author: asher.court.dev@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ashercourt/marquee/internal/admin"
	"github.com/ashercourt/marquee/internal/core/chapter"
	"github.com/ashercourt/marquee/internal/core/pairing"
	"github.com/ashercourt/marquee/internal/core/project"
	"github.com/ashercourt/marquee/internal/core/recipe"
	"github.com/ashercourt/marquee/internal/core/shelf"
	"github.com/ashercourt/marquee/internal/core/sitecfg"
	"github.com/ashercourt/marquee/internal/core/upload"
	"github.com/ashercourt/marquee/internal/platform/config"
	"github.com/ashercourt/marquee/internal/platform/constants"
	"github.com/ashercourt/marquee/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Admin handles dashboard authentication (login, logout).
	Admin *admin.Handler

	// Project handles the catalog items (films, shows, songs, books, comics).
	Project *project.Handler

	// Chapter handles per-project chapters and audio previews.
	Chapter *chapter.Handler

	// Recipe handles the kitchen section.
	Recipe *recipe.Handler

	// Pairing handles cross-entity pairings and tag inheritance.
	Pairing *pairing.Handler

	// Shelf handles page content rows and their matching rules.
	Shelf *shelf.Handler

	// Site handles footer links, page settings, email capture, and shop config.
	Site *sitecfg.Handler

	// Upload handles asset uploads to object storage.
	Upload *upload.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, sessions middleware.SessionChecker, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier, sessions))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {

		// Login lives outside the auth gate; logout inside admin.Routes
		// applies its own RequireAuth group.
		api.Mount("/auth", h.Admin.Routes())

		// Everything else is dashboard-only.
		api.Group(func(dashboard chi.Router) {
			dashboard.Use(middleware.RequireAuth())

			dashboard.Route("/projects", func(projects chi.Router) {
				projects.Mount("/", h.Project.Routes())
				projects.Mount("/{projectID}/chapters", h.Chapter.ProjectRoutes())
				projects.Get("/{projectID}/shelves", h.Shelf.ShelvesForProject)
			})

			dashboard.Mount("/chapters", h.Chapter.Routes())
			dashboard.Mount("/recipes", h.Recipe.Routes())
			dashboard.Mount("/pairings", h.Pairing.Routes())
			dashboard.Mount("/rows", h.Shelf.Routes())
			dashboard.Mount("/site", h.Site.Routes())
			dashboard.Mount("/uploads", h.Upload.Routes())
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
