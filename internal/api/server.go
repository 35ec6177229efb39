// Copyright (c) 2026 SkillSync. All rights reserved.

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

	"github.com/skillsync/api/internal/learning/certificate"
	"github.com/skillsync/api/internal/learning/course"
	"github.com/skillsync/api/internal/learning/enrollment"
	"github.com/skillsync/api/internal/learning/note"
	"github.com/skillsync/api/internal/learning/progress"
	"github.com/skillsync/api/internal/learning/review"
	"github.com/skillsync/api/internal/platform/capability"
	"github.com/skillsync/api/internal/platform/config"
	"github.com/skillsync/api/internal/platform/constants"
	"github.com/skillsync/api/internal/platform/middleware"
	"github.com/skillsync/api/internal/users/auth"
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

	// Auth handles account routes (register, login, profile).
	Auth *auth.Handler

	// Course handles the public catalog and instructor authoring.
	Course *course.Handler

	// Enrollment handles the user-course membership ledger.
	Enrollment *enrollment.Handler

	// Progress handles lesson-level progress tracking.
	Progress *progress.Handler

	// Certificate handles completion award issuance and retrieval.
	Certificate *certificate.Handler

	// Review handles course ratings and their aggregates.
	Review *review.Handler

	// Note handles private per-course study notes.
	Note *note.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The health probes sit outside the degraded-mode gate: a process running
// without its database must still answer orchestration probes, while every
// /api route answers 503 until the capability is restored.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, status capability.Status, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Degraded(status))

		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/courses", h.Course.Routes())
		api.Mount("/enrollments", h.Enrollment.Routes())
		api.Mount("/progress", h.Progress.Routes())
		api.Mount("/certificates", h.Certificate.Routes())
		api.Mount("/reviews", h.Review.Routes())
		api.Mount("/notes", h.Note.Routes())
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
