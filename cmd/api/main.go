// Copyright (c) 2026 SkillSync. All rights reserved.

// Command api is the entry point for the SkillSync HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool); ALLOW_DEGRADED decides whether a
//     failure here is fatal or leaves the process serving 503s.
//  4. Run database migrations (idempotent, skipped in degraded mode).
//  5. Wire HTTP handlers.
//  6. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillsync/api/internal/api"
	"github.com/skillsync/api/internal/learning/certificate"
	"github.com/skillsync/api/internal/learning/course"
	"github.com/skillsync/api/internal/learning/enrollment"
	"github.com/skillsync/api/internal/learning/note"
	"github.com/skillsync/api/internal/learning/progress"
	"github.com/skillsync/api/internal/learning/review"
	"github.com/skillsync/api/internal/platform/capability"
	"github.com/skillsync/api/internal/platform/config"
	"github.com/skillsync/api/internal/platform/constants"
	"github.com/skillsync/api/internal/platform/migration"
	pgstore "github.com/skillsync/api/internal/platform/postgres"
	"github.com/skillsync/api/internal/platform/sec"
	"github.com/skillsync/api/internal/users/auth"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", constants.AppName))
	slog.SetDefault(log)

	log.Info("[SkillSync] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", constants.AppName))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	// The capability is decided exactly once, here. With ALLOW_DEGRADED set,
	// a failed connection leaves the process alive answering health probes
	// and 503s instead of crash-looping while the database recovers.
	status := capability.Status{DatabaseReady: true}

	var pool *pgxpool.Pool
	pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	if err != nil {
		if !cfg.AllowDegraded {
			must(log, err, "connect to postgres")
		}
		log.Error("postgres unavailable, continuing in degraded mode", slog.Any("error", err))
		status = capability.Status{DatabaseReady: false}
		pool = nil
	}
	defer func() {
		if pool != nil {
			log.Info("closing postgres pool")
			pool.Close()
		}
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	if status.DatabaseReady {
		must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")
	}

	// ── 5. Token Service ──────────────────────────────────────────────────
	jwtSvc, err := sec.NewTokenService(cfg.JWTSecret, constants.AuthIssuer)
	must(log, err, "initialize jwt service")

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	healthDeps := api.HealthDependencies{}
	if pool != nil {
		healthDeps.CheckDatabase = func() error {
			return pgstore.Ping(context.Background(), pool)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, status, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	// In degraded mode the pool is nil; every /api route is short-circuited
	// by the Degraded middleware before any repository is touched.
	userRepository := auth.NewUserRepository(pool)
	authService := auth.NewService(userRepository, jwtSvc)
	authHandler := auth.NewHandler(authService)

	courseRepository := course.NewPostgresRepository(pool)
	courseService := course.NewService(courseRepository)
	courseHandler := course.NewHandler(courseService)

	enrollmentRepository := enrollment.NewPostgresRepository(pool)
	enrollmentService := enrollment.NewService(enrollmentRepository, courseRepository)
	enrollmentHandler := enrollment.NewHandler(enrollmentService)

	progressRepository := progress.NewPostgresRepository(pool)
	progressService := progress.NewService(progressRepository)
	progressHandler := progress.NewHandler(progressService)

	certificateRepository := certificate.NewPostgresRepository(pool)
	certificateService := certificate.NewService(certificateRepository, progressService, courseRepository)
	certificateHandler := certificate.NewHandler(certificateService)

	reviewRepository := review.NewPostgresRepository(pool)
	reviewService := review.NewService(reviewRepository, enrollmentService)
	reviewHandler := review.NewHandler(reviewService)

	noteRepository := note.NewPostgresRepository(pool)
	noteService := note.NewService(noteRepository)
	noteHandler := note.NewHandler(noteService)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Auth:        authHandler,
		Course:      courseHandler,
		Enrollment:  enrollmentHandler,
		Progress:    progressHandler,
		Certificate: certificateHandler,
		Review:      reviewHandler,
		Note:        noteHandler,
	}

	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, jwtSvc, status, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
