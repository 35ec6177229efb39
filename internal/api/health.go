// Copyright (c) 2026 SkillSync. All rights reserved.

// Package api contains the health check handlers for liveness and readiness probes.
package api

import (
	"log/slog"
	"net/http"

	"github.com/skillsync/api/internal/platform/capability"
	"github.com/skillsync/api/internal/platform/respond"
)

// HealthDependencies holds the injectable dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// CheckDatabase pings the PostgreSQL pool. Nil when the process started
	// without a database (degraded mode).
	CheckDatabase func() error
}

type healthHandler struct {
	dependencies HealthDependencies
	status       capability.Status
	logger       *slog.Logger
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, status capability.Status, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, status: status, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health (Liveness probe).
func (handler *healthHandler) liveness(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"status": "ok"})
}

// readiness handles GET /ready (Readiness probe).
//
// A process running in degraded mode reports "degraded" with 503 so
// orchestrators keep it out of rotation without restarting it.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	type checkResult struct {
		Name  string `json:"name"`
		IsOK  bool   `json:"ok"`
		Error string `json:"error,omitempty"`
	}

	if handler.status.Degraded() {
		respond.JSON(writer, http.StatusServiceUnavailable, map[string]any{
			"status": "degraded",
			"checks": []checkResult{{Name: "postgres", IsOK: false, Error: "database unavailable at startup"}},
		})
		return
	}

	results := make([]checkResult, 0, 1)
	isSystemReady := true

	// Check PostgreSQL
	if handler.dependencies.CheckDatabase != nil {
		result := checkResult{Name: "postgres", IsOK: true}
		if err := handler.dependencies.CheckDatabase(); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", "postgres"), slog.Any("error", err))
		}
		results = append(results, result)
	}

	statusCode := http.StatusOK
	statusLabel := "ready"
	if !isSystemReady {
		statusCode = http.StatusServiceUnavailable
		statusLabel = "not_ready"
	}

	respond.JSON(writer, statusCode, map[string]any{
		"status": statusLabel,
		"checks": results,
	})
}
