package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/xapes/xma-slots/internal/database"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthChecker defines the interface for components that can report health
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

const readinessTimeout = 2 * time.Second

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz provides a readiness check over the database and, when given,
// the token network
// @Summary Readiness check
// @Description Returns OK if the database and token network are reachable
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, ledger HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		if err := dbPool.Ping(ctx); err != nil {
			slog.Error("Readiness check failed", "component", "database", "error", err)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: "database connection failed",
			})
			return
		}

		if ledger != nil {
			if err := ledger.CheckHealth(ctx); err != nil {
				slog.Error("Readiness check failed", "component", "ledger", "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  "unavailable",
					Message: "token network unreachable",
				})
				return
			}
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
