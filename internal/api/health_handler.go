package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/offoffice/projectplanner/internal/api/shared"
)

// healthCheckTimeout bounds the database ping so the health endpoint
// never hangs on an unresponsive store.
const healthCheckTimeout = 5 * time.Second

// HealthResponse represents the health check response
type HealthResponse struct {
	OK bool `json:"ok"`
	DB bool `json:"db"`
}

// HealthErrorResponse is returned when the health check itself fails
type HealthErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// HealthHandler handles health check HTTP requests
type HealthHandler struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *sql.DB, logger *slog.Logger) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		db:     db,
		logger: logger.With(slog.String("component", "health_handler")),
	}
}

// Check handles GET /health requests
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("health check database ping failed", "error", err)
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, HealthErrorResponse{
			OK:    false,
			Error: "database unreachable",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{OK: true, DB: true})
}
