package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/offoffice/projectplanner/internal/api/shared"
	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/offoffice/projectplanner/internal/generation"
	"github.com/offoffice/projectplanner/internal/service"
)

// GeneratePlanRequest represents the request body for generating a task plan
type GeneratePlanRequest struct {
	ProjectDescription string `json:"projectDescription" validate:"required,min=1"`
}

// TaskPlanResponse represents the response data for a generated task plan
type TaskPlanResponse struct {
	Tasks      []domain.PlannedTask `json:"tasks"`
	Categories []string             `json:"categories"`
}

// PlanHandler handles plan generation HTTP requests
type PlanHandler struct {
	planService service.PlanService
	logger      *slog.Logger
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService service.PlanService, logger *slog.Logger) *PlanHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlanHandler{
		planService: planService,
		logger:      logger.With(slog.String("component", "plan_handler")),
	}
}

// GeneratePlan handles POST /generate requests
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	// Parse request body
	var req GeneratePlanRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "projectDescription is required")
		return
	}

	plan, err := h.planService.GeneratePlan(r.Context(), req.ProjectDescription)
	if err != nil {
		switch {
		case errors.Is(err, generation.ErrGeneratorUnavailable):
			// User-correctable configuration absence, not a server defect
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
				"Plan generation is not configured", err)
		case errors.Is(err, generation.ErrUnparseable):
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Generator returned no usable plan", err)
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				"Failed to generate task plan", err)
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskPlanResponse{
		Tasks:      plan.Tasks,
		Categories: plan.Categories,
	})
}
