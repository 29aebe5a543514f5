package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/offoffice/projectplanner/internal/api/shared"
	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/offoffice/projectplanner/internal/service"
)

// ProjectInput represents the project portion of a save request
type ProjectInput struct {
	Kunde     string `json:"kunde"     validate:"required"`
	Titel     string `json:"titel"     validate:"required"`
	Datum     string `json:"datum"     validate:"required"`
	OffOffice string `json:"offOffice"`
	Notizen   string `json:"notizen"`
}

// TaskInput represents a single task in a save request.
// All fields are free text; absent fields default to the empty string.
type TaskInput struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Responsible  string `json:"responsible"`
	Dependencies string `json:"dependencies"`
}

// SaveProjectRequest represents the request body for saving a project with its tasks.
// Tasks stays raw so a missing or non-array tasks field can be coerced to
// zero tasks instead of failing the whole request at decode time.
type SaveProjectRequest struct {
	Project ProjectInput    `json:"project" validate:"required"`
	Tasks   json.RawMessage `json:"tasks"`
}

// SaveProjectResponse represents the response data for a successful save
type SaveProjectResponse struct {
	Success   bool  `json:"success"`
	ProjectID int64 `json:"projectId"`
}

// ProjectPlanResponse represents the response data for a loaded project
type ProjectPlanResponse struct {
	Project *domain.Project `json:"project"`
	Tasks   []*domain.Task  `json:"tasks"`
}

// ProjectHandler handles project persistence HTTP requests
type ProjectHandler struct {
	projectService service.ProjectService
	logger         *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(projectService service.ProjectService, logger *slog.Logger) *ProjectHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProjectHandler{
		projectService: projectService,
		logger:         logger.With(slog.String("component", "project_handler")),
	}
}

// SaveProject handles POST /save requests
func (h *ProjectHandler) SaveProject(w http.ResponseWriter, r *http.Request) {
	// Parse request body
	var req SaveProjectRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Validate request
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	project, err := domain.NewProject(
		req.Project.Kunde,
		req.Project.Titel,
		req.Project.Datum,
		req.Project.OffOffice,
		req.Project.Notizen,
	)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	projectID, err := h.projectService.SaveProjectPlan(r.Context(), project, plannedTasks(req.Tasks))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to save project", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, SaveProjectResponse{
		Success:   true,
		ProjectID: projectID,
	})
}

// LoadProject handles GET /load/{id} requests
func (h *ProjectHandler) LoadProject(w http.ResponseWriter, r *http.Request) {
	// A non-numeric identifier cannot name any project, so it is reported
	// the same way as a missing one.
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Project not found")
		return
	}

	project, tasks, err := h.projectService.GetProjectPlan(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			// Expected, user-facing condition distinct from infrastructure failure
			shared.RespondWithError(w, r, http.StatusNotFound, "Project not found")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to load project", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProjectPlanResponse{
		Project: project,
		Tasks:   tasks,
	})
}

// plannedTasks leniently converts the raw tasks field into the domain plan
// shape. An absent, null, or non-array tasks field means zero tasks, and
// array elements that are not task objects are skipped; malformed task
// input never fails a save.
func plannedTasks(raw json.RawMessage) []domain.PlannedTask {
	if len(raw) == 0 {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil
	}

	tasks := make([]domain.PlannedTask, 0, len(elements))
	for _, element := range elements {
		var input TaskInput
		if err := json.Unmarshal(element, &input); err != nil {
			continue
		}
		tasks = append(tasks, domain.PlannedTask{
			Name:         input.Name,
			Category:     input.Category,
			Start:        input.Start,
			End:          input.End,
			Responsible:  input.Responsible,
			Dependencies: input.Dependencies,
		})
	}
	return tasks
}
