package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/offoffice/projectplanner/internal/api"
	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/offoffice/projectplanner/internal/mocks"
	"github.com/offoffice/projectplanner/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newProjectRouter mounts the handler on a chi router so URL parameters
// are populated the same way as in production.
func newProjectRouter(projectService service.ProjectService) http.Handler {
	handler := api.NewProjectHandler(projectService, nil)
	r := chi.NewRouter()
	r.Post("/save", handler.SaveProject)
	r.Get("/load/{id}", handler.LoadProject)
	return r
}

func TestProjectHandler_SaveProject(t *testing.T) {
	t.Parallel()

	t.Run("successful save", func(t *testing.T) {
		t.Parallel()

		var savedProject *domain.Project
		var savedTasks []domain.PlannedTask

		projectService := &mocks.MockProjectService{
			SaveProjectPlanFn: func(
				ctx context.Context,
				project *domain.Project,
				tasks []domain.PlannedTask,
			) (int64, error) {
				savedProject = project
				savedTasks = tasks
				return 7, nil
			},
		}
		router := newProjectRouter(projectService)

		body := `{
			"project": {"kunde":"Acme","titel":"Launch","datum":"2024-01-01"},
			"tasks": [{"name":"Design","category":"Plan","start":"2024-01-02","end":"2024-01-10","responsible":"Ana"}]
		}`
		req := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.SaveProjectResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(7), resp.ProjectID)

		require.NotNil(t, savedProject)
		assert.Equal(t, "Acme", savedProject.Kunde)
		assert.Equal(t, domain.DefaultOfficeStatus, savedProject.OffOffice)
		require.Len(t, savedTasks, 1)
		assert.Equal(t, "Design", savedTasks[0].Name)
	})

	t.Run("absent tasks field means zero tasks", func(t *testing.T) {
		t.Parallel()

		projectService := &mocks.MockProjectService{
			SaveProjectPlanFn: func(
				ctx context.Context,
				project *domain.Project,
				tasks []domain.PlannedTask,
			) (int64, error) {
				assert.Empty(t, tasks)
				return 3, nil
			},
		}
		router := newProjectRouter(projectService)

		body := `{"project": {"kunde":"Acme","titel":"Launch","datum":"2024-01-01"}}`
		req := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-array tasks field means zero tasks", func(t *testing.T) {
		t.Parallel()

		saveCalled := false
		projectService := &mocks.MockProjectService{
			SaveProjectPlanFn: func(
				ctx context.Context,
				project *domain.Project,
				tasks []domain.PlannedTask,
			) (int64, error) {
				saveCalled = true
				assert.Empty(t, tasks)
				return 3, nil
			},
		}
		router := newProjectRouter(projectService)

		body := `{"project": {"kunde":"Acme","titel":"Launch","datum":"2024-01-01"}, "tasks": "none"}`
		req := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, saveCalled, "a malformed tasks field must not block the save")
	})

	t.Run("non-object task entries are skipped", func(t *testing.T) {
		t.Parallel()

		var savedTasks []domain.PlannedTask
		projectService := &mocks.MockProjectService{
			SaveProjectPlanFn: func(
				ctx context.Context,
				project *domain.Project,
				tasks []domain.PlannedTask,
			) (int64, error) {
				savedTasks = tasks
				return 3, nil
			},
		}
		router := newProjectRouter(projectService)

		body := `{
			"project": {"kunde":"Acme","titel":"Launch","datum":"2024-01-01"},
			"tasks": [{"name":"Design"}, 5, "not a task"]
		}`
		req := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, savedTasks, 1)
		assert.Equal(t, "Design", savedTasks[0].Name)
	})

	t.Run("missing project fields return 400", func(t *testing.T) {
		t.Parallel()

		router := newProjectRouter(&mocks.MockProjectService{})

		body := `{"project": {"kunde":"Acme"}}`
		req := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("persistence failure returns 500", func(t *testing.T) {
		t.Parallel()

		projectService := &mocks.MockProjectService{Err: errors.New("connection refused")}
		router := newProjectRouter(projectService)

		body := `{"project": {"kunde":"Acme","titel":"Launch","datum":"2024-01-01"}}`
		req := httptest.NewRequest(http.MethodPost, "/save", strings.NewReader(body))
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)

		// Internal failure detail is logged, never returned
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestProjectHandler_LoadProject(t *testing.T) {
	t.Parallel()

	t.Run("successful load", func(t *testing.T) {
		t.Parallel()

		projectService := &mocks.MockProjectService{
			Project: &domain.Project{ID: 7, Kunde: "Acme", Titel: "Launch", Datum: "2024-01-01"},
			Tasks: []*domain.Task{
				{ID: 1, ProjectID: 7, Name: "Design", Start: "2024-01-02"},
			},
		}
		router := newProjectRouter(projectService)

		req := httptest.NewRequest(http.MethodGet, "/load/7", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp api.ProjectPlanResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.NotNil(t, resp.Project)
		assert.Equal(t, int64(7), resp.Project.ID)
		require.Len(t, resp.Tasks, 1)
		assert.Equal(t, "Design", resp.Tasks[0].Name)
	})

	t.Run("missing project returns 404", func(t *testing.T) {
		t.Parallel()

		projectService := &mocks.MockProjectService{Err: service.ErrProjectNotFound}
		router := newProjectRouter(projectService)

		req := httptest.NewRequest(http.MethodGet, "/load/999", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric identifier returns 404", func(t *testing.T) {
		t.Parallel()

		projectService := &mocks.MockProjectService{
			GetProjectPlanFn: func(ctx context.Context, id int64) (*domain.Project, []*domain.Task, error) {
				t.Fatal("service must not be called for malformed identifiers")
				return nil, nil, nil
			},
		}
		router := newProjectRouter(projectService)

		req := httptest.NewRequest(http.MethodGet, "/load/abc", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		t.Parallel()

		projectService := &mocks.MockProjectService{Err: errors.New("read timeout")}
		router := newProjectRouter(projectService)

		req := httptest.NewRequest(http.MethodGet, "/load/7", nil)
		rec := httptest.NewRecorder()

		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
