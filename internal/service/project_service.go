package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/offoffice/projectplanner/internal/store"
)

// ProjectService provides project persistence operations: the all-or-nothing
// save of a project together with its tasks, and the ordered read-back.
type ProjectService interface {
	// SaveProjectPlan atomically persists the project and its tasks.
	// The project row is inserted first so its generated identifier can be
	// used for every task insert; any failure rolls the whole write back.
	// A nil task slice is treated as zero tasks.
	// Returns the store-generated project identifier.
	SaveProjectPlan(ctx context.Context, project *domain.Project, tasks []domain.PlannedTask) (int64, error)

	// GetProjectPlan retrieves a project and its tasks ordered by start
	// date ascending, ties broken by insertion order.
	// Returns ErrProjectNotFound if no project exists with the given ID.
	GetProjectPlan(ctx context.Context, id int64) (*domain.Project, []*domain.Task, error)
}

// Common sentinel errors for ProjectService
var (
	// ErrProjectNotFound indicates that the project does not exist
	ErrProjectNotFound = errors.New("project not found")
)

// ProjectServiceError wraps errors from the project service with context.
type ProjectServiceError struct {
	// Operation is the operation that failed (e.g., "save_project_plan")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ProjectServiceError.
func (e *ProjectServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("project service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("project service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ProjectServiceError) Unwrap() error {
	return e.Err
}

// NewProjectServiceError creates a new ProjectServiceError.
// It returns known sentinel errors directly without wrapping.
func NewProjectServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	// Map store-level sentinel errors to service-level ones
	if errors.Is(err, ErrProjectNotFound) || errors.Is(err, store.ErrProjectNotFound) {
		return ErrProjectNotFound
	}

	return &ProjectServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	db           *sql.DB
	projectStore store.ProjectStore
	taskStore    store.TaskStore
	logger       *slog.Logger
}

// NewProjectService creates a new ProjectService.
// It returns an error if any of the required dependencies are nil.
func NewProjectService(
	db *sql.DB,
	projectStore store.ProjectStore,
	taskStore store.TaskStore,
	logger *slog.Logger,
) (ProjectService, error) {
	// Validate dependencies
	if db == nil {
		return nil, &ProjectServiceError{
			Operation: "create_service",
			Message:   "db cannot be nil",
		}
	}
	if projectStore == nil {
		return nil, &ProjectServiceError{
			Operation: "create_service",
			Message:   "projectStore cannot be nil",
		}
	}
	if taskStore == nil {
		return nil, &ProjectServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &projectServiceImpl{
		db:           db,
		projectStore: projectStore,
		taskStore:    taskStore,
		logger:       logger.With("component", "project_service"),
	}, nil
}

// SaveProjectPlan persists the project and its tasks in a single transaction.
// The connection backing the transaction is acquired from the pool for the
// whole write and released on every exit path by RunInTransaction.
func (s *projectServiceImpl) SaveProjectPlan(
	ctx context.Context,
	project *domain.Project,
	tasks []domain.PlannedTask,
) (int64, error) {
	if project == nil {
		return 0, &ProjectServiceError{
			Operation: "save_project_plan",
			Message:   "project cannot be nil",
		}
	}

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		txProjects := s.projectStore.WithTx(tx)
		txTasks := s.taskStore.WithTx(tx)

		// The project insert must precede every task insert: the tasks
		// reference the identifier it generates.
		if err := txProjects.Create(ctx, project); err != nil {
			s.logger.Error("failed to create project in transaction",
				"error", err,
				"kunde", project.Kunde,
				"titel", project.Titel)
			return NewProjectServiceError("save_project_plan", "failed to save project", err)
		}

		for i, planned := range tasks {
			task, err := domain.NewTask(project.ID, planned)
			if err != nil {
				s.logger.Error("invalid task in plan",
					"error", err,
					"project_id", project.ID,
					"task_index", i)
				return NewProjectServiceError("save_project_plan", "invalid task in plan", err)
			}

			if err := txTasks.Create(ctx, task); err != nil {
				s.logger.Error("failed to create task in transaction",
					"error", err,
					"project_id", project.ID,
					"task_index", i,
					"task_name", task.Name)
				return NewProjectServiceError("save_project_plan", "failed to save task", err)
			}
		}

		return nil
	})

	if err != nil {
		// Error is already wrapped in the transaction
		return 0, err
	}

	s.logger.Info("project plan saved successfully",
		"project_id", project.ID,
		"task_count", len(tasks))

	return project.ID, nil
}

// GetProjectPlan retrieves a project and its ordered tasks.
// The two reads are not coordinated by a transaction: tasks are only ever
// written together with their project and never mutated independently, so
// read skew between the reads cannot be observed.
func (s *projectServiceImpl) GetProjectPlan(
	ctx context.Context,
	id int64,
) (*domain.Project, []*domain.Task, error) {
	project, err := s.projectStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrProjectNotFound) {
			s.logger.Debug("project not found", "project_id", id)
			return nil, nil, ErrProjectNotFound
		}
		s.logger.Error("failed to retrieve project",
			"error", err,
			"project_id", id)
		return nil, nil, NewProjectServiceError("get_project_plan", "failed to retrieve project", err)
	}

	tasks, err := s.taskStore.ListByProjectID(ctx, id)
	if err != nil {
		s.logger.Error("failed to retrieve project tasks",
			"error", err,
			"project_id", id)
		return nil, nil, NewProjectServiceError("get_project_plan", "failed to retrieve tasks", err)
	}

	s.logger.Debug("project plan retrieved successfully",
		"project_id", id,
		"task_count", len(tasks))

	return project, tasks, nil
}
