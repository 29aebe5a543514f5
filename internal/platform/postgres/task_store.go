package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/offoffice/projectplanner/internal/platform/logger"
	"github.com/offoffice/projectplanner/internal/store"
)

// PostgreSQL error codes
const pgForeignKeyViolationCode = "23503"

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresTaskStore(db store.DBTX, logger *slog.Logger) *PostgresTaskStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx returns a new TaskStore instance bound to the given transaction.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &PostgresTaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.TaskStore.Create
// It inserts a new task row referencing an existing project and assigns the
// store-generated identifier to task.ID.
// Returns store.ErrInvalidEntity if the project ID doesn't exist (foreign key violation).
func (s *PostgresTaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("name", task.Name))
		return err
	}

	query := `
		INSERT INTO tasks (project_id, name, category, start, end_date, responsible, dependencies)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		task.ProjectID,
		task.Name,
		task.Category,
		task.Start,
		task.End,
		task.Responsible,
		task.Dependencies,
	).Scan(&task.ID)

	if err != nil {
		// Check for foreign key violation
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolationCode {
			log.Warn("foreign key violation during task creation",
				slog.String("error", err.Error()),
				slog.Int64("project_id", task.ProjectID))
			return fmt.Errorf("%w: project with ID %d not found",
				store.ErrInvalidEntity, task.ProjectID)
		}

		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("name", task.Name),
			slog.Int64("project_id", task.ProjectID))
		return err
	}

	log.Debug("task created successfully",
		slog.Int64("task_id", task.ID),
		slog.Int64("project_id", task.ProjectID),
		slog.String("name", task.Name))
	return nil
}

// ListByProjectID implements store.TaskStore.ListByProjectID
// It retrieves all tasks for the given project, ordered by start date
// ascending with ties broken by insertion order. The ordering is stable so
// repeated loads of an unmodified project always return the same sequence.
// Returns an empty slice if the project has no tasks.
func (s *PostgresTaskStore) ListByProjectID(ctx context.Context, projectID int64) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("listing tasks by project", slog.Int64("project_id", projectID))

	query := `
		SELECT id, project_id, name, category, start, end_date, responsible, dependencies
		FROM tasks
		WHERE project_id = $1
		ORDER BY start ASC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query, projectID)
	if err != nil {
		log.Error("failed to query tasks by project",
			slog.String("error", err.Error()),
			slog.Int64("project_id", projectID))
		return nil, err
	}
	defer func() {
		err := rows.Close()
		if err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var tasks []*domain.Task
	for rows.Next() {
		var task domain.Task

		err := rows.Scan(
			&task.ID,
			&task.ProjectID,
			&task.Name,
			&task.Category,
			&task.Start,
			&task.End,
			&task.Responsible,
			&task.Dependencies,
		)
		if err != nil {
			log.Error("failed to scan task row",
				slog.String("error", err.Error()))
			return nil, err
		}

		tasks = append(tasks, &task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no tasks found
	if tasks == nil {
		tasks = []*domain.Task{}
	}

	log.Debug("found tasks by project",
		slog.Int64("project_id", projectID),
		slog.Int("count", len(tasks)))
	return tasks, nil
}
