package store

import (
	"context"
	"database/sql"

	"github.com/offoffice/projectplanner/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and assigns its
	// store-generated identifier to task.ID.
	// Returns ErrInvalidEntity if the referenced project does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// ListByProjectID retrieves all tasks belonging to the given project,
	// ordered by start date ascending with ties broken by insertion order.
	// Returns an empty slice if the project has no tasks.
	ListByProjectID(ctx context.Context, projectID int64) ([]*domain.Task, error)

	// WithTx returns a new TaskStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) TaskStore
}
