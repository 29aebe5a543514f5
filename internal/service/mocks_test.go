package service

import (
	"context"
	"database/sql"

	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/offoffice/projectplanner/internal/store"
)

// mockProjectStore implements store.ProjectStore for service tests.
// WithTx returns the mock itself so transactional code paths can be
// exercised without a real database connection.
type mockProjectStore struct {
	createFn  func(ctx context.Context, project *domain.Project) error
	getByIDFn func(ctx context.Context, id int64) (*domain.Project, error)
}

var _ store.ProjectStore = (*mockProjectStore)(nil)

func (m *mockProjectStore) Create(ctx context.Context, project *domain.Project) error {
	if m.createFn != nil {
		return m.createFn(ctx, project)
	}
	return nil
}

func (m *mockProjectStore) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrProjectNotFound
}

func (m *mockProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	return m
}

// mockTaskStore implements store.TaskStore for service tests.
type mockTaskStore struct {
	createFn          func(ctx context.Context, task *domain.Task) error
	listByProjectIDFn func(ctx context.Context, projectID int64) ([]*domain.Task, error)
}

var _ store.TaskStore = (*mockTaskStore)(nil)

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) ListByProjectID(ctx context.Context, projectID int64) ([]*domain.Task, error) {
	if m.listByProjectIDFn != nil {
		return m.listByProjectIDFn(ctx, projectID)
	}
	return []*domain.Task{}, nil
}

func (m *mockTaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return m
}
