package mocks

import (
	"context"

	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/offoffice/projectplanner/internal/service"
)

// MockProjectService implements service.ProjectService for testing
type MockProjectService struct {
	// SaveProjectPlanFn allows test cases to mock the SaveProjectPlan behavior
	SaveProjectPlanFn func(
		ctx context.Context,
		project *domain.Project,
		tasks []domain.PlannedTask,
	) (int64, error)

	// GetProjectPlanFn allows test cases to mock the GetProjectPlan behavior
	GetProjectPlanFn func(ctx context.Context, id int64) (*domain.Project, []*domain.Task, error)

	// Default response values
	ProjectID int64
	Project   *domain.Project
	Tasks     []*domain.Task
	Err       error
}

// Ensure MockProjectService implements service.ProjectService
var _ service.ProjectService = (*MockProjectService)(nil)

// SaveProjectPlan implements the service.ProjectService interface
func (m *MockProjectService) SaveProjectPlan(
	ctx context.Context,
	project *domain.Project,
	tasks []domain.PlannedTask,
) (int64, error) {
	if m.SaveProjectPlanFn != nil {
		return m.SaveProjectPlanFn(ctx, project, tasks)
	}
	return m.ProjectID, m.Err
}

// GetProjectPlan implements the service.ProjectService interface
func (m *MockProjectService) GetProjectPlan(
	ctx context.Context,
	id int64,
) (*domain.Project, []*domain.Task, error) {
	if m.GetProjectPlanFn != nil {
		return m.GetProjectPlanFn(ctx, id)
	}
	return m.Project, m.Tasks, m.Err
}
