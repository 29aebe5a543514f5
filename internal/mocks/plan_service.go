package mocks

import (
	"context"

	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/offoffice/projectplanner/internal/service"
)

// MockPlanService implements service.PlanService for testing
type MockPlanService struct {
	// GeneratePlanFn allows test cases to mock the GeneratePlan behavior
	GeneratePlanFn func(ctx context.Context, description string) (*domain.TaskPlan, error)

	// Default response values
	Plan *domain.TaskPlan
	Err  error
}

// Ensure MockPlanService implements service.PlanService
var _ service.PlanService = (*MockPlanService)(nil)

// GeneratePlan implements the service.PlanService interface
func (m *MockPlanService) GeneratePlan(
	ctx context.Context,
	description string,
) (*domain.TaskPlan, error) {
	if m.GeneratePlanFn != nil {
		return m.GeneratePlanFn(ctx, description)
	}
	return m.Plan, m.Err
}
