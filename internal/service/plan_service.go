package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/offoffice/projectplanner/internal/generation"
)

// PlanService turns a free-text project description into a structured
// task plan via the external generator.
type PlanService interface {
	// GeneratePlan invokes the generator for the given description and
	// returns the extracted task plan.
	// Returns generation.ErrGeneratorUnavailable if no generator is configured.
	GeneratePlan(ctx context.Context, description string) (*domain.TaskPlan, error)
}

// planServiceImpl implements the PlanService interface
type planServiceImpl struct {
	extractor *generation.Extractor
	logger    *slog.Logger
}

// NewPlanService creates a new PlanService backed by the given extractor.
func NewPlanService(extractor *generation.Extractor, logger *slog.Logger) (PlanService, error) {
	if extractor == nil {
		return nil, errors.New("extractor cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &planServiceImpl{
		extractor: extractor,
		logger:    logger.With("component", "plan_service"),
	}, nil
}

// GeneratePlan delegates to the extractor, which fails fast when no
// generator is configured and otherwise funnels every parse failure
// through generation.ErrUnparseable.
func (s *planServiceImpl) GeneratePlan(
	ctx context.Context,
	description string,
) (*domain.TaskPlan, error) {
	plan, err := s.extractor.ExtractPlan(ctx, description)
	if err != nil {
		return nil, err
	}

	s.logger.Info("task plan generated",
		"task_count", len(plan.Tasks),
		"category_count", len(plan.Categories))
	return plan, nil
}
