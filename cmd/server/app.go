package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/offoffice/projectplanner/internal/config"
	"github.com/offoffice/projectplanner/internal/generation"
	"github.com/offoffice/projectplanner/internal/platform/gemini"
	"github.com/offoffice/projectplanner/internal/platform/postgres"
	"github.com/offoffice/projectplanner/internal/service"
	"github.com/offoffice/projectplanner/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown. Everything here is
// constructed once at startup and never mutated afterwards.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	projectStore store.ProjectStore
	taskStore    store.TaskStore

	// Generator capability; nil when not configured
	generator generation.Generator

	// Service interfaces
	planService    service.PlanService
	projectService service.ProjectService
}

// newApplication creates a new application instance with all dependencies initialized.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	// Initialize stores
	app.projectStore = postgres.NewPostgresProjectStore(db, logger)
	app.taskStore = postgres.NewPostgresTaskStore(db, logger)

	// Create the LLM generator when configured. A missing API key is not
	// fatal: the server runs and plan generation reports the absence.
	if cfg.LLM.IsGeneratorConfigured() {
		generator, err := gemini.NewGenerator(
			ctx,
			logger.With("component", "llm_generator"),
			cfg.LLM,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
		}
		app.generator = generator
		logger.Info("LLM generator initialized successfully", "model", cfg.LLM.ModelName)
	} else {
		logger.Warn("LLM generator not configured, plan generation disabled")
	}

	// Initialize plan service
	extractor := generation.NewExtractor(app.generator, logger)
	planService, err := service.NewPlanService(extractor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create plan service: %w", err)
	}
	app.planService = planService

	// Initialize project service
	projectService, err := service.NewProjectService(db, app.projectStore, app.taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}
	app.projectService = projectService

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	// Close database connection
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
