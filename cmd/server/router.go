package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/offoffice/projectplanner/internal/api"
	apiMiddleware "github.com/offoffice/projectplanner/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// It accepts the application dependencies to create handlers and register routes.
// Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	// Create API handlers using the application's services
	healthHandler := api.NewHealthHandler(app.db, app.logger)
	planHandler := api.NewPlanHandler(app.planService, app.logger)
	projectHandler := api.NewProjectHandler(app.projectService, app.logger)

	// Register routes
	r.Get("/health", healthHandler.Check)
	r.Post("/generate", planHandler.GeneratePlan)
	r.Post("/save", projectHandler.SaveProject)
	r.Get("/load/{id}", projectHandler.LoadProject)

	return r
}
