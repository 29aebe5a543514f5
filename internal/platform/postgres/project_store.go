package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/offoffice/projectplanner/internal/domain"
	"github.com/offoffice/projectplanner/internal/platform/logger"
	"github.com/offoffice/projectplanner/internal/store"
)

// PostgresProjectStore implements the store.ProjectStore interface
// using a PostgreSQL database as the storage backend.
type PostgresProjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresProjectStore creates a new PostgreSQL implementation of the ProjectStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresProjectStore(db store.DBTX, logger *slog.Logger) *PostgresProjectStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresProjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "project_store")),
	}
}

// Ensure PostgresProjectStore implements store.ProjectStore interface
var _ store.ProjectStore = (*PostgresProjectStore)(nil)

// WithTx returns a new ProjectStore instance bound to the given transaction.
func (s *PostgresProjectStore) WithTx(tx *sql.Tx) store.ProjectStore {
	return &PostgresProjectStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.ProjectStore.Create
// It inserts a new project row and assigns the store-generated identifier
// to project.ID. Returns validation errors from the domain Project if data
// is invalid.
func (s *PostgresProjectStore) Create(ctx context.Context, project *domain.Project) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := project.Validate(); err != nil {
		log.Warn("project validation failed during create",
			slog.String("error", err.Error()),
			slog.String("titel", project.Titel))
		return err
	}

	query := `
		INSERT INTO projects (kunde, titel, datum, off_office, notizen, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		project.Kunde,
		project.Titel,
		project.Datum,
		project.OffOffice,
		project.Notizen,
		project.CreatedAt,
	).Scan(&project.ID)

	if err != nil {
		log.Error("failed to create project",
			slog.String("error", err.Error()),
			slog.String("kunde", project.Kunde),
			slog.String("titel", project.Titel))
		return err
	}

	log.Info("project created successfully",
		slog.Int64("project_id", project.ID),
		slog.String("kunde", project.Kunde),
		slog.String("titel", project.Titel))
	return nil
}

// GetByID implements store.ProjectStore.GetByID
// It retrieves a project by its unique ID.
// Returns store.ErrProjectNotFound if the project does not exist.
func (s *PostgresProjectStore) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving project by ID", slog.Int64("project_id", id))

	query := `
		SELECT id, kunde, titel, datum, off_office, notizen, created_at
		FROM projects
		WHERE id = $1
	`

	var project domain.Project
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID,
		&project.Kunde,
		&project.Titel,
		&project.Datum,
		&project.OffOffice,
		&project.Notizen,
		&project.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("project not found", slog.Int64("project_id", id))
			return nil, store.ErrProjectNotFound
		}
		log.Error("failed to get project by ID",
			slog.String("error", err.Error()),
			slog.Int64("project_id", id))
		return nil, err
	}

	log.Debug("project retrieved successfully",
		slog.Int64("project_id", id),
		slog.String("titel", project.Titel))
	return &project, nil
}
