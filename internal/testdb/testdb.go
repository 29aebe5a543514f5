//go:build integration

// Package testdb provides helpers for integration tests that need a real
// Postgres database. Tests are skipped unless DATABASE_URL (or
// PLANNER_TEST_DB_URL) is set.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// DefaultTimeout bounds individual database operations in tests.
const DefaultTimeout = 5 * time.Second

// URL returns the connection string for the test database, checking
// DATABASE_URL first and PLANNER_TEST_DB_URL as a fallback.
func URL() string {
	if u := os.Getenv("DATABASE_URL"); u != "" {
		return u
	}
	return os.Getenv("PLANNER_TEST_DB_URL")
}

// Get opens a connection to the test database and applies migrations.
// The test is skipped when no test database is configured.
func Get(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := URL()
	if dbURL == "" {
		t.Skip("integration test skipped: DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", dbURL)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() {
		_ = db.Close()
	})

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "test database unreachable")

	migrate(t, db)
	return db
}

// migrate applies all pending migrations from cmd/server/migrations.
func migrate(t *testing.T, db *sql.DB) {
	t.Helper()

	root, err := projectRoot()
	require.NoError(t, err, "failed to locate project root")

	dir := filepath.Join(root, "cmd", "server", "migrations")
	require.DirExists(t, dir)

	goose.SetLogger(goose.NopLogger())
	require.NoError(t, goose.SetDialect("postgres"))
	require.NoError(t, goose.Up(db, dir), "failed to apply migrations")
}

// projectRoot walks up from the working directory until it finds go.mod.
func projectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found in any parent directory")
		}
		dir = parent
	}
}

// WithTx runs fn inside a transaction that is always rolled back,
// isolating the test's writes from other tests.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err, "failed to begin test transaction")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("warning: test transaction rollback failed: %v", err)
		}
	}()

	fn(t, tx)
}
