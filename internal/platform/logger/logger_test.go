package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/offoffice/projectplanner/internal/config"
	"github.com/offoffice/projectplanner/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Setup mutates the process-wide default logger, so these tests are not
// parallel.

func TestSetup(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantDebug bool
	}{
		{"debug level enables debug output", "debug", true},
		{"info level suppresses debug output", "info", false},
		{"error level suppresses debug output", "error", false},
		{"unknown level falls back to info", "verbose", false},
		{"level parsing is case-insensitive", "DEBUG", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{Port: 3001, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, log)

			assert.Equal(t, tt.wantDebug, log.Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, log.Enabled(context.Background(), slog.LevelError))
		})
	}
}

func TestContextLogger(t *testing.T) {
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil)).With("trace_id", "abc")

	t.Run("round trip through context", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), scoped)
		assert.Same(t, scoped, logger.FromContext(ctx))
		assert.Same(t, scoped, logger.FromContextOrDefault(ctx, nil))
	})

	t.Run("empty context falls back to default", func(t *testing.T) {
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("empty context prefers provided default", func(t *testing.T) {
		def := slog.New(slog.NewTextHandler(io.Discard, nil))
		assert.Same(t, def, logger.FromContextOrDefault(context.Background(), def))
	})
}
