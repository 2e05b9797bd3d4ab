package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLoggerFromEnv(t *testing.T) {
	t.Run("defaults to warn level and text format", func(t *testing.T) {
		t.Setenv("NCX_LOG_LEVEL", "")
		t.Setenv("NCX_LOG_FORMAT", "")
		logger := NewLoggerFromEnv()
		ctx := context.Background()
		assert.True(t, logger.Enabled(ctx, slog.LevelWarn))
		assert.False(t, logger.Enabled(ctx, slog.LevelInfo))
		assert.IsType(t, &slog.TextHandler{}, logger.Handler())
	})

	t.Run("honors NCX_LOG_LEVEL", func(t *testing.T) {
		t.Setenv("NCX_LOG_LEVEL", "debug")
		logger := NewLoggerFromEnv()
		assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("selects the JSON handler", func(t *testing.T) {
		t.Setenv("NCX_LOG_FORMAT", "json")
		logger := NewLoggerFromEnv()
		assert.IsType(t, &slog.JSONHandler{}, logger.Handler())
	})
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelWarn,
	}
	for input, want := range cases {
		assert.Equal(t, want, parseLogLevel(input), "level %q", input)
	}
}
