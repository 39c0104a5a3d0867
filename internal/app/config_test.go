package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{Seed: ptr(1.0), Count: ptr(2), LogLevel: "info"})
	require.NoError(t, err)
	assert.Equal(t, 2, *cfg.Count)

	_, err = NewConfig(Config{SeriesName: "a"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a series file")

	_, err = NewConfig(Config{Count: ptr(-1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be negative")
}

func TestNewLogger_Levels(t *testing.T) {
	testCases := map[string]bool{
		"debug":   true,
		"info":    false,
		"warn":    false,
		"error":   false,
		"unknown": false,
	}
	for level, debugEnabled := range testCases {
		logger := newLogger(level, "text", io.Discard)
		assert.Equal(t, debugEnabled, logger.Handler().Enabled(t.Context(), slog.LevelDebug), "level %s", level)
	}
}

func TestParseLogLevel(t *testing.T) {
	level, ok := ParseLogLevel("info")
	require.True(t, ok)
	assert.Equal(t, slog.LevelInfo, level)

	_, ok = ParseLogLevel("trace")
	assert.False(t, ok)

	_, ok = ParseLogLevel("INFO")
	assert.False(t, ok, "callers lower-case the value first")
}
