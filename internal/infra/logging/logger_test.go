package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
		{"Error", slog.LevelError},
		{" warn ", slog.LevelWarn},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.UTC) }

	logger.Info("psql", "parsed 3 issues")

	assert.Equal(t, "[2025-12-30 09:32:51] [INFO] [psql] parsed 3 issues\n", buf.String())
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Debug("test", "debug message")
	logger.Info("test", "info message")
	logger.Warn("test", "warn message")
	logger.Error("test", "error message")

	content := buf.String()
	assert.NotContains(t, content, "debug message")
	assert.NotContains(t, content, "info message")
	assert.Contains(t, content, "[WARN]")
	assert.Contains(t, content, "[ERROR]")
}

func TestLogger_NilWriterDisabled(t *testing.T) {
	logger := New(nil, slog.LevelDebug)

	assert.NotPanics(t, func() { logger.Error("test", "dropped") })
	assert.NoError(t, logger.Close())
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "triage.log")

	logger, err := NewFile(path, slog.LevelDebug)
	require.NoError(t, err)
	logger.Debug("report", "first")
	require.NoError(t, logger.Close())

	logger, err = NewFile(path, slog.LevelDebug)
	require.NoError(t, err)
	logger.Info("report", "second")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[DEBUG] [report] first")
	assert.Contains(t, lines[1], "[INFO] [report] second")

	// Writes after Close are dropped.
	logger.Error("report", "late")
	content, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "late")
}
