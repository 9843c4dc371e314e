package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelDebug, &buf)

	logger.Debug("discovery start", "suite", "my_suite")
	logger.Warn("config drift", "path", "multiversion-config.yml")

	output := buf.String()
	assert.Contains(t, output, "discovery start")
	assert.Contains(t, output, "suite=my_suite")
	assert.Contains(t, output, "config drift")
	assert.Contains(t, output, "path=multiversion-config.yml")
}

func TestSlogLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.LevelWarn, &buf)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"Error", slog.LevelError},
	}
	for _, tt := range tests {
		level, err := ParseLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, level)
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	_, err := ParseLevel("loud")
	assert.ErrorContains(t, err, "invalid log level: loud")
}
