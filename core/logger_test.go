package core

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"DEBUG":    slog.LevelDebug,
		"info":     slog.LevelInfo,
		"WARNING":  slog.LevelWarn,
		"ERROR":    slog.LevelError,
		"CRITICAL": LevelCritical,
	}
	for name, want := range cases {
		got, err := ParseLogLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLogLevel("LOUD")
	assert.True(t, IsInvalidParameter(err))
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, tracker := NewLogger(slog.LevelInfo, &buf)

	logger.Debug("hidden")
	logger.Info("shown", "hosting", "imgur")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "shown hosting=imgur")
	assert.False(t, tracker.HasErrors())
}

func TestErrorTrackerCountsSuppressedErrors(t *testing.T) {
	var buf bytes.Buffer
	logger, tracker := NewLogger(LevelCritical, &buf)

	logger.Error("upload failed")
	logger.Warn("not counted")

	assert.Empty(t, buf.String())
	assert.Equal(t, int64(1), tracker.Count())
	assert.True(t, tracker.HasErrors())
}

func TestLoggerWithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := NewLogger(slog.LevelDebug, &buf)

	logger.With("hosting", "catbox").WithGroup("req").Debug("sent", "status", 200)

	assert.Contains(t, buf.String(), "sent hosting=catbox req.status=200")
}

func TestLoggerQuotesValuesWithSpaces(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := NewLogger(slog.LevelInfo, &buf)

	logger.Info("msg", "path", "my pic.png")

	assert.Contains(t, buf.String(), `path="my pic.png"`)
}
