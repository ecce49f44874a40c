package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_WritesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.log")
	logger := New(path, slog.LevelInfo)
	defer logger.Close()

	logger.Info("seed", "triggered statusChange for ISS-1")
	logger.Error("feed", "fetch failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO] [seed] triggered statusChange for ISS-1")
	assert.Contains(t, string(content), "[ERROR] [feed] fetch failed")
}

func TestLogger_LevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inbox.log")
	logger := New(path, slog.LevelWarn)
	defer logger.Close()

	logger.Debug("x", "debug line")
	logger.Info("x", "info line")
	logger.Warn("x", "warn line")

	content, _ := os.ReadFile(path)
	assert.NotContains(t, string(content), "debug line")
	assert.NotContains(t, string(content), "info line")
	assert.Contains(t, string(content), "warn line")
}

func TestLogger_DisabledWithEmptyPath(t *testing.T) {
	logger := New("", slog.LevelInfo)
	// Must not panic or create files.
	logger.Info("x", "ignored")
	assert.NoError(t, logger.Close())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
