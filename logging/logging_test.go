package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisabledIsNop(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closeFn, err := New(Options{Enabled: false, Dir: dir})
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	defer closeFn()

	logger.Info("discarded")
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "disabled logging must not create the log dir")
}

func TestNewEnabledWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	logger, closeFn, err := New(Options{Enabled: true, Level: "debug", Format: "json", Dir: dir})
	require.NoError(t, err)

	logger.Debug("frame")
	logger.Info("asset loaded")
	closeFn()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "asset loaded")
	assert.Contains(t, string(data), `"level":"debug"`)
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	dir := t.TempDir()
	logger, closeFn, err := New(Options{Enabled: true, Level: "loud", Dir: dir})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown")
	closeFn()

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
