package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"countryviz/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_NamesCategories(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core), config.LoggingConfig{})
	t.Cleanup(Close)

	for _, cat := range Categories() {
		Get(cat).Info("hello")
	}

	entries := logs.All()
	require.Len(t, entries, len(Categories()))
	for i, cat := range Categories() {
		assert.Equal(t, string(cat), entries[i].LoggerName)
	}
}

func TestGet_DisabledCategoryIsNop(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Replace(zap.New(core), config.LoggingConfig{Categories: map[string]bool{"ui": false}})
	t.Cleanup(Close)

	assert.False(t, IsCategoryEnabled(CategoryUI))
	Get(CategoryUI).Info("hidden")
	Get(CategoryLoad).Info("shown")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestGet_Cached(t *testing.T) {
	Replace(zap.NewNop(), config.LoggingConfig{})
	t.Cleanup(Close)
	assert.Same(t, Get(CategoryView), Get(CategoryView))
}

func TestInitialize_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "countryviz.log")
	logger, err := Initialize(config.LoggingConfig{Level: "info", Format: "json", File: path},
		Options{Session: "abc-123"})
	require.NoError(t, err)
	t.Cleanup(Close)

	logger.Debug("dropped")
	Get(CategoryExport).Info("export written", zap.Int("rows", 3))
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, `"logger":"export"`)
	assert.Contains(t, out, `"session":"abc-123"`)
	assert.Contains(t, out, `"rows":3`)
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestInitialize_VerboseForcesDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	logger, err := Initialize(config.LoggingConfig{Level: "error", File: path}, Options{Verbose: true})
	require.NoError(t, err)
	t.Cleanup(Close)

	logger.Debug("visible")
	require.NoError(t, Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "visible")
}

func TestInitialize_NoSinkIsSilent(t *testing.T) {
	logger, err := Initialize(config.LoggingConfig{Level: "debug"}, Options{})
	require.NoError(t, err)
	t.Cleanup(Close)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestInitialize_BadLevel(t *testing.T) {
	_, err := Initialize(config.LoggingConfig{Level: "loud"}, Options{})
	require.Error(t, err)
}
