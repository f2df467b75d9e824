package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"ATRISURE_EXPORT_DIR", "ATRISURE_DEFAULT_MODULE", "ATRISURE_LOG_FILE", "ATRISURE_LOG_LEVEL", "ATRISURE_OTEL_ENDPOINT", "ATRISURE_OTEL_SERVICE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "client-orbit", c.DefaultModule)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "atrisure", c.OTelService)
	assert.Equal(t, filepath.Join(os.TempDir(), "atrisure.log"), c.LogFile)
	assert.Empty(t, c.OTelEndpoint)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ATRISURE_EXPORT_DIR", "/tmp/exports")
	t.Setenv("ATRISURE_DEFAULT_MODULE", "analytics-pulse")
	t.Setenv("ATRISURE_LOG_LEVEL", "debug")
	t.Setenv("ATRISURE_LOG_FILE", "/tmp/a.log")
	t.Setenv("ATRISURE_OTEL_ENDPOINT", "http://localhost:4318")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/exports", c.ExportDir)
	assert.Equal(t, "analytics-pulse", c.DefaultModule)
	assert.Equal(t, "/tmp/a.log", c.LogFile)
	assert.Equal(t, "http://localhost:4318", c.OTelEndpoint)

	lvl, err := c.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_BadLogLevel(t *testing.T) {
	t.Setenv("ATRISURE_LOG_LEVEL", "loud")
	_, err := Load()
	require.Error(t, err)
}
