package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/redactview/internal/config"
)

// writeConfigFile writes a temporary YAML config and returns its path.
func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "redactview", cfg.App.Name)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "http://localhost:8000", cfg.Pipeline.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_FileValuesOverrideDefaults(t *testing.T) {
	path := writeConfigFile(t, `
app:
  environment: production
server:
  port: 9100
pipeline:
  base_url: http://pipeline.internal:8000
logging:
  level: warn
`)

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 9100, cfg.Server.Port)
	assert.Equal(t, "http://pipeline.internal:8000", cfg.Pipeline.BaseURL)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.True(t, cfg.App.IsProduction())
}

func TestLoad_EnvironmentVariablesOverrideFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9100
pipeline:
  base_url: http://from-file:8000
`)
	t.Setenv("SERVER_PORT", "9200")
	t.Setenv("PIPELINE_BASE_URL", "http://from-env:8000")

	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Server.Port)
	assert.Equal(t, "http://from-env:8000", cfg.Pipeline.BaseURL)
}

func TestLoad_TrimsTrailingSlashFromBaseURL(t *testing.T) {
	t.Setenv("PIPELINE_BASE_URL", "http://localhost:8000/")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Pipeline.BaseURL,
		"endpoint paths are appended directly, so the base URL must not end in a slash")
}

func TestLoad_RejectsNonHTTPBaseURL(t *testing.T) {
	t.Setenv("PIPELINE_BASE_URL", "ftp://pipeline:21")

	_, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http(s)")
}

func TestLoad_RejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestLoad_UnknownEnvironmentFallsBackToDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))

	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoad_InvalidDurationEnvFails(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-duration")

	_, err := config.Load(filepath.Join(t.TempDir(), "none.yaml"))

	require.Error(t, err)
}

func TestServerAddress(t *testing.T) {
	ss := &config.ServerSettings{Host: "0.0.0.0", Port: 8090}
	assert.Equal(t, "0.0.0.0:8090", ss.ServerAddress())
}
