package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: 9090
  mode: debug
astro:
  default_timezone: Asia/Bangkok
log:
  level: debug
  format: console
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Unset fields are defaulted.
	assert.Equal(t, DefaultGeocoderBaseURL, cfg.Geocoder.BaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeTempConfig(t, `
server:
  port: 9090
  mode: nonsense
`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "server.mode")
}

func TestLoadFromEnv_EnvOverride(t *testing.T) {
	t.Setenv("HORA_SERVER_PORT", "7777")
	t.Setenv("HORA_ASTRO_DEFAULT_TIMEZONE", "Asia/Kolkata")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "Asia/Kolkata", cfg.Astro.DefaultTimezone)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() { MustLoad("/nonexistent/config.yaml") })
}

//Personal.AI order the ending
