package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadConfig_Defaults(t *testing.T) {
	resetArgs(t)

	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:5001", cfg.APIBaseURL)
	assert.Equal(t, "karijera.db", cfg.DatabasePath)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
}

func TestLoadConfig_EnvOverridesDefaults(t *testing.T) {
	resetArgs(t)
	t.Setenv("KARIJERA_API_URL", "http://env.local:9999")
	t.Setenv("KARIJERA_DB_PATH", "/tmp/env.db")
	t.Setenv("KARIJERA_HTTP_TIMEOUT", "30")

	cfg := LoadConfig()
	assert.Equal(t, "http://env.local:9999", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/env.db", cfg.DatabasePath)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfig_InvalidEnvTimeoutIgnored(t *testing.T) {
	resetArgs(t)
	t.Setenv("KARIJERA_HTTP_TIMEOUT", "soon")

	cfg := LoadConfig()
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
}

func writeConfigFile(t *testing.T, content map[string]any) string {
	t.Helper()
	data, err := json.Marshal(content)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "karijera.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestLoadConfig_JSONOverridesEnv(t *testing.T) {
	t.Setenv("KARIJERA_API_URL", "http://env.local:9999")
	path := writeConfigFile(t, map[string]any{
		"api_base_url":         "http://json.local:8080",
		"http_timeout_seconds": 5,
	})
	resetArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "http://json.local:8080", cfg.APIBaseURL)
	assert.Equal(t, "karijera.db", cfg.DatabasePath, "field missing from JSON keeps earlier value")
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfig_FlagsWinOverJSON(t *testing.T) {
	path := writeConfigFile(t, map[string]any{
		"api_base_url":  "http://json.local:8080",
		"database_path": "/tmp/json.db",
	})
	resetArgs(t, "-c", path, "-a", "http://flag.local:7070", "-t", "15")

	cfg := LoadConfig()
	assert.Equal(t, "http://flag.local:7070", cfg.APIBaseURL)
	assert.Equal(t, "/tmp/json.db", cfg.DatabasePath)
	assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
}

func TestLoadConfig_MissingJSONFilePanics(t *testing.T) {
	resetArgs(t, "-c", "/does/not/exist.json")

	assert.Panics(t, func() { LoadConfig() })
}

func TestLoadConfig_MalformedJSONPanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	resetArgs(t, "-c", path)

	assert.Panics(t, func() { LoadConfig() })
}
