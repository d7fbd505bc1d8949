package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"api_key": "test-key",
		"model": "gemini-2.5-pro",
		"timeout_seconds": 30,
		"log_level": "debug",
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "gemini-2.5-pro", cfg.Model)
	assert.Equal(t, 30, cfg.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := writeConfig(t, "{not json")
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{TimeoutSeconds: 15, LogLevel: "info"}
	assert.NoError(t, valid.Validate())

	empty := Config{}
	assert.NoError(t, empty.Validate())

	badLevel := Config{LogLevel: "loud"}
	assert.Error(t, badLevel.Validate())

	badTimeout := Config{TimeoutSeconds: 3600}
	assert.Error(t, badTimeout.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{APIKey: "explicit"}
	merged := cfg.MergeWithDefaults(Config{
		APIKey:         "default",
		Model:          "gemini-2.5-flash",
		TimeoutSeconds: 15,
		LogLevel:       "warn",
	})

	assert.Equal(t, "explicit", merged.APIKey)
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
	assert.Equal(t, 15, merged.TimeoutSeconds)
	assert.Equal(t, "warn", merged.LogLevel)
}

func TestResolveAPIKey(t *testing.T) {
	cfg := Config{APIKey: "from-config"}
	assert.Equal(t, "from-config", cfg.ResolveAPIKey())

	t.Setenv("GEMINI_API_KEY", "from-env")
	empty := Config{}
	assert.Equal(t, "from-env", empty.ResolveAPIKey())
}
