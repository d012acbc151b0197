package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENTITYKIT_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.AutoTimestamps)
	assert.Equal(t, "default", cfg.Source("port"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yml := "port: 9090\nlog_level: debug\nauto_timestamps: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yml), 0o644))
	t.Setenv("ENTITYKIT_CONFIG_PATH", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.AutoTimestamps)
	assert.Equal(t, "file", cfg.Source("port"))
	assert.Equal(t, "file", cfg.Source("auto_timestamps"))
	assert.Equal(t, "default", cfg.Source("host"))
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	yml := "port: 9090\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yml), 0o644))
	t.Setenv("ENTITYKIT_CONFIG_PATH", dir)
	t.Setenv("ENTITYKIT_PORT", "7070")
	t.Setenv("ENTITYKIT_DATABASE_URL", "postgres://localhost/entities")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "environment", cfg.Source("port"))
	assert.Equal(t, "postgres://localhost/entities", cfg.DatabaseURL)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: [not a port"), 0o644))
	t.Setenv("ENTITYKIT_CONFIG_PATH", dir)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := newDefault()
	assert.NoError(t, cfg.Validate())

	cfg.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Port = 8080
	cfg.LogLevel = "chatty"
	assert.Error(t, cfg.Validate())
}

func TestAttributesRedactSecrets(t *testing.T) {
	cfg := newDefault()
	cfg.DatabaseURL = "postgres://user:hunter2@db/entities"
	cfg.APITokenSecret = "s3cret"

	text := cfg.FormatText()
	assert.NotContains(t, text, "hunter2")
	assert.NotContains(t, text, "s3cret")
	assert.True(t, strings.Contains(text, "*****"))

	js, err := cfg.FormatJSON()
	require.NoError(t, err)
	assert.NotContains(t, js, "hunter2")
}
