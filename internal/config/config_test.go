package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := FromViper(New())
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 256, cfg.TraceCacheSize)
	assert.Empty(t, cfg.DatabaseURL)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_EXPIRES_IN", "90m")
	t.Setenv("TRACE_CACHE_SIZE", "16")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromViper(New())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 90*time.Minute, cfg.JWTExpiresIn)
	assert.Equal(t, 16, cfg.TraceCacheSize)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "aethervault.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_port: \"7000\"\nadmin_email: root@example.com\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.HTTPPort)
	assert.Equal(t, "root@example.com", cfg.AdminEmail)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInvalidValues(t *testing.T) {
	t.Setenv("JWT_EXPIRES_IN", "tomorrow")
	_, err := FromViper(New())
	assert.ErrorContains(t, err, "JWT_EXPIRES_IN")

	t.Setenv("JWT_EXPIRES_IN", "1h")
	t.Setenv("TRACE_CACHE_SIZE", "0")
	_, err = FromViper(New())
	assert.ErrorContains(t, err, "TRACE_CACHE_SIZE")
}
