package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labmon.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Zero(t, cfg.Backend.Timeout)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Flash.TTL)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeFile(t, `
http:
  addr: ":9090"
backend:
  base_url: "http://pi.local:5000"
  timeout: 10s
redis:
  enabled: true
  addr: "redis:6379"
flash:
  ttl: 1m
log:
  level: debug
  format: console
`)
	t.Setenv("BACKEND_URL", "http://10.0.0.5:5000")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "http://10.0.0.5:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, time.Minute, cfg.Flash.TTL)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("backend url", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "not a url")
		_, err := Load("")
		assert.ErrorContains(t, err, "BaseURL")
	})
	t.Run("log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		_, err := Load("")
		assert.ErrorContains(t, err, "Level")
	})
	t.Run("flash ttl", func(t *testing.T) {
		t.Setenv("FLASH_TTL", "soon")
		_, err := Load("")
		assert.ErrorContains(t, err, "FLASH_TTL")
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "http: [unclosed"))
		assert.Error(t, err)
	})
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_FILE", "/etc/labmon.yaml")
	assert.Equal(t, "/etc/labmon.yaml", Path(""))
	assert.Equal(t, "local.yaml", Path("local.yaml"))
}
