package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
server:
  port: 9090
  host: "127.0.0.1"
  static_dir: "./public"

database:
  url: "postgres://db.internal:5432/mailcheck"

verify:
  mx_timeout_seconds: 5
  disposable_domains:
    - "mailinator.com"
    - "tempmail.com"

environment: "production"
`
	err := os.WriteFile(configPath, []byte(configContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, "./public", cfg.Server.StaticDir)
	assert.Equal(t, "postgres://db.internal:5432/mailcheck", cfg.Database.URL)
	assert.Equal(t, 5*time.Second, cfg.Verify.MXTimeout())
	assert.Equal(t, []string{"mailinator.com", "tempmail.com"}, cfg.Verify.DisposableDomains)
	assert.Equal(t, "production", cfg.Environment)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "./web/dist", cfg.Server.StaticDir)
	assert.Equal(t, "postgres://localhost:5432/mailcheck?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, 3*time.Second, cfg.Verify.MXTimeout())
	assert.Empty(t, cfg.Verify.DisposableDomains)
	assert.Equal(t, "development", cfg.Environment)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("DATABASE_URL", "postgres://override:5432/x")
	t.Setenv("ENVIRONMENT", "staging")

	cfg, err := LoadFromEnv("")
	require.NoError(t, err)

	assert.Equal(t, 8088, cfg.Server.Port)
	assert.Equal(t, "postgres://override:5432/x", cfg.Database.URL)
	assert.Equal(t, "staging", cfg.Environment)
}

func TestLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("server: [not a map"), 0644))

	_, err := Load(configPath)
	assert.Error(t, err)
}
