package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: redis
  write_timeout: 2s
  redis:
    addr: cache:6379
    db: 3
server:
  addr: ":9090"
owner:
  email: owner@example.com
  password: pw
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, 2*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, "cache:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 3, cfg.Storage.Redis.DB)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "owner@example.com", cfg.Owner.Email)

	// unset keys keep their defaults
	assert.Equal(t, "portfolioData", cfg.Storage.DocumentKey)
	assert.Equal(t, "portfolioAuth", cfg.Storage.SessionKey)
	assert.Equal(t, "portfolio:", cfg.Storage.Redis.Prefix)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadNonexistent(t *testing.T) {
	_, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
}

func TestLoadDefaultPathMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, filepath.Join(os.Getenv("HOME"), ".portfolio", "portfolio.db"), cfg.Storage.Path)
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "storage: [unclosed"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_STORAGE", "memory")
	t.Setenv("PORTFOLIO_ADDR", ":7000")
	t.Setenv("PORTFOLIO_OWNER_EMAIL", "env@example.com")
	t.Setenv("PORTFOLIO_OWNER_PASSWORD", "env-pw")
	t.Setenv("PORTFOLIO_REDIS_DB", "5")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")

	cfg, err := Load(writeConfig(t, "storage:\n  backend: sqlite\n"))
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, ":7000", cfg.Server.Addr)
	assert.Equal(t, "env@example.com", cfg.Owner.Email)
	assert.Equal(t, "env-pw", cfg.Owner.Password)
	assert.Equal(t, 5, cfg.Storage.Redis.DB)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"memory backend", func(c *Config) { c.Storage.Backend = "memory"; c.Storage.Path = "" }, false},
		{"unknown backend", func(c *Config) { c.Storage.Backend = "etcd" }, true},
		{"sqlite without path", func(c *Config) { c.Storage.Path = "" }, true},
		{"redis without addr", func(c *Config) { c.Storage.Backend = "redis"; c.Storage.Redis.Addr = "" }, true},
		{"same keys", func(c *Config) { c.Storage.SessionKey = c.Storage.DocumentKey }, true},
		{"empty key", func(c *Config) { c.Storage.DocumentKey = "" }, true},
		{"zero timeout", func(c *Config) { c.Storage.WriteTimeout = 0 }, true},
		{"password without email", func(c *Config) { c.Owner.Password = "pw" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	require.NoError(t, Init(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, 5*time.Second, cfg.Storage.WriteTimeout)
	assert.NotEmpty(t, cfg.Owner.Email)

	// a second init refuses to overwrite
	assert.Error(t, Init(path))
}
