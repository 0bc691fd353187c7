package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment.Name)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 1024, cfg.Cache.Size)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "rfq:result:", cfg.Redis.KeyPrefix)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMin)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
http_server:
  port: 9090
  mode: release
cache:
  size: 10
  ttl: 30s
redis:
  addr: "localhost:6379"
rate_limit:
  enabled: false
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600))

	cfg, err := load(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, "release", cfg.HTTPServer.Mode)
	assert.Equal(t, 10, cfg.Cache.Size)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("HTTP_SERVER_PORT", "7070")
	t.Setenv("CACHE_ENABLED", "false")

	cfg, err := load(viper.New(), t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.HTTPServer.Port)
	assert.False(t, cfg.Cache.Enabled)
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("http_server: [unclosed"), 0o600))

	_, err := load(viper.New(), dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			HTTPServer: HTTPServerConfig{Port: 8080},
			Cache:      CacheConfig{Enabled: true, Size: 10, TTL: time.Minute},
			RateLimit:  RateLimitConfig{Enabled: true, RequestsPerMin: 60, Burst: 10},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero port", func(c *Config) { c.HTTPServer.Port = 0 }, true},
		{"zero cache size", func(c *Config) { c.Cache.Size = 0 }, true},
		{"zero cache size with redis", func(c *Config) { c.Cache.Size = 0; c.Redis.Addr = "localhost:6379" }, false},
		{"zero cache size when disabled", func(c *Config) { c.Cache.Size = 0; c.Cache.Enabled = false }, false},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Second }, true},
		{"zero rate", func(c *Config) { c.RateLimit.RequestsPerMin = 0 }, true},
		{"zero burst", func(c *Config) { c.RateLimit.Burst = 0 }, true},
		{"rate limit disabled", func(c *Config) { c.RateLimit = RateLimitConfig{} }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
