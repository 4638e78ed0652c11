package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapegenie/storefront/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MARKETPLACE_BASE_URL", "http://upstream.test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "scrapegenie-storefront", cfg.AppName)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "http://upstream.test", cfg.Marketplace.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Marketplace.Timeout)
	assert.Equal(t, 168*time.Hour, cfg.Session.TTL)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MARKETPLACE_BASE_URL", "http://upstream.test")
	t.Setenv("SERVER_ADDR", ":9000")
	t.Setenv("SESSION_TTL", "24h")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoad_RequiresMarketplaceURL(t *testing.T) {
	t.Setenv("MARKETPLACE_BASE_URL", "")

	_, err := config.Load()
	require.Error(t, err)
}
