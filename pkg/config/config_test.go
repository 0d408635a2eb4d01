package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/twopi/moneycore/pkg/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/twopi-api", cfg.APIBaseURL)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.False(t, cfg.IsProduction)
	assert.Equal(t, 64, cfg.RateCacheSize)
	assert.Equal(t, time.Hour, cfg.RateCacheTTL)
	assert.Equal(t, "10-M", cfg.RateLimit)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("TWOPI_API_URL", "https://money.example.com/twopi-api")
	t.Setenv("BASE_CURRENCY", "inr")
	t.Setenv("IS_PRODUCTION", "true")
	t.Setenv("RATE_CACHE_SIZE", "16")
	t.Setenv("RATE_CACHE_TTL", "30m")
	t.Setenv("RATE_LIMIT", "100-H")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://money.example.com/twopi-api", cfg.APIBaseURL)
	assert.Equal(t, "INR", cfg.BaseCurrency)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, 16, cfg.RateCacheSize)
	assert.Equal(t, 30*time.Minute, cfg.RateCacheTTL)
	assert.Equal(t, "100-H", cfg.RateLimit)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("BASE_CURRENCY", "DOLLARS")
	t.Setenv("RATE_CACHE_SIZE", "-1")
	t.Setenv("RATE_CACHE_TTL", "soon")

	cfg, err := config.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.BaseCurrency)
	assert.Equal(t, 64, cfg.RateCacheSize)
	assert.Equal(t, time.Hour, cfg.RateCacheTTL)
}
