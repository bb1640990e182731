package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Storefront API", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)

	assert.Equal(t, "https://fakestoreapi.com", cfg.Catalog.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Catalog.RequestTimeout)
	assert.Equal(t, 3, cfg.Catalog.RetryAttempts)
	assert.Equal(t, time.Second, cfg.Catalog.RetryBackoff)
	assert.Equal(t, FallbackSample, cfg.Catalog.FallbackPolicy)

	assert.Equal(t, 2*time.Second, cfg.Checkout.ProcessingDelay)
	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_BASE_URL", "http://upstream.test")
	t.Setenv("CATALOG_RETRY_ATTEMPTS", "5")
	t.Setenv("CATALOG_RETRY_BACKOFF", "250ms")
	t.Setenv("CATALOG_FALLBACK_POLICY", FallbackEmpty)
	t.Setenv("CHECKOUT_PROCESSING_DELAY", "100ms")
	t.Setenv("REDIS_HOST", "redis.test")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://upstream.test", cfg.Catalog.BaseURL)
	assert.Equal(t, 5, cfg.Catalog.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.Catalog.RetryBackoff)
	assert.Equal(t, FallbackEmpty, cfg.Catalog.FallbackPolicy)
	assert.Equal(t, 100*time.Millisecond, cfg.Checkout.ProcessingDelay)
	assert.Equal(t, "redis.test:6380", cfg.GetRedisAddr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Security.CORSAllowedOrigins)
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("CATALOG_RETRY_ATTEMPTS", "not-a-number")
	t.Setenv("CATALOG_REQUEST_TIMEOUT", "soon")
	t.Setenv("APP_DEBUG", "maybe")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Catalog.RetryAttempts)
	assert.Equal(t, 10*time.Second, cfg.Catalog.RequestTimeout)
	assert.True(t, cfg.App.Debug)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	t.Run("short jwt secret", func(t *testing.T) {
		cfg := valid()
		cfg.JWT.Secret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing catalog base url", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.BaseURL = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero retry attempts", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.RetryAttempts = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown fallback policy", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.FallbackPolicy = "cached"
		assert.Error(t, cfg.Validate())
	})

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})
}
