package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://market.test")
		t.Setenv("PAYMENT_BASE_URL", "https://pay.test")
		t.Setenv("PAYMENT_PUBLIC_KEY", "pk_test")
		t.Setenv("APP_ENV", "test")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "30")
		t.Setenv("PRODUCT_CACHE_SIZE", "64")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "https://market.test", cfg.APIBaseURL)
		assert.Equal(t, "https://pay.test", cfg.PaymentBaseURL)
		assert.Equal(t, "pk_test", cfg.PaymentPublicKey)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 64, cfg.ProductCacheSize)
		assert.Equal(t, 3*time.Second, cfg.ChatPollInterval)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://market.test")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "")
		t.Setenv("PRODUCT_CACHE_SIZE", "")

		cfg := LoadConfig()

		assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 128, cfg.ProductCacheSize)
	})

	t.Run("Ignores invalid overrides", func(t *testing.T) {
		t.Setenv("API_BASE_URL", "https://market.test")
		t.Setenv("HTTP_TIMEOUT_SECONDS", "-5")
		t.Setenv("PRODUCT_CACHE_SIZE", "abc")

		cfg := LoadConfig()

		assert.Equal(t, 15*time.Second, cfg.HTTPTimeout)
		assert.Equal(t, 128, cfg.ProductCacheSize)
	})
}
