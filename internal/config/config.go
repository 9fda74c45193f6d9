package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultHTTPTimeout = 15 * time.Second

type Config struct {
	APIBaseURL       string
	PaymentBaseURL   string
	PaymentPublicKey string
	HTTPTimeout      time.Duration
	ChatPollInterval time.Duration
	ProductCacheSize int
	AppEnv           string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:       os.Getenv("API_BASE_URL"),
		PaymentBaseURL:   os.Getenv("PAYMENT_BASE_URL"),
		PaymentPublicKey: os.Getenv("PAYMENT_PUBLIC_KEY"),
		HTTPTimeout:      defaultHTTPTimeout,
		ChatPollInterval: 3 * time.Second,
		ProductCacheSize: 128,
		AppEnv:           os.Getenv("APP_ENV"),
	}

	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}

	if v := os.Getenv("PRODUCT_CACHE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ProductCacheSize = n
		}
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("API_BASE_URL is not set")
	}

	return cfg
}
