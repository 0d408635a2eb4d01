// Package config loads application configuration from the environment.
package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	APIBaseURL   string        // Root of the twopi API, e.g. http://localhost:8000/twopi-api
	BaseCurrency string        // 3-letter reporting currency for aggregations
	IsProduction bool
	RateCacheSize int
	RateCacheTTL  time.Duration
	RateLimit     string // ulule formatted rate, e.g. "10-M"
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("TWOPI_API_URL", "http://localhost:8000/twopi-api")
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RATE_CACHE_SIZE", 64)
	viper.SetDefault("RATE_CACHE_TTL", "1h")
	viper.SetDefault("RATE_LIMIT", "10-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.APIBaseURL = viper.GetString("TWOPI_API_URL")
	if cfg.APIBaseURL == "" {
		log.Println("Warning: TWOPI_API_URL environment variable not set.")
	}

	cfg.BaseCurrency = strings.ToUpper(viper.GetString("BASE_CURRENCY"))
	if len(cfg.BaseCurrency) != 3 {
		log.Printf("Warning: BASE_CURRENCY %q is not a 3-letter code. Defaulting to USD.\n", cfg.BaseCurrency)
		cfg.BaseCurrency = "USD"
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.RateCacheSize = viper.GetInt("RATE_CACHE_SIZE")
	if cfg.RateCacheSize <= 0 {
		log.Printf("Warning: Invalid RATE_CACHE_SIZE (%d). Defaulting to 64.\n", cfg.RateCacheSize)
		cfg.RateCacheSize = 64
	}

	ttlStr := viper.GetString("RATE_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = time.Hour
		if ttlStr != "" {
			log.Printf("Warning: Invalid value for RATE_CACHE_TTL (%q). Defaulting to %s.\n", ttlStr, ttl)
		}
	}
	cfg.RateCacheTTL = ttl

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
