package main

import (
	"fmt"
	"os"
	"time"
)

// config is read from the environment after godotenv has loaded .env.
type config struct {
	Addr    string // listen address for the API
	Storage string // "postgres" or "redis"

	DBURL    string
	RedisURL string // optional for postgres storage; enables the estimate cache

	GeminiAPIKey     string // empty disables POST /api/analyze
	GeminiBaseURL    string // overridable for tests
	GeminiModel      string
	EstimateCacheTTL time.Duration
}

const (
	storagePostgres = "postgres"
	storageRedis    = "redis"
)

// loadConfig reads and validates configuration. Unset values fall back to
// local-development defaults.
func loadConfig() (config, error) {
	cfg := config{
		Addr:          getenv("ADDR", "localhost:3000"),
		Storage:       getenv("STORAGE", storagePostgres),
		DBURL:         os.Getenv("DB_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL: getenv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-3-flash-preview"),
	}

	ttl, err := time.ParseDuration(getenv("ESTIMATE_CACHE_TTL", "24h"))
	if err != nil {
		return config{}, fmt.Errorf("invalid ESTIMATE_CACHE_TTL: %w", err)
	}
	if ttl <= 0 {
		return config{}, fmt.Errorf("ESTIMATE_CACHE_TTL must be positive, got %s", ttl)
	}
	cfg.EstimateCacheTTL = ttl

	switch cfg.Storage {
	case storagePostgres:
		if cfg.DBURL == "" {
			return config{}, fmt.Errorf("DB_URL is required when STORAGE=%s", storagePostgres)
		}
	case storageRedis:
		if cfg.RedisURL == "" {
			return config{}, fmt.Errorf("REDIS_URL is required when STORAGE=%s", storageRedis)
		}
	default:
		return config{}, fmt.Errorf("STORAGE must be one of: %s, %s", storagePostgres, storageRedis)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
