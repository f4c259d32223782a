package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Cache. Empty RedisURL selects the in-memory store.
	RedisURL        string
	CacheTTLSeconds int

	// Classifier. Empty ModelPath selects the heuristic fallback.
	ModelPath string

	// Scan history. Empty DatabaseURL disables history recording.
	DatabaseURL string

	// Cache warmer. Empty WarmupURLs disables the job.
	WarmupURLs            string // Comma-separated URLs to keep warm
	WarmupIntervalMinutes int
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                   getEnv("ENV", "development"),
		ServerAddr:            getEnv("SERVER_ADDR", ":8080"),
		CORSOrigins:           getEnv("CORS_ORIGINS", ""),
		RedisURL:              getEnv("REDIS_URL", ""),
		CacheTTLSeconds:       getEnvInt("CACHE_TTL_SECONDS", 3600),
		ModelPath:             getEnv("MODEL_PATH", ""),
		DatabaseURL:           getEnv("DATABASE_URL", ""),
		WarmupURLs:            getEnv("WARMUP_URLS", ""),
		WarmupIntervalMinutes: getEnvInt("WARMUP_INTERVAL_MINUTES", 30),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
