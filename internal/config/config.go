package config

import (
	"os"
	"strconv"
)

const defaultSearchLimit = 25

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// Persistence
	DatabaseURL string

	// Observability
	SentryDSN string // Sentry DSN for error tracking

	// Search behavior
	SearchLimit int // Default cap on solutions returned per search request

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from an upstream gateway
	AuthMode string
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		SentryDSN:   getEnv("SENTRY_DSN", ""),
		SearchLimit: getEnvInt("SEARCH_LIMIT", defaultSearchLimit),
		AuthMode:    getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return defaultValue
	}
	return n
}

// IsGatewayMode returns true if running behind an auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}
