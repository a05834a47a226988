// Package config loads process configuration from the environment. Values
// are read once at startup and injected into constructors; nothing in the
// rest of the codebase reads environment variables directly.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Server
	Port string
	Env  string

	// Database
	DatabaseURL string

	// Tokens
	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment, consulting a .env file if
// one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
	}

	ttlStr := getEnv("TOKEN_TTL", "1h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: invalid TOKEN_TTL value '%s', falling back to 1h\n", ttlStr)
		ttl = time.Hour
	}
	cfg.TokenTTL = ttl

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
