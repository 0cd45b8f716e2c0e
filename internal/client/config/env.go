package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first and never overrides variables already present in the real
// environment.
const (
	envAPIBaseURL   = "KARIJERA_API_URL"
	envDatabasePath = "KARIJERA_DB_PATH"
	envHTTPTimeout  = "KARIJERA_HTTP_TIMEOUT"
)

func parseEnv(cfg *Config) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv(envHTTPTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
			cfg.HTTPTimeout = time.Duration(secs) * time.Second
		}
	}
}
