// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all server configuration.
type Config struct {
	// Addr is the HTTP listen address
	Addr string

	// DatabasePath is the sqlite database file
	DatabasePath string

	// ArtifactsDir is the root of the document artifact store
	ArtifactsDir string

	// JWTSecret signs session tokens
	JWTSecret string

	// LogLevel is debug, info, warn, or error
	LogLevel string

	// Development enables pretty log output
	Development bool

	// AdminUsername and AdminPassword seed the initial account when the
	// user table is empty
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is fine; env vars win either way.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:          ":" + getEnv("APP_PORT", "8080"),
		DatabasePath:  getEnv("DATABASE_PATH", "fakturo.db"),
		ArtifactsDir:  getEnv("ARTIFACTS_DIR", "artifacts"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Development:   getEnv("APP_ENV", "development") == "development",
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("required environment variable JWT_SECRET not set")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
