// Package config loads runtime settings from the environment with
// development defaults.
package config

import (
	"os"
	"strings"
	"time"
)

// Config holds runtime settings for the catalog server.
//
// Fields:
//   - Port: HTTP listen port.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - JWTSecret: HMAC secret for signing tokens (HS256). Do not use the
//     default in production.
//   - TokenValidity: lifetime of issued tokens.
//   - AllowedOrigins: CORS origins.
type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	TokenValidity  time.Duration
	AllowedOrigins []string
}

// Load builds a Config from environment variables, falling back to
// development defaults.
func Load() *Config {
	cfg := &Config{
		Port:           "8080",
		DatabaseDSN:    "",
		JWTSecret:      "dev-secret-please-change",
		TokenValidity:  48 * time.Hour,
		AllowedOrigins: []string{"*"},
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.AllowedOrigins = strings.Split(v, ",")
	}
	return cfg
}
