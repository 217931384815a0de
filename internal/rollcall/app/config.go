package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer       string // Optional: issuer claim for access tokens (default: rollcall)
	SigningKey   string // Optional: path to Ed25519 private key file (PEM, PKCS8); empty means ephemeral
	DatabaseFile string // Optional: path to SQLite database file (default: ./rollcall.db)

	AdminEmail    string // Optional: seed an ADMIN account at startup when all three are set
	AdminName     string
	AdminPassword string

	Env       string // Environment (dev, staging, prod) (default: dev)
	LogLevel  string // Log level (debug, info, warn, error) (default: info)
	LogFormat string // Log format (json, text) (default: json)
	Port      int    // HTTP server port (default: 8080)

	AccessTokenTTL      time.Duration // Access token lifetime (default: 7 days)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              getEnvOrDefault("ROLLCALL_ISSUER", "rollcall"),
		SigningKey:          os.Getenv("ROLLCALL_SIGNING_KEY_FILE"), // Optional: ephemeral when unset
		DatabaseFile:        getEnvOrDefault("ROLLCALL_DATABASE_FILE", "rollcall.db"),
		AdminEmail:          os.Getenv("ROLLCALL_ADMIN_EMAIL"),
		AdminName:           getEnvOrDefault("ROLLCALL_ADMIN_NAME", "Administrator"),
		AdminPassword:       os.Getenv("ROLLCALL_ADMIN_PASSWORD"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		AccessTokenTTL:      getEnvDurationOrDefault("ROLLCALL_ACCESS_TOKEN_TTL", 7*24*time.Hour),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
