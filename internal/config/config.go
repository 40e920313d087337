package config

import (
	"fmt"
	"os"
)

// Config holds application configuration
type Config struct {
	DBConn   string
	LogLevel string
}

// New loads configuration from environment variables. DB_CONN takes
// precedence; otherwise the connection string is assembled from the
// individual DB_* variables (Docker friendly).
func New() (*Config, error) {
	cfg := &Config{
		DBConn:   os.Getenv("DB_CONN"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if cfg.DBConn == "" {
		cfg.DBConn = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "luxor"),
		)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
