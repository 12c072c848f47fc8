package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
//
// Backend selection is decided here, once, at startup: a non-empty
// DATABASE_URL selects the networked Postgres backend, otherwise the
// embedded SQLite database at DatabasePath is used. Nothing below the
// config layer reads the environment.
type Config struct {
	DatabaseURL    string // Postgres connection string; empty selects SQLite
	DatabasePath   string
	AttachmentDir  string
	BackupDir      string
	BackupSchedule string // cron spec for the nightly snapshot job
	LogLevel       string
	Port           int
	DevMode        bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DatabasePath:   getEnv("DATABASE_PATH", "./data/nps_accounting.db"),
		AttachmentDir:  getEnv("ATTACHMENT_DIR", "./invoices"),
		BackupDir:      getEnv("BACKUP_DIR", "./backups"),
		BackupSchedule: getEnv("BACKUP_SCHEDULE", "0 0 2 * * *"), // 02:00 daily
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnvAsInt("PORT", 8080),
		DevMode:        getEnvAsBool("DEV_MODE", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// UsesPostgres reports whether the networked backend was selected.
func (c *Config) UsesPostgres() bool {
	return c.DatabaseURL != ""
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabaseURL == "" && c.DatabasePath == "" {
		return fmt.Errorf("either DATABASE_URL or DATABASE_PATH is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port, got %d", c.Port)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
