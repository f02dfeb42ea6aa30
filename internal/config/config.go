package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Record source
	RecordBackend   string // "memory" or "nessie"
	NessieBaseURL   string
	NessieAPIKey    string
	UpstreamTimeout time.Duration

	// Profile storage
	SQLiteDBPath string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8081"),

		RecordBackend:   getEnv("RECORD_BACKEND", "memory"),
		NessieBaseURL:   getEnv("NESSIE_BASE_URL", "http://api.nessieisreal.com"),
		NessieAPIKey:    getEnv("NESSIE_API_KEY", ""),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 15*time.Second),

		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/budgeteer.db"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate record backend
	validBackends := []string{"memory", "nessie"}
	isValidBackend := false
	for _, backend := range validBackends {
		if c.RecordBackend == backend {
			isValidBackend = true
			break
		}
	}
	if !isValidBackend {
		errors = append(errors, fmt.Sprintf("invalid record backend '%s': must be one of %v", c.RecordBackend, validBackends))
	}

	// Validate upstream credentials if backend is nessie
	if c.RecordBackend == "nessie" {
		if c.NessieBaseURL == "" {
			errors = append(errors, "Nessie base URL cannot be empty when using nessie backend")
		}
		if c.NessieAPIKey == "" {
			errors = append(errors, "NESSIE_API_KEY is required when using nessie backend")
		}
	}

	if c.UpstreamTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid upstream timeout %v: must be at least 1 second", c.UpstreamTimeout))
	} else if c.UpstreamTimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid upstream timeout %v: must be at most 1 minute", c.UpstreamTimeout))
	}

	// Validate SQLite database path
	if c.SQLiteDBPath == "" {
		errors = append(errors, "SQLite database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
