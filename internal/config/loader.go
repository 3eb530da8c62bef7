package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends selectable through STUDIO_STORAGE.
const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

// Config captures environment driven configuration values for the studio service.
type Config struct {
	HTTPPort         int
	Storage          string
	SQLiteDSN        string
	ReminderInterval time.Duration
	MaxUploadBytes   int64
}

// Load parses configuration values from the current process environment.
//
// The loader applies sensible defaults for optional fields while validating
// the rest and accumulating every invalid entry into a single error.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:         8080,
		Storage:          StorageMemory,
		SQLiteDSN:        "file:studio.db?_foreign_keys=on",
		ReminderInterval: time.Minute,
		MaxUploadBytes:   10 * 1024 * 1024,
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("STUDIO_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "STUDIO_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if storage := strings.TrimSpace(os.Getenv("STUDIO_STORAGE")); storage != "" {
		switch storage {
		case StorageMemory, StorageSQLite:
			cfg.Storage = storage
		default:
			invalid = append(invalid, "STUDIO_STORAGE")
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("STUDIO_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if intervalValue := strings.TrimSpace(os.Getenv("STUDIO_REMINDER_INTERVAL")); intervalValue != "" {
		interval, err := time.ParseDuration(intervalValue)
		if err != nil || interval <= 0 {
			invalid = append(invalid, "STUDIO_REMINDER_INTERVAL")
		} else {
			cfg.ReminderInterval = interval
		}
	}

	if limitValue := strings.TrimSpace(os.Getenv("STUDIO_MAX_UPLOAD_BYTES")); limitValue != "" {
		limit, err := strconv.ParseInt(limitValue, 10, 64)
		if err != nil || limit <= 0 {
			invalid = append(invalid, "STUDIO_MAX_UPLOAD_BYTES")
		} else {
			cfg.MaxUploadBytes = limit
		}
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("invalid environment variable values: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}
