package model

import (
	"fmt"
	"log/slog"
	"strings"
)

const (
	StoreBolt   = "bolt"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"

	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds the application configuration
type Config struct {
	// Store is the storage backend: bolt, sqlite or memory
	Store string

	// DataDir overrides the directory holding the database file
	DataDir string

	// LogLevel is one of debug, info, warn, error
	LogLevel string

	// LogFormat is text or json
	LogFormat string
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Store:     StoreBolt,
		DataDir:   "",
		LogLevel:  "warn",
		LogFormat: LogFormatText,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch c.Store {
	case StoreBolt, StoreSQLite, StoreMemory:
	default:
		return fmt.Errorf("unknown store backend %q (want bolt, sqlite or memory)", c.Store)
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.LogFormat)
	}

	return nil
}

// ParseLogLevel maps a level name to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}
