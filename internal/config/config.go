package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config aggregates application configuration values.
type Config struct {
	Storage   StorageConfig
	Birthdays BirthdaysConfig
	Logging   LoggingConfig
}

// Storage backend identifiers.
const (
	BackendFile   = "file"
	BackendGraph  = "graph"
	BackendMemory = "memory"
)

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	Backend string // file|graph|memory
	Path    string
	Graph   GraphConfig
}

// GraphConfig describes connectivity to the graph database.
type GraphConfig struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// BirthdaysConfig controls the upcoming-birthday scan.
type BirthdaysConfig struct {
	WindowDays int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultBackend       = BackendFile
	defaultPath          = "addressbook.json"
	defaultWindowDays    = 7
	defaultLoggingLevel  = "warn"
	defaultLoggingFormat = "text"
	defaultGraphSessions = 10
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Storage: StorageConfig{
			Backend: valueOrDefault("STORAGE_BACKEND", defaultBackend),
			Path:    valueOrDefault("ADDRESSBOOK_PATH", defaultPath),
			Graph: GraphConfig{
				URI:            os.Getenv("GRAPH_URI"),
				Database:       os.Getenv("GRAPH_DATABASE"),
				Username:       os.Getenv("GRAPH_USERNAME"),
				Password:       os.Getenv("GRAPH_PASSWORD"),
				MaxConnections: parseIntWithDefault("GRAPH_MAX_CONNECTIONS", defaultGraphSessions),
			},
		},
		Birthdays: BirthdaysConfig{
			WindowDays: parseIntWithDefault("BIRTHDAY_WINDOW_DAYS", defaultWindowDays),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	switch cfg.Storage.Backend {
	case BackendFile, BackendGraph, BackendMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.Storage.Backend)
	}
	if cfg.Birthdays.WindowDays <= 0 {
		return Config{}, fmt.Errorf("BIRTHDAY_WINDOW_DAYS must be positive, got %d", cfg.Birthdays.WindowDays)
	}
	if cfg.Storage.Backend == BackendGraph && cfg.Storage.Graph.URI == "" {
		return Config{}, fmt.Errorf("GRAPH_URI is required when STORAGE_BACKEND=%s", BackendGraph)
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}
