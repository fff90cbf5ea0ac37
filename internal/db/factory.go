package db

import (
	"fmt"
	"strings"

	"sortbench/internal/benchmark"
)

// DefaultSQLitePath is used when no connection string is configured.
const DefaultSQLitePath = ".sortbench.db"

// StoreConfig holds configuration for the storage backend
type StoreConfig struct {
	Type             string // "sqlite", "postgres" or "json"
	ConnectionString string // File path for SQLite and JSON, DSN for Postgres
}

// NewStore creates a new Store instance based on the provided configuration
func NewStore(config StoreConfig) (benchmark.Store, error) {
	switch strings.ToLower(config.Type) {
	case "postgres", "postgresql":
		if config.ConnectionString == "" {
			return nil, fmt.Errorf("postgres connection string is required")
		}
		return NewPostgresStore(config.ConnectionString)
	case "json":
		if config.ConnectionString == "" {
			config.ConnectionString = ".sortbench/reports.json"
		}
		return benchmark.NewFileStore(config.ConnectionString)
	case "sqlite", "sqlite3", "":
		if config.ConnectionString == "" {
			config.ConnectionString = DefaultSQLitePath
		}
		return NewSQLiteStore(config.ConnectionString)
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}
}
