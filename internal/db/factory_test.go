package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/internal/benchmark"
)

func TestNewStore(t *testing.T) {
	dir := t.TempDir()

	t.Run("SQLite", func(t *testing.T) {
		store, err := NewStore(StoreConfig{Type: "sqlite", ConnectionString: filepath.Join(dir, "a.db")})
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &SQLiteStore{}, store)
	})

	t.Run("Default Is SQLite", func(t *testing.T) {
		store, err := NewStore(StoreConfig{ConnectionString: filepath.Join(dir, "b.db")})
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &SQLiteStore{}, store)
	})

	t.Run("JSON", func(t *testing.T) {
		store, err := NewStore(StoreConfig{Type: "json", ConnectionString: filepath.Join(dir, "reports.json")})
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &benchmark.FileStore{}, store)
	})

	t.Run("Postgres Requires DSN", func(t *testing.T) {
		_, err := NewStore(StoreConfig{Type: "postgres"})
		assert.ErrorContains(t, err, "connection string is required")
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, err := NewStore(StoreConfig{Type: "mongo"})
		assert.ErrorContains(t, err, "unsupported store type")
	})
}
