package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements benchmark.Store using SQLite
type SQLiteStore struct {
	sqlStore
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{sqlStore{db: db, bind: identity}}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			dataset TEXT NOT NULL,
			shape TEXT NOT NULL DEFAULT '',
			algorithms TEXT NOT NULL,
			max_n INTEGER NOT NULL,
			step INTEGER NOT NULL,
			hybrid_threshold INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS measurements (
			report_id TEXT NOT NULL REFERENCES reports(id) ON DELETE CASCADE,
			n INTEGER NOT NULL,
			col INTEGER NOT NULL,
			algorithm TEXT NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			comparisons INTEGER NOT NULL,
			PRIMARY KEY (report_id, n, col)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_reports_dataset_created ON reports(dataset, created_at);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
