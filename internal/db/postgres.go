package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// PostgresStore implements benchmark.Store using PostgreSQL
type PostgresStore struct {
	sqlStore
}

// NewPostgresStore creates a new Postgres store and applies migrations
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := newPostgresStore(db)
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func newPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{sqlStore{db: db, bind: rebind}}
}

func (s *PostgresStore) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id TEXT PRIMARY KEY,
			dataset TEXT NOT NULL,
			shape TEXT NOT NULL DEFAULT '',
			algorithms TEXT NOT NULL,
			max_n INTEGER NOT NULL,
			step INTEGER NOT NULL,
			hybrid_threshold INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS measurements (
			report_id TEXT NOT NULL REFERENCES reports(id) ON DELETE CASCADE,
			n INTEGER NOT NULL,
			col INTEGER NOT NULL,
			algorithm TEXT NOT NULL,
			elapsed_ns BIGINT NOT NULL,
			comparisons BIGINT NOT NULL,
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
