package db

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"sortbench/internal/benchmark"
)

// sqlStore implements benchmark.Store on top of database/sql. Queries are
// written with ? placeholders and passed through bind for the dialect.
type sqlStore struct {
	db   *sql.DB
	bind func(query string) string
}

// Close closes the database connection
func (s *sqlStore) Close() error {
	return s.db.Close()
}

// Save stores a report and all of its measurements in one transaction.
func (s *sqlStore) Save(report benchmark.Report) error {
	algorithms, err := json.Marshal(report.Algorithms)
	if err != nil {
		return fmt.Errorf("failed to marshal algorithms: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(s.bind(`INSERT INTO reports (id, dataset, shape, algorithms, max_n, step, hybrid_threshold, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
		report.ID, report.Dataset, report.Shape, string(algorithms), report.MaxN, report.Step, report.HybridThreshold, report.CreatedAt)
	if err != nil {
		return err
	}

	insert := s.bind(`INSERT INTO measurements (report_id, n, col, algorithm, elapsed_ns, comparisons) VALUES (?, ?, ?, ?, ?, ?)`)
	for _, row := range report.Rows {
		for col, m := range row.Cells {
			name := ""
			if col < len(report.Algorithms) {
				name = report.Algorithms[col]
			}
			if _, err := tx.Exec(insert, report.ID, row.N, col, name, int64(m.Elapsed), int64(m.Comparisons)); err != nil {
				return err
			}
		}
	}
	return tx.Commit()
}

const reportColumns = `id, dataset, shape, algorithms, max_n, step, hybrid_threshold, created_at`

func scanReport(scan func(dest ...any) error) (*benchmark.Report, error) {
	var r benchmark.Report
	var algorithms string
	if err := scan(&r.ID, &r.Dataset, &r.Shape, &algorithms, &r.MaxN, &r.Step, &r.HybridThreshold, &r.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(algorithms), &r.Algorithms); err != nil {
		return nil, fmt.Errorf("failed to unmarshal algorithms of report %s: %w", r.ID, err)
	}
	return &r, nil
}

// Load retrieves one report with its rows.
func (s *sqlStore) Load(id string) (*benchmark.Report, error) {
	row := s.db.QueryRow(s.bind(`SELECT `+reportColumns+` FROM reports WHERE id = ?`), id)
	r, err := scanReport(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", benchmark.ErrReportNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	if err := s.loadRows(r); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadLatest retrieves the newest report, optionally for one dataset.
func (s *sqlStore) LoadLatest(dataset string) (*benchmark.Report, error) {
	var id string
	err := s.db.QueryRow(s.bind(`SELECT id FROM reports WHERE (? = '' OR dataset = ?) ORDER BY created_at DESC LIMIT 1`), dataset, dataset).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, benchmark.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Load(id)
}

// LoadAll retrieves every report, oldest first.
func (s *sqlStore) LoadAll() ([]benchmark.Report, error) {
	rows, err := s.db.Query(`SELECT ` + reportColumns + ` FROM reports ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	var reports []benchmark.Report
	for rows.Next() {
		r, err := scanReport(rows.Scan)
		if err != nil {
			rows.Close()
			return nil, err
		}
		reports = append(reports, *r)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	for i := range reports {
		if err := s.loadRows(&reports[i]); err != nil {
			return nil, err
		}
	}
	return reports, nil
}

func (s *sqlStore) loadRows(r *benchmark.Report) error {
	rows, err := s.db.Query(s.bind(`SELECT n, elapsed_ns, comparisons FROM measurements WHERE report_id = ? ORDER BY n ASC, col ASC`), r.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	r.Rows = nil
	for rows.Next() {
		var n int
		var elapsed, comparisons int64
		if err := rows.Scan(&n, &elapsed, &comparisons); err != nil {
			return err
		}
		if len(r.Rows) == 0 || r.Rows[len(r.Rows)-1].N != n {
			r.Rows = append(r.Rows, benchmark.Row{N: n, Cells: make([]benchmark.Measurement, 0, len(r.Algorithms))})
		}
		last := &r.Rows[len(r.Rows)-1]
		last.Cells = append(last.Cells, benchmark.Measurement{
			Elapsed:     time.Duration(elapsed),
			Comparisons: uint64(comparisons),
		})
	}
	return rows.Err()
}

// rebind rewrites ? placeholders as $1, $2, ... for Postgres.
func rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func identity(query string) string { return query }
