package benchmark

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ErrReportNotFound is returned when a store has no matching report.
var ErrReportNotFound = errors.New("report not found")

// Store defines the interface for storing benchmark reports.
type Store interface {
	Save(report Report) error
	Load(id string) (*Report, error)
	// LoadLatest returns the newest report, restricted to dataset when it is not empty.
	LoadLatest(dataset string) (*Report, error)
	LoadAll() ([]Report, error)
	Close() error
}

// FileStore implements Store using a JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Save(report Report) error {
	reports, err := s.LoadAll()
	if err != nil {
		return err
	}

	reports = append(reports, report)

	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reports: %w", err)
	}

	return os.WriteFile(s.path, data, 0644)
}

func (s *FileStore) LoadAll() ([]Report, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Report{}, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return []Report{}, nil
	}

	var reports []Report
	if err := json.Unmarshal(data, &reports); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reports: %w", err)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})

	return reports, nil
}

func (s *FileStore) Load(id string) (*Report, error) {
	reports, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := range reports {
		if reports[i].ID == id {
			return &reports[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrReportNotFound, id)
}

func (s *FileStore) LoadLatest(dataset string) (*Report, error) {
	reports, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	for i := len(reports) - 1; i >= 0; i-- {
		if dataset == "" || reports[i].Dataset == dataset {
			return &reports[i], nil
		}
	}
	return nil, ErrReportNotFound
}

// Close is a no-op; every call reads and writes the file directly.
func (s *FileStore) Close() error { return nil }
