package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"sortbench/internal/benchmark"
)

// HeaderLength names the first CSV column.
const HeaderLength = "array_len"

// TimeFile and ComparesFile return the CSV paths written for a dataset prefix.
func TimeFile(dir, prefix string) string {
	return filepath.Join(dir, prefix+"_time_sorts.csv")
}

func ComparesFile(dir, prefix string) string {
	return filepath.Join(dir, prefix+"_compares_sorts.csv")
}

// CSVSink writes two CSV files per dataset: elapsed milliseconds and
// comparison counts, one row per prefix length. Every row is flushed as soon
// as it is written.
type CSVSink struct {
	files   []*os.File
	timeW   *csv.Writer
	cmpW    *csv.Writer
	columns int
}

// NewCSVSink creates <dir>/<prefix>_time_sorts.csv and
// <dir>/<prefix>_compares_sorts.csv and writes their headers.
func NewCSVSink(dir, prefix string, algorithms []string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	tf, err := os.Create(TimeFile(dir, prefix))
	if err != nil {
		return nil, err
	}
	cf, err := os.Create(ComparesFile(dir, prefix))
	if err != nil {
		tf.Close()
		return nil, err
	}
	s := &CSVSink{
		files:   []*os.File{tf, cf},
		timeW:   csv.NewWriter(tf),
		cmpW:    csv.NewWriter(cf),
		columns: len(algorithms),
	}

	header := append([]string{HeaderLength}, algorithms...)
	if err := s.write(header, header); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Factory adapts NewCSVSink to benchmark.SinkFactory, naming files after the dataset.
func Factory(dir string) benchmark.SinkFactory {
	return func(ds benchmark.Dataset, algorithms []string) (benchmark.RowSink, error) {
		return NewCSVSink(dir, ds.Name, algorithms)
	}
}

// WriteRow implements benchmark.RowSink.
func (s *CSVSink) WriteRow(row benchmark.Row) error {
	if len(row.Cells) != s.columns {
		return fmt.Errorf("row n=%d has %d cells, header has %d algorithms", row.N, len(row.Cells), s.columns)
	}
	n := strconv.Itoa(row.N)
	times := []string{n}
	cmps := []string{n}
	for _, m := range row.Cells {
		times = append(times, strconv.FormatInt(m.ElapsedMS(), 10))
		cmps = append(cmps, strconv.FormatUint(m.Comparisons, 10))
	}
	return s.write(times, cmps)
}

func (s *CSVSink) write(times, cmps []string) error {
	if err := s.timeW.Write(times); err != nil {
		return err
	}
	if err := s.cmpW.Write(cmps); err != nil {
		return err
	}
	s.timeW.Flush()
	s.cmpW.Flush()
	if err := s.timeW.Error(); err != nil {
		return err
	}
	return s.cmpW.Error()
}

// Close flushes and closes both files.
func (s *CSVSink) Close() error {
	s.timeW.Flush()
	s.cmpW.Flush()
	var first error
	for _, f := range s.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
