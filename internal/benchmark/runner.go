package benchmark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"sortbench/internal/strsort"
)

// RowSink receives rows as soon as they are measured.
type RowSink interface {
	WriteRow(row Row) error
	Close() error
}

// SinkFactory opens the sink for one dataset. algorithms gives the column order.
type SinkFactory func(ds Dataset, algorithms []string) (RowSink, error)

// Observer is notified about every measurement. metrics.Metrics implements it.
type Observer interface {
	ObserveSort(dataset, algorithm string, elapsed time.Duration, comparisons uint64)
	ObserveRow(dataset string, n int)
	ObserveSkip(dataset string)
}

// Runner measures a battery against growing prefixes of datasets.
type Runner struct {
	Battery strsort.Battery
	MaxN    int
	Step    int

	// HybridThreshold is recorded in reports; the battery already carries it.
	HybridThreshold int

	// Verify checks every output against a reference sort outside the timed region.
	Verify bool

	NewSink  SinkFactory
	Store    Store
	Observer Observer
}

// Summary collects the outcome of RunAll.
type Summary struct {
	Reports []*Report
	Skipped []string
}

// Validate checks the runner parameters.
func (r *Runner) Validate() error {
	switch {
	case len(r.Battery) == 0:
		return fmt.Errorf("%w: no algorithms registered", ErrInvalidConfig)
	case r.MaxN <= 0:
		return fmt.Errorf("%w: max n must be positive, got %d", ErrInvalidConfig, r.MaxN)
	case r.Step <= 0:
		return fmt.Errorf("%w: step must be positive, got %d", ErrInvalidConfig, r.Step)
	case r.Step > r.MaxN:
		return fmt.Errorf("%w: step %d exceeds max n %d", ErrInvalidConfig, r.Step, r.MaxN)
	}
	return nil
}

// Run measures every algorithm on prefixes of ds of length Step, 2*Step, ...
// up to MaxN. Rows reach the sink as they complete, so a later fault leaves
// the earlier rows in place. ctx is only checked between rows.
func (r *Runner) Run(ctx context.Context, ds Dataset) (*Report, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if len(ds.Keys) < r.MaxN {
		return nil, fmt.Errorf("%w: dataset %s has %d keys, need %d", ErrInsufficientData, ds.Name, len(ds.Keys), r.MaxN)
	}

	names := r.Battery.Names()
	report := &Report{
		ID:              uuid.NewString(),
		Dataset:         ds.Name,
		Shape:           ds.Shape,
		Algorithms:      names,
		MaxN:            r.MaxN,
		Step:            r.Step,
		HybridThreshold: r.HybridThreshold,
		CreatedAt:       time.Now().UTC(),
	}

	var sink RowSink
	if r.NewSink != nil {
		var err error
		if sink, err = r.NewSink(ds, names); err != nil {
			return nil, fmt.Errorf("failed to open sink for %s: %w", ds.Name, err)
		}
	}

	err := r.runRows(ctx, ds, report, sink)
	if sink != nil {
		if cerr := sink.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close sink for %s: %w", ds.Name, cerr)
		}
	}
	if err != nil {
		return report, err
	}

	if r.Store != nil {
		if err := r.Store.Save(*report); err != nil {
			return report, fmt.Errorf("failed to save report for %s: %w", ds.Name, err)
		}
	}
	return report, nil
}

func (r *Runner) runRows(ctx context.Context, ds Dataset, report *Report, sink RowSink) error {
	for n := r.Step; n <= r.MaxN; n += r.Step {
		if err := ctx.Err(); err != nil {
			return err
		}
		row, err := r.measureRow(ds, n)
		if err != nil {
			return err
		}
		report.Rows = append(report.Rows, row)
		if sink != nil {
			if err := sink.WriteRow(row); err != nil {
				return fmt.Errorf("failed to write row n=%d for %s: %w", n, ds.Name, err)
			}
		}
		if r.Observer != nil {
			r.Observer.ObserveRow(ds.Name, n)
		}
		slog.Debug("row done", "dataset", ds.Name, "n", n)
	}
	return nil
}

func (r *Runner) measureRow(ds Dataset, n int) (Row, error) {
	base := ds.Keys[:n]
	var want []string
	if r.Verify {
		want = slices.Sorted(slices.Values(base))
	}

	row := Row{N: n, Cells: make([]Measurement, 0, len(r.Battery))}
	for _, entry := range r.Battery {
		work := slices.Clone(base)
		m, err := timed(entry.Algorithm, work)
		if err != nil {
			var fault *FaultError
			if errors.As(err, &fault) {
				fault.Algorithm, fault.Dataset, fault.N = entry.Name, ds.Name, n
			}
			return row, err
		}
		if r.Verify && !slices.Equal(work, want) {
			return row, fmt.Errorf("%w: %s on %s at n=%d", ErrUnsorted, entry.Name, ds.Name, n)
		}
		if r.Observer != nil {
			r.Observer.ObserveSort(ds.Name, entry.Name, m.Elapsed, m.Comparisons)
		}
		row.Cells = append(row.Cells, m)
	}
	return row, nil
}

// RunAll runs every dataset in order. Datasets with too few keys are skipped
// and listed in the summary; any other error stops the run and is returned
// together with the reports completed so far.
func (r *Runner) RunAll(ctx context.Context, datasets []Dataset) (*Summary, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	summary := &Summary{}
	for _, ds := range datasets {
		report, err := r.Run(ctx, ds)
		if errors.Is(err, ErrInsufficientData) {
			slog.Warn("skipping dataset", "dataset", ds.Name, "keys", len(ds.Keys), "max_n", r.MaxN)
			summary.Skipped = append(summary.Skipped, ds.Name)
			if r.Observer != nil {
				r.Observer.ObserveSkip(ds.Name)
			}
			continue
		}
		if err != nil {
			return summary, err
		}
		slog.Info("dataset done", "dataset", ds.Name, "rows", len(report.Rows), "report", report.ID)
		summary.Reports = append(summary.Reports, report)
	}
	return summary, nil
}
