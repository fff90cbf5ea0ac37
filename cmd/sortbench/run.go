package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sortbench/internal/benchmark"
	"sortbench/internal/config"
	"sortbench/internal/dataset"
	"sortbench/internal/metrics"
	"sortbench/internal/report"
	"sortbench/internal/strsort"
)

var runCmd = &cobra.Command{
	Use:   "run [name=path ...]",
	Short: "Run the sorting battery over the datasets",
	Long: `Sorts prefixes of length step, 2*step, ... up to max-n of every dataset with
each algorithm and writes <name>_time_sorts.csv and <name>_compares_sorts.csv into
--out-dir. Rows are flushed as they complete.

Without arguments the three generated datasets in --data-dir are used. Arguments
name other files, either as a bare path or as name=path.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().Int("max-n", 3000, "Largest prefix length")
	runCmd.Flags().Int("step", 100, "Prefix length increment")
	runCmd.Flags().Int("threshold", strsort.DefaultHybridThreshold, "Hybrid sort switches to quicksort below this many keys")
	runCmd.Flags().Bool("verify", false, "Check every output against a reference sort")
	runCmd.Flags().StringSlice("algorithms", nil, "Subset of algorithms to run (default all)")

	viper.BindPFlag("run.max_n", runCmd.Flags().Lookup("max-n"))
	viper.BindPFlag("run.step", runCmd.Flags().Lookup("step"))
	viper.BindPFlag("run.hybrid_threshold", runCmd.Flags().Lookup("threshold"))
	viper.BindPFlag("run.verify", runCmd.Flags().Lookup("verify"))
	viper.BindPFlag("run.algorithms", runCmd.Flags().Lookup("algorithms"))
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	battery := strsort.NewBattery(cfg.Run.HybridThreshold)
	if len(cfg.Run.Algorithms) > 0 {
		var err error
		if battery, err = battery.Select(cfg.Run.Algorithms...); err != nil {
			return fmt.Errorf("%w: %v", benchmark.ErrInvalidConfig, err)
		}
	}

	datasets, err := loadDatasets(cfg.DataDir, args)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	store, err := newStoreFunc(cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open report store: %w", err)
	}
	defer store.Close()

	runner := &benchmark.Runner{
		Battery:         battery,
		MaxN:            cfg.Run.MaxN,
		Step:            cfg.Run.Step,
		HybridThreshold: cfg.Run.HybridThreshold,
		Verify:          cfg.Run.Verify,
		NewSink:         report.Factory(cfg.OutDir),
		Store:           store,
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		runner.Observer = metrics.NewMetrics(reg)
		srv, err := startMetricsServer(cfg.MetricsAddr, reg)
		if err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	start := time.Now()
	summary, err := runner.RunAll(ctx, datasets)
	if summary != nil {
		printSummary(cmd.OutOrStdout(), summary, cfg.OutDir)
	}
	if err != nil {
		var fault *benchmark.FaultError
		if errors.As(err, &fault) {
			slog.Debug("algorithm fault", "stack", string(fault.Stack))
		}
		return err
	}
	slog.Info("run complete", "datasets", len(summary.Reports), "skipped", len(summary.Skipped), "elapsed", time.Since(start))
	return nil
}

// loadDatasets reads the named files, or the generated ones in dataDir. Keys
// of generated files are checked against the manifest's length bounds. A
// missing file yields an empty dataset, which the runner reports as skipped.
func loadDatasets(dataDir string, args []string) ([]benchmark.Dataset, error) {
	if len(args) > 0 {
		var datasets []benchmark.Dataset
		seen := make(map[string]string, len(args))
		for _, arg := range args {
			name, path := splitDatasetArg(arg)
			if prev, ok := seen[name]; ok {
				return nil, fmt.Errorf("%w: dataset name %q used by both %s and %s", benchmark.ErrInvalidConfig, name, prev, path)
			}
			seen[name] = path
			keys, err := readDataset(name, path)
			if err != nil {
				return nil, err
			}
			datasets = append(datasets, benchmark.Dataset{Name: name, Keys: keys})
		}
		return datasets, nil
	}

	manifest, err := dataset.LoadManifest(dataDir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	var datasets []benchmark.Dataset
	for _, shape := range dataset.Shapes {
		path := filepath.Join(dataDir, shape.FileName())
		if manifest != nil {
			if f, ok := manifest.Lookup(shape); ok {
				path = filepath.Join(dataDir, f.Path)
			}
		}
		keys, err := readDataset(string(shape), path)
		if err != nil {
			return nil, err
		}
		if manifest != nil && keys != nil {
			if err := dataset.Validate(keys, manifest.MinLen, manifest.MaxLen); err != nil {
				return nil, fmt.Errorf("dataset %s: %w", shape, err)
			}
		}
		datasets = append(datasets, benchmark.Dataset{Name: string(shape), Shape: string(shape), Keys: keys})
	}
	return datasets, nil
}

// readDataset returns nil keys without error when path does not exist.
func readDataset(name, path string) ([]string, error) {
	keys, err := dataset.ReadLines(path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("dataset file not found", "dataset", name, "path", path)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", name, err)
	}
	return keys, nil
}

// splitDatasetArg accepts "name=path" or a bare path, in which case the name
// is the file name without extension and "_strings" suffix.
func splitDatasetArg(arg string) (name, path string) {
	if n, p, ok := strings.Cut(arg, "="); ok && n != "" {
		return n, p
	}
	name = strings.TrimSuffix(filepath.Base(arg), filepath.Ext(arg))
	return strings.TrimSuffix(name, "_strings"), arg
}

func printSummary(out io.Writer, summary *benchmark.Summary, outDir string) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DATASET\tROWS\tFEWEST COMPARISONS\tREPORT")
	for _, r := range summary.Reports {
		best := "-"
		if row, ok := r.Last(); ok {
			if name, ok := report.Cheapest(r, row); ok {
				best = fmt.Sprintf("%s @ n=%d", name, row.N)
			}
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", r.Dataset, len(r.Rows), best, r.ID)
	}
	for _, name := range summary.Skipped {
		fmt.Fprintf(w, "%s\t-\tskipped: not enough keys\t-\n", name)
	}
	w.Flush()
	if len(summary.Reports) > 0 {
		fmt.Fprintf(out, "\nCSV reports written to %s\n", outDir)
	}
}
