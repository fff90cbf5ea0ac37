package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"sortbench/internal/benchmark"
	"sortbench/internal/config"
	"sortbench/internal/report"
)

var showCmd = &cobra.Command{
	Use:   "show [report-id]",
	Short: "Render a stored report",
	Long: `Renders a stored report as markdown tables of comparisons and elapsed time.
Without an ID the latest report is shown, optionally restricted with --dataset.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().String("dataset", "", "Pick the latest report of this dataset")
	showCmd.Flags().Bool("raw", false, "Print markdown without terminal rendering")
}

func runShow(cmd *cobra.Command, args []string) error {
	ds, _ := cmd.Flags().GetString("dataset")
	raw, _ := cmd.Flags().GetBool("raw")

	r, err := openAndLoad(args, ds)
	if err != nil {
		return err
	}

	md := report.Markdown(r)
	if raw {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	out, err := renderer.Render(md)
	if err != nil {
		// Fallback to plain text
		fmt.Fprint(cmd.OutOrStdout(), md)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// openAndLoad opens the configured store and loads the report named by
// args[0], or the latest one for dataset.
func openAndLoad(args []string, dataset string) (*benchmark.Report, error) {
	store, err := newStoreFunc(config.Get().Store)
	if err != nil {
		return nil, fmt.Errorf("failed to open report store: %w", err)
	}
	defer store.Close()
	return loadReport(store, args, dataset)
}

func loadReport(store benchmark.Store, args []string, dataset string) (*benchmark.Report, error) {
	if len(args) > 0 {
		r, err := store.Load(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to load report %s: %w", args[0], err)
		}
		return r, nil
	}
	r, err := store.LoadLatest(dataset)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest report: %w", err)
	}
	return r, nil
}
