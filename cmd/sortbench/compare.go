package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"sortbench/internal/benchmark"
	"sortbench/internal/config"
	"sortbench/internal/ui"
)

var compareCmd = &cobra.Command{
	Use:   "compare [base-id head-id]",
	Short: "Compare two stored reports",
	Long: `Compares two reports at the largest prefix length both measured and shows the
change in comparisons and elapsed time per algorithm. Without IDs the two most
recent reports of --dataset are compared.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("accepts 0 or 2 report IDs, received %d", len(args))
		}
		return nil
	},
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().String("dataset", "", "Dataset whose two latest reports are compared")
	compareCmd.Flags().Float64("threshold", 10.0, "Percentage change flagged as a regression or improvement")
}

func runCompare(cmd *cobra.Command, args []string) error {
	ds, _ := cmd.Flags().GetString("dataset")
	threshold, _ := cmd.Flags().GetFloat64("threshold")

	store, err := newStoreFunc(config.Get().Store)
	if err != nil {
		return fmt.Errorf("failed to open report store: %w", err)
	}
	defer store.Close()

	base, head, err := loadPair(store, args, ds)
	if err != nil {
		return err
	}

	comps := benchmark.Compare(*base, *head)
	if len(comps) == 0 {
		return fmt.Errorf("reports %s and %s share no prefix length", base.ID, head.ID)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s (%s) -> %s (%s)\n\n", ui.Title(" "+head.Dataset+" "),
		base.ID, base.CreatedAt.Format("2006-01-02 15:04:05"), head.ID, head.CreatedAt.Format("2006-01-02 15:04:05"))
	printComparison(cmd.OutOrStdout(), comps, threshold)
	return nil
}

func loadPair(store benchmark.Store, args []string, dataset string) (*benchmark.Report, *benchmark.Report, error) {
	if len(args) == 2 {
		base, err := store.Load(args[0])
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load report %s: %w", args[0], err)
		}
		head, err := store.Load(args[1])
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load report %s: %w", args[1], err)
		}
		return base, head, nil
	}

	all, err := store.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load reports: %w", err)
	}
	var matching []benchmark.Report
	for _, r := range all {
		if dataset == "" || r.Dataset == dataset {
			matching = append(matching, r)
		}
	}
	if len(matching) < 2 {
		return nil, nil, fmt.Errorf("need two stored reports to compare, found %d", len(matching))
	}
	base, head := matching[len(matching)-2], matching[len(matching)-1]
	return &base, &head, nil
}

func printComparison(out io.Writer, comps []benchmark.Comparison, threshold float64) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tN\tCMPS\tCMPS DIFF %\tMS\tTIME DIFF %\tSTATUS")
	for _, c := range comps {
		status, diff := comparisonStatus(c, threshold)
		// status is the last column, so its color codes do not skew alignment
		fmt.Fprintf(w, "%s\t%d\t%d\t%+.2f%%\t%d\t%+.2f%%\t%s\n",
			c.Algorithm, c.N, c.Curr.Comparisons, c.ComparisonsDiff,
			c.Curr.ElapsedMS(), c.ElapsedDiff, ui.DiffStyle(diff, threshold).Render(status))
	}
	w.Flush()
}

// comparisonStatus flags a regression when either metric grew past threshold
// percent and an improvement when either shrank past it. Regressions win.
func comparisonStatus(c benchmark.Comparison, threshold float64) (string, float64) {
	if worst := max(c.ElapsedDiff, c.ComparisonsDiff); worst > threshold {
		return "SLOWER", worst
	}
	if best := min(c.ElapsedDiff, c.ComparisonsDiff); best < -threshold {
		return "FASTER", best
	}
	return "PASS", max(c.ElapsedDiff, c.ComparisonsDiff)
}
