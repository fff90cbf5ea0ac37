package main

import (
	"github.com/spf13/cobra"
)

var viewCmd = &cobra.Command{
	Use:   "view [report-id]",
	Short: "Browse a stored report in an interactive table",
	Long: `Opens a stored report as a table of prefix length by algorithm. Press m to
switch between comparisons and elapsed time, q to quit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, _ := cmd.Flags().GetString("dataset")
		r, err := openAndLoad(args, ds)
		if err != nil {
			return err
		}
		return startReportView(r)
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
	viewCmd.Flags().String("dataset", "", "Pick the latest report of this dataset")
}
