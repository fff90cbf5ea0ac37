package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sortbench/internal/strsort"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List the sorting algorithms in column order",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		battery := strsort.NewBattery(viper.GetInt("run.hybrid_threshold"))
		for i, name := range battery.Names() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, name)
		}
	},
}

func init() {
	rootCmd.AddCommand(algorithmsCmd)
}
