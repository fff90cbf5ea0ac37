package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sortbench/internal/config"
	"sortbench/internal/telemetry"
)

var exit = os.Exit
var cfgFile string
var logCloser io.Closer

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sortbench",
	Short: "Benchmark string sorting algorithms",
	Long: `sortbench measures wall-clock time and character comparisons of six string
sorting algorithms (three-way string quicksort, merge sort, MSD radix sort, a
radix/quicksort hybrid and two library baselines) on growing prefixes of
newline-delimited datasets, and writes the results as CSV.`,
	SilenceErrors:      true,
	SilenceUsage:       true,
	PersistentPreRunE:  initConfig,
	PersistentPostRunE: closeLogger,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sortbench.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().String("data-dir", ".", "Directory holding the dataset files")
	rootCmd.PersistentFlags().String("out-dir", ".", "Directory receiving the CSV reports")
	rootCmd.PersistentFlags().String("store", "sqlite", "Report store: sqlite, postgres or json")
	rootCmd.PersistentFlags().String("store-dsn", ".sortbench.db", "Store location (file path, or DSN for postgres)")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address while running")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log-file"))
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data-dir"))
	viper.BindPFlag("out_dir", rootCmd.PersistentFlags().Lookup("out-dir"))
	viper.BindPFlag("store.type", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("store.dsn", rootCmd.PersistentFlags().Lookup("store-dsn"))
	viper.BindPFlag("metrics_addr", rootCmd.PersistentFlags().Lookup("metrics-addr"))
}

// initConfig reads in config file and ENV variables, validates them and
// installs the logger. Invalid configuration stops the command before any work.
func initConfig(cmd *cobra.Command, args []string) error {
	if err := config.Load(cfgFile); err != nil {
		return err
	}
	if err := config.ValidateConfig(); err != nil {
		return err
	}
	cfg := config.Get()
	logCloser = telemetry.InitLogger(cfg.Verbose, cfg.LogFile)
	return nil
}

func closeLogger(cmd *cobra.Command, args []string) error {
	if logCloser == nil {
		return nil
	}
	err := logCloser.Close()
	logCloser = nil
	return err
}
