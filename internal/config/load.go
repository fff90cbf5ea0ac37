package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SORTBENCH_RUN_MAX_N.
const EnvPrefix = "SORTBENCH"

// Config is a typed snapshot of the loaded settings.
type Config struct {
	DataDir     string
	OutDir      string
	MetricsAddr string
	Verbose     bool
	LogFile     string

	Generate GenerateConfig
	Run      RunConfig
	Store    StoreConfig
}

// GenerateConfig controls dataset generation.
type GenerateConfig struct {
	Size      int
	MinLen    int
	MaxLen    int
	SwapRatio float64
	Seed      uint64 // 0 picks a seed from the clock
}

// RunConfig controls the benchmark run.
type RunConfig struct {
	MaxN            int
	Step            int
	HybridThreshold int
	Verify          bool
	Algorithms      []string // empty means the full battery
}

// StoreConfig selects where reports are kept.
type StoreConfig struct {
	Type string
	DSN  string
}

// SetDefaults registers the default value of every key.
func SetDefaults() {
	viper.SetDefault("data_dir", ".")
	viper.SetDefault("out_dir", ".")
	viper.SetDefault("metrics_addr", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_file", "")

	viper.SetDefault("generate.size", 3000)
	viper.SetDefault("generate.min_len", 10)
	viper.SetDefault("generate.max_len", 200)
	viper.SetDefault("generate.swap_ratio", 0.01)
	viper.SetDefault("generate.seed", 0)

	viper.SetDefault("run.max_n", 3000)
	viper.SetDefault("run.step", 100)
	viper.SetDefault("run.hybrid_threshold", 74)
	viper.SetDefault("run.verify", false)
	viper.SetDefault("run.algorithms", []string{})

	viper.SetDefault("store.type", "sqlite")
	viper.SetDefault("store.dsn", ".sortbench.db")
}

// Load initializes the configuration from .env, the config file and
// environment variables. A missing default config file is not an error;
// a missing file named by cfgFile is.
func Load(cfgFile string) error {
	// .env is optional
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("sortbench")
	}

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		return nil
	}
	slog.Debug("using config file", "path", viper.ConfigFileUsed())
	return nil
}

// Get returns the current settings.
func Get() Config {
	return Config{
		DataDir:     viper.GetString("data_dir"),
		OutDir:      viper.GetString("out_dir"),
		MetricsAddr: viper.GetString("metrics_addr"),
		Verbose:     viper.GetBool("verbose"),
		LogFile:     viper.GetString("log_file"),
		Generate: GenerateConfig{
			Size:      viper.GetInt("generate.size"),
			MinLen:    viper.GetInt("generate.min_len"),
			MaxLen:    viper.GetInt("generate.max_len"),
			SwapRatio: viper.GetFloat64("generate.swap_ratio"),
			Seed:      viper.GetUint64("generate.seed"),
		},
		Run: RunConfig{
			MaxN:            viper.GetInt("run.max_n"),
			Step:            viper.GetInt("run.step"),
			HybridThreshold: viper.GetInt("run.hybrid_threshold"),
			Verify:          viper.GetBool("run.verify"),
			Algorithms:      viper.GetStringSlice("run.algorithms"),
		},
		Store: StoreConfig{
			Type: viper.GetString("store.type"),
			DSN:  viper.GetString("store.dsn"),
		},
	}
}
