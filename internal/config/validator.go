package config

import (
	"fmt"
	"strings"

	"sortbench/internal/benchmark"
)

// ValidationError lists every invalid setting found in one pass.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "configuration validation failed:\n  " + strings.Join(e.Problems, "\n  ")
}

// Unwrap lets callers match benchmark.ErrInvalidConfig.
func (e *ValidationError) Unwrap() error {
	return benchmark.ErrInvalidConfig
}

// ValidateConfig validates configuration values and returns an error if any are invalid.
// This function should be called after Load.
func ValidateConfig() error {
	return Validate(Get())
}

// Validate checks cfg and reports all problems together.
func Validate(cfg Config) error {
	var problems []string

	g := cfg.Generate
	if g.Size <= 0 {
		problems = append(problems, fmt.Sprintf("generate.size must be positive, got: %d", g.Size))
	}
	if g.MinLen < 0 {
		problems = append(problems, fmt.Sprintf("generate.min_len must not be negative, got: %d", g.MinLen))
	}
	if g.MaxLen < g.MinLen {
		problems = append(problems, fmt.Sprintf("generate.max_len (%d) must not be less than generate.min_len (%d)", g.MaxLen, g.MinLen))
	}
	if g.SwapRatio < 0 || g.SwapRatio > 1 {
		problems = append(problems, fmt.Sprintf("generate.swap_ratio must be between 0 and 1, got: %g", g.SwapRatio))
	}

	r := cfg.Run
	if r.MaxN <= 0 {
		problems = append(problems, fmt.Sprintf("run.max_n must be positive, got: %d", r.MaxN))
	}
	if r.Step <= 0 {
		problems = append(problems, fmt.Sprintf("run.step must be positive, got: %d", r.Step))
	} else if r.MaxN > 0 && r.Step > r.MaxN {
		problems = append(problems, fmt.Sprintf("run.step (%d) must not exceed run.max_n (%d)", r.Step, r.MaxN))
	}
	if r.HybridThreshold < 1 {
		problems = append(problems, fmt.Sprintf("run.hybrid_threshold must be at least 1, got: %d", r.HybridThreshold))
	}

	switch strings.ToLower(cfg.Store.Type) {
	case "", "sqlite", "sqlite3", "json":
	case "postgres", "postgresql":
		if cfg.Store.DSN == "" {
			problems = append(problems, "store.dsn is required for postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("store.type must be sqlite, postgres or json, got: %s", cfg.Store.Type))
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}
