package benchmark

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned before any run when runner parameters are unusable.
	ErrInvalidConfig = errors.New("invalid benchmark configuration")
	// ErrInsufficientData means a dataset is smaller than the largest prefix to test.
	// The dataset is skipped as a whole.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrUnsorted is returned by a verifying runner when an algorithm's output
	// is not the sorted permutation of its input.
	ErrUnsorted = errors.New("algorithm output is not sorted")
)

// FaultError reports a panic raised inside a sorting algorithm.
type FaultError struct {
	Algorithm string
	Dataset   string
	N         int
	Value     any
	Stack     []byte
}

func (e *FaultError) Error() string {
	if e.Algorithm == "" {
		return fmt.Sprintf("algorithm fault: %v", e.Value)
	}
	return fmt.Sprintf("algorithm %s faulted on %s at n=%d: %v", e.Algorithm, e.Dataset, e.N, e.Value)
}

// Unwrap exposes the panic value when it was an error (runtime errors included).
func (e *FaultError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
