package benchmark

import (
	"runtime/debug"
	"slices"
	"time"

	"sortbench/internal/strsort"
)

// Timed sorts a private copy of keys with alg and reports how long it took and
// how many comparisons it counted. keys is left untouched. A panic inside alg
// is returned as a *FaultError.
func Timed(alg strsort.Algorithm, keys []string) (Measurement, error) {
	return timed(alg, slices.Clone(keys))
}

// timed sorts work in place.
func timed(alg strsort.Algorithm, work []string) (m Measurement, err error) {
	var c strsort.Counter
	defer func() {
		if v := recover(); v != nil {
			err = &FaultError{Value: v, Stack: debug.Stack()}
		}
	}()

	start := time.Now()
	alg.Sort(work, &c)
	m.Elapsed = time.Since(start)
	m.Comparisons = c.Value()
	return m, nil
}
