package metrics

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/internal/benchmark"
	"sortbench/internal/strsort"
)

var _ benchmark.Observer = (*Metrics)(nil)

func TestNewMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	assert.NotNil(t, m.SortDuration)
	assert.NotNil(t, m.Comparisons)
	assert.NotNil(t, m.SortsTotal)
	assert.NotNil(t, m.RowsTotal)
	assert.NotNil(t, m.SkippedTotal)
	assert.NotNil(t, m.PrefixLength)

	// A second registration on the same registry must panic.
	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestObserve(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveSort("random", "str_quick", 2*time.Millisecond, 120)
	m.ObserveSort("random", "str_quick", time.Millisecond, 30)
	m.ObserveRow("random", 100)
	m.ObserveRow("random", 200)
	m.ObserveSkip("reversed")

	assert.Equal(t, 150.0, testutil.ToFloat64(m.Comparisons.WithLabelValues("random", "str_quick")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SortsTotal.WithLabelValues("random", "str_quick")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues("random")))
	assert.Equal(t, 200.0, testutil.ToFloat64(m.PrefixLength.WithLabelValues("random")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SkippedTotal.WithLabelValues("reversed")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.SortDuration))
}

func TestRunnerFeedsMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	keys := make([]string, 20)
	for i := range keys {
		keys[i] = string(rune('a' + (i*7)%26))
	}

	r := &benchmark.Runner{
		Battery:  strsort.NewBattery(strsort.DefaultHybridThreshold),
		MaxN:     20,
		Step:     10,
		Observer: m,
	}
	summary, err := r.RunAll(context.Background(), []benchmark.Dataset{
		{Name: "letters", Keys: keys},
		{Name: "short", Keys: keys[:5]},
	})
	require.NoError(t, err)
	require.Len(t, summary.Reports, 1)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RowsTotal.WithLabelValues("letters")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SortsTotal.WithLabelValues("letters", strsort.NameQuick3)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SkippedTotal.WithLabelValues("short")))
	assert.Equal(t, len(r.Battery), testutil.CollectAndCount(m.SortDuration))
}
