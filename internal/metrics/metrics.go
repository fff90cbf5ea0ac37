package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records benchmark progress as Prometheus series.
type Metrics struct {
	SortDuration *prometheus.HistogramVec
	Comparisons  *prometheus.CounterVec
	SortsTotal   *prometheus.CounterVec
	RowsTotal    *prometheus.CounterVec
	SkippedTotal *prometheus.CounterVec
	PrefixLength *prometheus.GaugeVec
}

// NewMetrics creates the benchmark metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{}

	m.SortDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "sortbench_sort_duration_seconds",
			Help:    "Wall-clock time of one timed sort",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"dataset", "algorithm"},
	)

	m.Comparisons = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sortbench_comparisons_total",
			Help: "Character comparisons counted across all sorts",
		},
		[]string{"dataset", "algorithm"},
	)

	m.SortsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sortbench_sorts_total",
			Help: "Number of timed sorts",
		},
		[]string{"dataset", "algorithm"},
	)

	m.RowsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sortbench_rows_total",
			Help: "Number of completed result rows",
		},
		[]string{"dataset"},
	)

	m.SkippedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sortbench_datasets_skipped_total",
			Help: "Datasets skipped for having too few keys",
		},
		[]string{"dataset"},
	)

	m.PrefixLength = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sortbench_prefix_length",
			Help: "Prefix length of the last completed row",
		},
		[]string{"dataset"},
	)

	reg.MustRegister(
		m.SortDuration,
		m.Comparisons,
		m.SortsTotal,
		m.RowsTotal,
		m.SkippedTotal,
		m.PrefixLength,
	)

	return m
}

// ObserveSort records one timed sort.
func (m *Metrics) ObserveSort(dataset, algorithm string, elapsed time.Duration, comparisons uint64) {
	m.SortDuration.WithLabelValues(dataset, algorithm).Observe(elapsed.Seconds())
	m.Comparisons.WithLabelValues(dataset, algorithm).Add(float64(comparisons))
	m.SortsTotal.WithLabelValues(dataset, algorithm).Inc()
}

// ObserveRow records a completed row.
func (m *Metrics) ObserveRow(dataset string, n int) {
	m.RowsTotal.WithLabelValues(dataset).Inc()
	m.PrefixLength.WithLabelValues(dataset).Set(float64(n))
}

// ObserveSkip records a dataset that was too short to run.
func (m *Metrics) ObserveSkip(dataset string) {
	m.SkippedTotal.WithLabelValues(dataset).Inc()
}
