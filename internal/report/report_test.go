package report

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortbench/internal/benchmark"
)

func TestCSVSink(t *testing.T) {
	dir := t.TempDir()
	sink, err := NewCSVSink(dir, "random", []string{"str_quick", "msd_radix"})
	require.NoError(t, err)

	require.NoError(t, sink.WriteRow(benchmark.Row{N: 100, Cells: []benchmark.Measurement{
		{Elapsed: 1500 * time.Microsecond, Comparisons: 1234},
		{Elapsed: 10 * time.Microsecond, Comparisons: 99},
	}}))

	// Rows are on disk before Close.
	data, err := os.ReadFile(ComparesFile(dir, "random"))
	require.NoError(t, err)
	assert.Equal(t, "array_len,str_quick,msd_radix\n100,1234,99\n", string(data))

	require.NoError(t, sink.WriteRow(benchmark.Row{N: 200, Cells: []benchmark.Measurement{
		{Elapsed: 2 * time.Millisecond, Comparisons: 5000},
		{Elapsed: 0, Comparisons: 400},
	}}))
	require.NoError(t, sink.Close())

	data, err = os.ReadFile(TimeFile(dir, "random"))
	require.NoError(t, err)
	assert.Equal(t, "array_len,str_quick,msd_radix\n100,1,0\n200,2,0\n", string(data))
}

func TestCSVSink_RejectsMisalignedRow(t *testing.T) {
	sink, err := NewCSVSink(t.TempDir(), "reversed", []string{"a", "b"})
	require.NoError(t, err)
	defer sink.Close()

	err = sink.WriteRow(benchmark.Row{N: 1, Cells: []benchmark.Measurement{{}}})
	assert.ErrorContains(t, err, "has 1 cells")
}

func TestFactory(t *testing.T) {
	dir := t.TempDir()
	sink, err := Factory(dir)(benchmark.Dataset{Name: "almost_sorted"}, []string{"x"})
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	assert.FileExists(t, TimeFile(dir, "almost_sorted"))
	assert.FileExists(t, ComparesFile(dir, "almost_sorted"))
}

func TestMarkdown(t *testing.T) {
	r := &benchmark.Report{
		ID:              "r-1",
		Dataset:         "random",
		Algorithms:      []string{"str_quick", "msd_radix"},
		MaxN:            200,
		Step:            100,
		HybridThreshold: 74,
		CreatedAt:       time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Rows: []benchmark.Row{
			{N: 100, Cells: []benchmark.Measurement{{Comparisons: 10}, {Comparisons: 20}}},
			{N: 200, Cells: []benchmark.Measurement{{Comparisons: 50, Elapsed: 3 * time.Millisecond}, {Comparisons: 40}}},
		},
	}
	md := Markdown(r)
	assert.Contains(t, md, "# random")
	assert.Contains(t, md, "`r-1`")
	assert.Contains(t, md, "2026-01-02T03:04:05Z")
	assert.Contains(t, md, "| n | str_quick | msd_radix |")
	assert.Contains(t, md, "| 200 | 50 | 40 |")
	assert.Contains(t, md, "| 200 | 3 | 0 |")
	assert.Contains(t, md, "**hybrid threshold**: 74")
	assert.Contains(t, md, "Fewest comparisons at n=200: **msd_radix**")
}

func TestCheapest_EmptyRow(t *testing.T) {
	_, ok := Cheapest(&benchmark.Report{}, benchmark.Row{})
	assert.False(t, ok)
}
