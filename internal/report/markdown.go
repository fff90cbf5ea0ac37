package report

import (
	"fmt"
	"strings"
	"time"

	"sortbench/internal/benchmark"
)

// Markdown renders a report as a markdown document: a header with the run
// parameters, then one table for comparisons and one for elapsed time.
func Markdown(r *benchmark.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Dataset)
	fmt.Fprintf(&b, "- **report**: `%s`\n", r.ID)
	fmt.Fprintf(&b, "- **created**: %s\n", r.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "- **prefixes**: %d to %d step %d\n", r.Step, r.MaxN, r.Step)
	if r.HybridThreshold > 0 {
		fmt.Fprintf(&b, "- **hybrid threshold**: %d\n", r.HybridThreshold)
	}

	b.WriteString("\n## Comparisons\n\n")
	writeTable(&b, r, func(m benchmark.Measurement) string {
		return fmt.Sprintf("%d", m.Comparisons)
	})
	b.WriteString("\n## Elapsed (ms)\n\n")
	writeTable(&b, r, func(m benchmark.Measurement) string {
		return fmt.Sprintf("%d", m.ElapsedMS())
	})

	if last, ok := r.Last(); ok {
		if best, ok := Cheapest(r, last); ok {
			fmt.Fprintf(&b, "\nFewest comparisons at n=%d: **%s**\n", last.N, best)
		}
	}
	return b.String()
}

func writeTable(b *strings.Builder, r *benchmark.Report, cell func(benchmark.Measurement) string) {
	b.WriteString("| n |")
	for _, name := range r.Algorithms {
		fmt.Fprintf(b, " %s |", name)
	}
	b.WriteString("\n|---:|")
	for range r.Algorithms {
		b.WriteString("---:|")
	}
	b.WriteString("\n")
	for _, row := range r.Rows {
		fmt.Fprintf(b, "| %d |", row.N)
		for _, m := range row.Cells {
			fmt.Fprintf(b, " %s |", cell(m))
		}
		b.WriteString("\n")
	}
}

// Cheapest returns the algorithm with the fewest comparisons in row.
func Cheapest(r *benchmark.Report, row benchmark.Row) (string, bool) {
	best := -1
	for i, m := range row.Cells {
		if i >= len(r.Algorithms) {
			break
		}
		if best < 0 || m.Comparisons < row.Cells[best].Comparisons {
			best = i
		}
	}
	if best < 0 {
		return "", false
	}
	return r.Algorithms[best], true
}
