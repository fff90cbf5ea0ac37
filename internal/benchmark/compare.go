package benchmark

import "fmt"

// Comparison holds the change of one algorithm between two reports, taken at
// the largest prefix length both reports measured.
type Comparison struct {
	Algorithm       string
	N               int
	ComparisonsDiff float64 // Percentage change
	ElapsedDiff     float64 // Percentage change
	Prev            Measurement
	Curr            Measurement
}

// Compare returns a comparison for every algorithm present in both reports,
// in the order of curr. It returns nil when the reports share no prefix length.
func Compare(prev, curr Report) []Comparison {
	prevRows := make(map[int]Row, len(prev.Rows))
	for _, row := range prev.Rows {
		prevRows[row.N] = row
	}

	var pr, cr Row
	found := false
	for i := len(curr.Rows) - 1; i >= 0; i-- {
		if row, ok := prevRows[curr.Rows[i].N]; ok {
			pr, cr, found = row, curr.Rows[i], true
			break
		}
	}
	if !found {
		return nil
	}

	var comparisons []Comparison
	for ci, name := range curr.Algorithms {
		pi := prev.Index(name)
		if pi < 0 || pi >= len(pr.Cells) || ci >= len(cr.Cells) {
			continue
		}
		comp := Comparison{
			Algorithm: name,
			N:         cr.N,
			Prev:      pr.Cells[pi],
			Curr:      cr.Cells[ci],
		}
		if p := comp.Prev.Comparisons; p > 0 {
			comp.ComparisonsDiff = (float64(comp.Curr.Comparisons) - float64(p)) / float64(p) * 100
		}
		if p := comp.Prev.Elapsed; p > 0 {
			comp.ElapsedDiff = float64(comp.Curr.Elapsed-p) / float64(p) * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s@%d: %+.2f%% cmps, %+.2f%% time", c.Algorithm, c.N, c.ComparisonsDiff, c.ElapsedDiff)
}
