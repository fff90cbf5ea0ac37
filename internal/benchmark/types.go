package benchmark

import "time"

// Measurement is the outcome of one timed sort.
type Measurement struct {
	Elapsed     time.Duration `json:"elapsed_ns"`
	Comparisons uint64        `json:"comparisons"`
}

// ElapsedMS returns the elapsed time truncated to whole milliseconds.
func (m Measurement) ElapsedMS() int64 {
	return m.Elapsed.Milliseconds()
}

// Row holds the measurements for one prefix length, one cell per algorithm
// in report order.
type Row struct {
	N     int           `json:"n"`
	Cells []Measurement `json:"cells"`
}

// Dataset is a named input collection. Keys must not be modified once the
// dataset is handed to a Runner.
type Dataset struct {
	Name  string
	Shape string
	Keys  []string
}

// Report represents all rows measured for one dataset by one battery.
type Report struct {
	ID              string    `json:"id"`
	Dataset         string    `json:"dataset"`
	Shape           string    `json:"shape,omitempty"`
	Algorithms      []string  `json:"algorithms"`
	MaxN            int       `json:"max_n"`
	Step            int       `json:"step"`
	HybridThreshold int       `json:"hybrid_threshold,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	Rows            []Row     `json:"rows"`
}

// Index returns the column of algorithm, or -1.
func (r *Report) Index(algorithm string) int {
	for i, name := range r.Algorithms {
		if name == algorithm {
			return i
		}
	}
	return -1
}

// Last returns the row with the largest n.
func (r *Report) Last() (Row, bool) {
	if len(r.Rows) == 0 {
		return Row{}, false
	}
	return r.Rows[len(r.Rows)-1], true
}

// Series returns the prefix lengths and the measurements of one algorithm.
func (r *Report) Series(algorithm string) ([]int, []Measurement) {
	col := r.Index(algorithm)
	if col < 0 {
		return nil, nil
	}
	ns := make([]int, 0, len(r.Rows))
	ms := make([]Measurement, 0, len(r.Rows))
	for _, row := range r.Rows {
		if col < len(row.Cells) {
			ns = append(ns, row.N)
			ms = append(ms, row.Cells[col])
		}
	}
	return ns, ms
}
