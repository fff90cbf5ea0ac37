package strsort

import "fmt"

// Algorithm sorts keys in place, recording its comparisons in c.
type Algorithm interface {
	Sort(keys []string, c *Counter)
}

// AlgorithmFunc adapts a plain function to Algorithm.
type AlgorithmFunc func(keys []string, c *Counter)

// Sort calls f(keys, c).
func (f AlgorithmFunc) Sort(keys []string, c *Counter) { f(keys, c) }

// Entry names an algorithm in a battery.
type Entry struct {
	Name      string
	Algorithm Algorithm
}

// Battery is an ordered list of algorithms. Reports keep their columns in
// battery order.
type Battery []Entry

// Names used for the standard battery entries.
const (
	NameQuick3    = "str_quick"
	NameMerge     = "str_merge"
	NameRadix     = "msd_radix"
	NameHybrid    = "msd_radix_quick"
	NameStdStable = "merge_default"
	NameStdQuick  = "quick_default"
)

// NewBattery returns the standard battery. threshold configures Hybrid.
func NewBattery(threshold int) Battery {
	return Battery{
		{Name: NameQuick3, Algorithm: AlgorithmFunc(Quick3)},
		{Name: NameMerge, Algorithm: AlgorithmFunc(MergeSort)},
		{Name: NameRadix, Algorithm: AlgorithmFunc(RadixSort)},
		{Name: NameHybrid, Algorithm: Hybrid{Threshold: threshold}},
		{Name: NameStdStable, Algorithm: AlgorithmFunc(StdStable)},
		{Name: NameStdQuick, Algorithm: AlgorithmFunc(StdQuick)},
	}
}

// Names returns the entry names in order.
func (b Battery) Names() []string {
	names := make([]string, len(b))
	for i, e := range b {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the algorithm registered under name.
func (b Battery) Lookup(name string) (Algorithm, bool) {
	for _, e := range b {
		if e.Name == name {
			return e.Algorithm, true
		}
	}
	return nil, false
}

// Select returns a battery holding only the named entries, in the order the
// names are given. An empty list selects everything.
func (b Battery) Select(names ...string) (Battery, error) {
	if len(names) == 0 {
		return b, nil
	}
	out := make(Battery, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("algorithm %q selected twice", name)
		}
		alg, ok := b.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown algorithm %q", name)
		}
		seen[name] = true
		out = append(out, Entry{Name: name, Algorithm: alg})
	}
	return out, nil
}
