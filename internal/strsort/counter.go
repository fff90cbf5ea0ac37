package strsort

// Counter accumulates character-level comparisons for one sort invocation.
// It is owned by a single run and is not safe for concurrent use.
type Counter uint64

// Inc records one comparison.
func (c *Counter) Inc() { *c++ }

// Add records n comparisons.
func (c *Counter) Add(n uint64) { *c += Counter(n) }

// Value returns the number of comparisons recorded so far.
func (c *Counter) Value() uint64 { return uint64(*c) }

// Reset zeroes the counter.
func (c *Counter) Reset() { *c = 0 }

// endOfString is the character value reported past the last byte of a key.
// It sorts below every real byte.
const endOfString = -1

// charAt returns the byte of s at depth d, or endOfString when s is too short.
func charAt(s string, d int) int {
	if d < len(s) {
		return int(s[d])
	}
	return endOfString
}

// Compare orders a and b byte by byte from index 0. Every position where both
// strings have a byte costs one comparison; when one string runs out, one more
// comparison decides by length, shorter first.
func Compare(a, b string, c *Counter) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		c.Inc()
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	c.Inc()
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Less reports whether a sorts strictly before b.
func Less(a, b string, c *Counter) bool {
	return Compare(a, b, c) < 0
}

// IsSorted reports whether keys are in ascending order. It does not count.
func IsSorted(keys []string) bool {
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			return false
		}
	}
	return true
}
