package strsort

import "slices"

// StdStable sorts keys with the standard library's stable sort, counting
// through Compare.
func StdStable(keys []string, c *Counter) {
	slices.SortStableFunc(keys, func(a, b string) int {
		return Compare(a, b, c)
	})
}

// StdQuick sorts keys with the standard library's pattern-defeating
// quicksort, counting through Compare.
func StdQuick(keys []string, c *Counter) {
	slices.SortFunc(keys, func(a, b string) int {
		return Compare(a, b, c)
	})
}
