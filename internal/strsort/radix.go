package strsort

// radix is the number of distinct byte values a key character can take.
const radix = 256

// RadixSort sorts keys with MSD radix sort. Keys that end at the current depth
// are collected in a bucket of their own ahead of every byte value and are
// never examined again.
func RadixSort(keys []string, c *Counter) {
	if len(keys) <= 1 {
		return
	}
	msd(keys, make([]string, len(keys)), 0, 0, c)
}

// msd sorts keys, all of which share their first d bytes, using aux as
// scratch space of the same length. Ranges shorter than cutoff are handed to
// quick3 at the same depth instead of being bucketed.
//
// Bucket 0 holds keys that end at depth d; bucket b+1 holds keys whose byte
// at depth d is b.
func msd(keys, aux []string, d, cutoff int, c *Counter) {
	if len(keys) <= 1 {
		return
	}
	if len(keys) < cutoff {
		quick3(keys, d, c)
		return
	}

	// tally, shifted by one so the prefix sum yields bucket starts
	var count [radix + 2]int
	for _, s := range keys {
		c.Inc()
		count[charAt(s, d)+2]++
	}

	for b := 1; b < len(count); b++ {
		count[b] += count[b-1]
	}

	// scatter; afterwards count[b] is the end of bucket b
	for _, s := range keys {
		b := charAt(s, d) + 1
		aux[count[b]] = s
		count[b]++
	}
	copy(keys, aux[:len(keys)])

	start := count[0]
	for b := 1; b <= radix; b++ {
		end := count[b]
		if end-start > 1 {
			msd(keys[start:end], aux[start:end], d+1, cutoff, c)
		}
		start = end
	}
}

// DefaultHybridThreshold is the range size below which Hybrid switches to
// three-way quicksort when no other threshold is configured.
const DefaultHybridThreshold = 74

// Hybrid is MSD radix sort that delegates every range smaller than Threshold
// to three-way quicksort seeded at the current depth. A Threshold of 1 or less
// never delegates.
type Hybrid struct {
	Threshold int
}

// Sort implements Algorithm.
func (h Hybrid) Sort(keys []string, c *Counter) {
	if len(keys) <= 1 {
		return
	}
	msd(keys, make([]string, len(keys)), 0, h.Threshold, c)
}
