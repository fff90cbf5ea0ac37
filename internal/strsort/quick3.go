package strsort

// Quick3 sorts keys with three-way string quicksort.
func Quick3(keys []string, c *Counter) {
	quick3(keys, 0, c)
}

// quick3 partitions keys on the character at depth d into less, equal and
// greater zones. Keys in the equal zone share their first d+1 characters, so
// that zone continues at d+1 unless the pivot was end-of-string.
func quick3(keys []string, d int, c *Counter) {
	if len(keys) <= 1 {
		return
	}
	pivot := charAt(keys[0], d)
	lt, gt := 0, len(keys)-1
	for i := 1; i <= gt; {
		t := charAt(keys[i], d)
		c.Inc()
		if t < pivot {
			keys[lt], keys[i] = keys[i], keys[lt]
			lt++
			i++
			continue
		}
		c.Inc()
		if t > pivot {
			keys[i], keys[gt] = keys[gt], keys[i]
			gt--
		} else {
			i++
		}
	}
	quick3(keys[:lt], d, c)
	if pivot != endOfString {
		quick3(keys[lt:gt+1], d+1, c)
	}
	quick3(keys[gt+1:], d, c)
}
