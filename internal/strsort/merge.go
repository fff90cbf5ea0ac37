package strsort

// MergeSort sorts keys with a top-down merge sort using Compare. It is stable.
func MergeSort(keys []string, c *Counter) {
	if len(keys) <= 1 {
		return
	}
	buf := make([]string, len(keys))
	mergeSort(keys, buf, c)
}

// mergeSort sorts keys using buf, which must be at least as long, as scratch.
func mergeSort(keys, buf []string, c *Counter) {
	if len(keys) <= 1 {
		return
	}
	m := len(keys) / 2
	mergeSort(keys[:m], buf[:m], c)
	mergeSort(keys[m:], buf[m:], c)

	i, j, k := 0, m, 0
	for i < m && j < len(keys) {
		// Ties take from the left run.
		if Less(keys[j], keys[i], c) {
			buf[k] = keys[j]
			j++
		} else {
			buf[k] = keys[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], keys[i:m])
	copy(buf[k:], keys[j:])
	copy(keys, buf[:len(keys)])
}
