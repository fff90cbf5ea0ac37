// Package strsort implements the string sorting battery measured by sortbench.
//
// Every algorithm sorts a []string in place into ascending byte-wise order,
// where a string that is a prefix of another sorts first. Each algorithm
// reports its work through a *Counter so that character-level cost can be
// compared across very different strategies:
//
//   - Quick3: three-way string quicksort, partitioning on one character at a time
//   - MergeSort: top-down merge sort over the whole-string comparator (stable)
//   - RadixSort: MSD radix sort with a dedicated end-of-string bucket
//   - Hybrid: MSD radix sort that hands small ranges to Quick3
//   - StdStable, StdQuick: the standard library sorts driven by the same comparator
//
// The fixed order in which the battery is reported is given by NewBattery.
package strsort
