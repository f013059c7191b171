// Package qsort provides the sorting engine of the qsort benchmark: an
// iterative quicksort over []int32 that keeps its pending partitions on a
// small, bounded work stack instead of the call stack.
//
// # Algorithm
//
// The sorter follows the classic "push the larger half, iterate the smaller"
// scheme:
//   - Median-of-three pivot selection, which also places sentinels at both
//     ends of the range so the partition scans need no bounds checks
//   - Hoare-style scan-and-swap partitioning
//   - An insertion pass for ranges shorter than InsertionThreshold
//   - A work stack of fixed capacity (NStack boundaries), checked on every push
//
// Because only the larger half of each split is deferred, the number of
// pending ranges never exceeds log2(n). A push onto a full stack returns
// ErrStackOverflow and leaves the data as a permutation of the input.
//
// # Example Usage
//
//	import "github.com/ajroetker/qsort-bench/qsort"
//
//	func ProcessData(data []int32) error {
//	    if err := qsort.Sort(data); err != nil { // In-place ascending sort
//	        return err
//	    }
//	    return qsort.CheckSort(data)
//	}
//
// # Indexing
//
// Ranges are 0-based and inclusive on both ends: a range {lo, hi} covers
// data[lo] through data[hi], and holds hi-lo+1 elements.
package qsort
