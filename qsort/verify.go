package qsort

import "fmt"

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int32) bool {
	for i := 0; i < len(data)-1; i++ {
		if data[i] > data[i+1] {
			return false
		}
	}
	return true
}

// CheckSort is IsSorted with a diagnostic: it returns ErrNotSorted wrapped
// with the first index i where data[i] > data[i+1].
func CheckSort(data []int32) error {
	for i := 0; i < len(data)-1; i++ {
		if data[i] > data[i+1] {
			return fmt.Errorf("%w: data[%d]=%d > data[%d]=%d", ErrNotSorted, i, data[i], i+1, data[i+1])
		}
	}
	return nil
}
