package qsort

import (
	"errors"
	"strings"
	"testing"
)

// TestIsSorted tests the IsSorted function
func TestIsSorted(t *testing.T) {
	tests := []struct {
		name string
		data []int32
		want bool
	}{
		{"nil", nil, true},
		{"empty", []int32{}, true},
		{"single", []int32{1}, true},
		{"sorted", []int32{1, 2, 3, 4, 5}, true},
		{"unsorted", []int32{1, 3, 2, 4, 5}, false},
		{"reverse", []int32{5, 4, 3, 2, 1}, false},
		{"equal", []int32{3, 3, 3, 3}, true},
		{"last_pair", []int32{1, 2, 3, 5, 4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSorted(tt.data); got != tt.want {
				t.Errorf("IsSorted(%v) = %v, want %v", tt.data, got, tt.want)
			}
			err := CheckSort(tt.data)
			if tt.want && err != nil {
				t.Errorf("CheckSort(%v) = %v, want nil", tt.data, err)
			}
			if !tt.want && !errors.Is(err, ErrNotSorted) {
				t.Errorf("CheckSort(%v) = %v, want ErrNotSorted", tt.data, err)
			}
		})
	}
}

func TestCheckSortReportsIndex(t *testing.T) {
	err := CheckSort([]int32{1, 2, 9, 4})
	if err == nil || !strings.Contains(err.Error(), "data[2]=9 > data[3]=4") {
		t.Errorf("CheckSort error = %v, want it to name index 2", err)
	}
}
