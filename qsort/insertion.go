// Copyright 2025 qsort-bench Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package qsort

import "fmt"

// Finisher selects the routine used for ranges shorter than InsertionThreshold.
type Finisher int

const (
	// FinisherInsertion finishes small ranges with InsertionSort.
	FinisherInsertion Finisher = iota

	// FinisherSelection finishes small ranges with SelectionSort.
	FinisherSelection
)

// String returns the flag-friendly name of the finisher.
func (f Finisher) String() string {
	switch f {
	case FinisherInsertion:
		return "insertion"
	case FinisherSelection:
		return "selection"
	default:
		return "unknown"
	}
}

// ParseFinisher is the inverse of Finisher.String.
func ParseFinisher(s string) (Finisher, error) {
	switch s {
	case "insertion":
		return FinisherInsertion, nil
	case "selection":
		return FinisherSelection, nil
	}
	return 0, fmt.Errorf("qsort: unknown finisher %q (want insertion or selection)", s)
}

func (f Finisher) sortFunc() func([]int32) {
	if f == FinisherSelection {
		return SelectionSort
	}
	return InsertionSort
}

// InsertionSort sorts data in place by shifting each element left past all
// strictly greater predecessors. Equal elements keep their order.
func InsertionSort(data []int32) {
	for i := 1; i < len(data); i++ {
		value := data[i]
		j := i
		for j > 0 && data[j-1] > value {
			data[j] = data[j-1]
			j--
		}
		data[j] = value
	}
}

// SelectionSort sorts data in place with pairwise compare-and-swap: after
// round i, data[i] holds the minimum of data[i:].
func SelectionSort(data []int32) {
	for i := 0; i < len(data)-1; i++ {
		for j := i + 1; j < len(data); j++ {
			if data[i] > data[j] {
				data[i], data[j] = data[j], data[i]
			}
		}
	}
}
