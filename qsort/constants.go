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

import "modernc.org/mathutil"

// Thresholds and capacities for the sorter.
const (
	// InsertionThreshold: ranges shorter than this are finished by the
	// insertion pass instead of being partitioned.
	InsertionThreshold = 10

	// NStack is the default work stack capacity, counted in range boundaries.
	// Each pending range takes two. It must be at least 2*ceil(log2(n)).
	NStack = 50
)

// StackDepth returns the work stack capacity, in boundaries, that is always
// enough for sorting n elements: 2*ceil(log2(n)).
func StackDepth(n int) int {
	if n <= 1 {
		return 0
	}
	return 2 * mathutil.BitLen(n-1)
}
