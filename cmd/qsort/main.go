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

// Command qsort sorts a pseudo-random array of int32 values and reports how
// many cycles the sort took.
//
// Usage:
//
//	qsort SIZE                  # sort SIZE/4 elements, seed 0
//	qsort --runs 5 4000000      # repeat and report min/mean/max
//	qsort --stack 20 --quiet 400000
//
// SIZE is the size of the array in bytes. The exit status is 0 when the
// result is sorted, and 1 on a usage error, a work stack overflow or a
// verification failure.
//
// Set QSORT_NO_CYCLES=1 to report 0 cycles on every platform.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
