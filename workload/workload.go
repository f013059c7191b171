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

// Package workload builds the benchmark's input arrays. The same size and
// seed always produce the same array.
package workload

import (
	"math/rand"
	"unsafe"
)

// ElementSize is the size in bytes of one benchmark element.
const ElementSize = int(unsafe.Sizeof(int32(0)))

// Len returns the number of elements that fit in size bytes. A trailing
// partial element is dropped.
func Len(size uint64) int {
	return int(size / uint64(ElementSize))
}

// Generate allocates Len(size) elements and fills them from seed.
func Generate(size uint64, seed int64) []int32 {
	data := make([]int32, Len(size))
	Fill(data, seed)
	return data
}

// Fill overwrites data with non-negative 31-bit pseudo-random values drawn
// from a source seeded with seed.
func Fill(data []int32, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := range data {
		data[i] = rng.Int31()
	}
}
