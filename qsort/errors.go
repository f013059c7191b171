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

// Error is the error type of package qsort.
type Error string

func (e Error) Error() string {
	return string(e)
}

// ErrStackOverflow is returned when a partition step would push more pending
// ranges than the work stack can hold. The input is too large (or too
// adversarial) for the configured capacity.
const ErrStackOverflow = Error("qsort: work stack capacity exceeded")

// ErrNotSorted is returned by CheckSort for data that is not in
// non-decreasing order.
const ErrNotSorted = Error("qsort: data is not sorted")

// ErrInvalidCapacity is returned by New for a stack capacity that cannot hold
// a single range.
const ErrInvalidCapacity = Error("qsort: invalid work stack capacity")
