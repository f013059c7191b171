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

// Package cycles reads the platform's cycle (or tick) counter for timing
// benchmark runs.
//
// The counter is selected at init from the architecture:
//   - amd64: RDTSC
//   - arm64: the virtual count register CNTVCT_EL0
//   - riscv64: RDTIME
//
// On any other platform, or when QSORT_NO_CYCLES is set, Now always returns 0.
package cycles

import (
	"os"
	"strconv"
)

// Source identifies the hardware counter behind Now.
type Source int

const (
	// SourceNone indicates no counter; Now returns 0.
	SourceNone Source = iota

	// SourceTSC indicates the x86 time-stamp counter.
	SourceTSC

	// SourceCNTVCT indicates the ARMv8 virtual count register.
	SourceCNTVCT

	// SourceRDTIME indicates the RISC-V time CSR.
	SourceRDTIME
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceNone:
		return "none"
	case SourceTSC:
		return "rdtsc"
	case SourceCNTVCT:
		return "cntvct"
	case SourceRDTIME:
		return "rdtime"
	default:
		return "unknown"
	}
}

// currentSource is set by init() in source_*.go files.
var currentSource Source

// CurrentSource returns the counter in use.
func CurrentSource() Source {
	return currentSource
}

// Available reports whether Now reads a real counter.
func Available() bool {
	return currentSource != SourceNone
}

// Now returns the current counter value, or 0 without a counter.
func Now() uint64 {
	if currentSource == SourceNone {
		return 0
	}
	return readCounter()
}

// Since returns the counter delta from start, or 0 without a counter.
func Since(start uint64) uint64 {
	if currentSource == SourceNone {
		return 0
	}
	return readCounter() - start
}

// NoCyclesEnv checks if the QSORT_NO_CYCLES environment variable is set.
// When set, Now returns 0 regardless of the platform.
func NoCyclesEnv() bool {
	val := os.Getenv("QSORT_NO_CYCLES")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
