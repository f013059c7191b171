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

package cycles

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// feature pairs a CPU flag with the name it is reported under.
type feature struct {
	name string
	has  bool
}

// HostFeatures returns the names of notable CPU features of the host, so that
// benchmark reports from different machines can be told apart. The list is
// empty for architectures x/sys/cpu knows nothing about.
func HostFeatures() []string {
	var fs []feature
	switch runtime.GOARCH {
	case "amd64", "386":
		fs = []feature{
			{"sse4.2", cpu.X86.HasSSE42},
			{"popcnt", cpu.X86.HasPOPCNT},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"bmi2", cpu.X86.HasBMI2},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		fs = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"atomics", cpu.ARM64.HasATOMICS},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	case "riscv64":
		fs = []feature{
			{"c", cpu.RISCV64.HasC},
			{"v", cpu.RISCV64.HasV},
			{"zba", cpu.RISCV64.HasZba},
			{"zbb", cpu.RISCV64.HasZbb},
			{"fast-misaligned", cpu.RISCV64.HasFastMisaligned},
		}
	}

	var names []string
	for _, f := range fs {
		if f.has {
			names = append(names, f.name)
		}
	}
	return names
}
