// Copyright 2025 go-highway Authors
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

//go:build amd64 && !goexperiment.simd

package hwy

import "golang.org/x/sys/cpu"

// Without GOEXPERIMENT=simd there is no archsimd, so vectors are processed
// as scalar lanes. Build with GOEXPERIMENT=simd for AVX2/AVX-512 kernels.

var (
	// hasFMA indicates fused multiply-add support (Haswell+).
	hasFMA bool

	// hasF16C indicates F16C support: float16 <-> float32 conversions (Haswell+)
	hasF16C bool
)

func init() {
	setScalarMode()
	if NoSimdEnv() {
		return
	}
	detectCPUFeatures()
}

func detectCPUFeatures() {
	hasFMA = cpu.X86.HasFMA
	// F16C is present on all FMA-capable CPUs.
	if cpu.X86.HasAVX {
		hasF16C = cpu.X86.HasFMA
	}
}

// HasFMA returns true if the CPU executes fused multiply-add in hardware.
func HasFMA() bool {
	return hasFMA
}

// HasF16C returns true if the CPU supports F16C instructions.
func HasF16C() bool {
	return hasF16C
}
