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

//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"

	"golang.org/x/sys/cpu"
)

var (
	// hasFMA indicates fused multiply-add support (Haswell+).
	hasFMA bool

	// hasF16C indicates F16C support: float16 <-> float32 conversions (Haswell+)
	// F16C is detected via CPUID leaf 1, ECX bit 29
	hasF16C bool
)

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
	installVectorKernels()
}

func detectCPUFeatures() {
	if archsimd.X86.AVX512() {
		currentLevel = DispatchAVX512
		currentWidth = 64
	} else if archsimd.X86.AVX2() {
		currentLevel = DispatchAVX2
		currentWidth = 32
	} else {
		// SSE2 is baseline for amd64
		currentLevel = DispatchSSE2
		currentWidth = 16
	}

	hasFMA = cpu.X86.HasFMA
	if cpu.X86.HasAVX {
		hasF16C = cpu.X86.HasFMA // F16C is typically present with FMA (Haswell+)
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
