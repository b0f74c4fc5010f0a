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

package hwy

import "math"

// This file provides pure Go (scalar) implementations of the vector
// operations. On amd64 with GOEXPERIMENT=simd the bulk and single-lane
// square roots are replaced at init by archsimd kernels (sqrt_amd64_simd.go).
// The scalar implementations serve as the fallback and are also used when
// HWY_NO_SIMD is set.

// Load creates a vector by loading data from a slice.
func Load[T Lanes](src []T) Vec[T] {
	n := min(len(src), MaxLanes[T]())
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), len(v.data))
	copy(dst[:n], v.data[:n])
}

// Set creates a vector with all lanes set to the same value.
func Set[T Lanes](value T) Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	n := MaxLanes[T]()
	data := make([]T, n)
	return Vec[T]{data: data}
}

// GetLane returns the value of lane i, or zero if i is out of range.
func GetLane[T Lanes](v Vec[T], i int) T {
	if i < 0 || i >= len(v.data) {
		var zero T
		return zero
	}
	return v.data[i]
}

// Sqrt computes square root, rounded to nearest even.
//
// float32 lanes are computed in float64 and narrowed; half-precision lanes
// in float32. The wider format carries more than twice the precision plus
// two bits, so the double rounding is exact.
func Sqrt[T Lanes](v Vec[T]) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = sqrtScalar(x)
	}
	return Vec[T]{data: result}
}

// sqrtScalar is the per-lane kernel of Sqrt.
func sqrtScalar[T Lanes](x T) T {
	switch v := any(x).(type) {
	case Float16:
		return any(Float16FromFloat32(sqrt32(v.Float32()))).(T)
	case BFloat16:
		return any(BFloat16FromFloat32(sqrt32(v.Float32()))).(T)
	case float32:
		return any(sqrt32(v)).(T)
	case float64:
		return any(math.Sqrt(v)).(T)
	}
	return x
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

// IsNaN reports whether any lane of v is NaN.
func IsNaN[T Lanes](v Vec[T]) bool {
	for _, x := range v.data {
		switch x := any(x).(type) {
		case Float16:
			if isNaN32(x.Float32()) {
				return true
			}
		case BFloat16:
			if isNaN32(x.Float32()) {
				return true
			}
		case float32:
			if isNaN32(x) {
				return true
			}
		case float64:
			if math.IsNaN(x) {
				return true
			}
		}
	}
	return false
}

func isNaN32(x float32) bool {
	return math.IsNaN(float64(x))
}
