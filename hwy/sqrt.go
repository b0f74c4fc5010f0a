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

// SqrtFloat32 stores the square roots of src into dst, rounded to
// nearest even, for the first min(len(dst), len(src)) elements.
// It is replaced at init by the widest kernel the CPU supports.
var SqrtFloat32 func(dst, src []float32) = sqrtSlice[float32]

// SqrtFloat64 is the float64 counterpart of SqrtFloat32.
var SqrtFloat64 func(dst, src []float64) = sqrtSlice[float64]

var (
	sqrtLaneF32 = sqrtLane[float32]
	sqrtLaneF64 = sqrtLane[float64]
)

func sqrtSlice[T Floats](dst, src []T) {
	n := min(len(dst), len(src))
	ProcessWithTail[T](n,
		func(offset int) {
			Store(Sqrt(Load(src[offset:])), dst[offset:])
		},
		func(offset, count int) {
			Store(Sqrt(Load(src[offset:offset+count])), dst[offset:offset+count])
		},
	)
}

// sqrtLane computes one lane without building a Vec, so single-value
// calls do not allocate.
func sqrtLane[T Lanes](x T) T {
	return sqrtScalar(x)
}

// SqrtLane computes the square root of x in a vector register and returns
// lane 0, rounded to nearest even. Half-precision values are promoted to
// float32 lanes.
func SqrtLane[T Lanes](x T) T {
	switch v := any(x).(type) {
	case float32:
		return any(sqrtLaneF32(v)).(T)
	case float64:
		return any(sqrtLaneF64(v)).(T)
	case Float16:
		return any(Float16FromFloat32(sqrtLaneF32(v.Float32()))).(T)
	case BFloat16:
		return any(BFloat16FromFloat32(sqrtLaneF32(v.Float32()))).(T)
	}
	return sqrtLane(x)
}

// SqrtHalf computes square roots of half-precision values in bulk by
// widening each block to float32 and running SqrtFloat32.
func SqrtHalf[T Halfs](dst, src []T) {
	n := min(len(dst), len(src))
	var buf [64]float32
	for off := 0; off < n; off += len(buf) {
		m := min(len(buf), n-off)
		for i := range m {
			buf[i] = widenHalf(src[off+i])
		}
		SqrtFloat32(buf[:m], buf[:m])
		for i := range m {
			dst[off+i] = narrowHalf[T](buf[i])
		}
	}
}

func widenHalf[T Halfs](x T) float32 {
	switch v := any(x).(type) {
	case Float16:
		return v.Float32()
	case BFloat16:
		return v.Float32()
	}
	return 0
}

func narrowHalf[T Halfs](f float32) T {
	var zero T
	switch any(zero).(type) {
	case Float16:
		return any(Float16FromFloat32(f)).(T)
	default:
		return any(BFloat16FromFloat32(f)).(T)
	}
}
