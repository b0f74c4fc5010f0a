//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
)

// This file provides the AVX2 square root kernels. VSQRTPS and VSQRTPD are
// correctly rounded under the default MXCSR rounding mode, which Go never
// changes.

// Sqrt_AVX2_F32x8 computes sqrt(x) for a single Float32x8 vector.
func Sqrt_AVX2_F32x8(x archsimd.Float32x8) archsimd.Float32x8 {
	return x.Sqrt()
}

// Sqrt_AVX2_F64x4 computes sqrt(x) for a single Float64x4 vector.
func Sqrt_AVX2_F64x4(x archsimd.Float64x4) archsimd.Float64x4 {
	return x.Sqrt()
}

func sqrtSliceAVX2F32(dst, src []float32) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+8 <= n; i += 8 {
		Sqrt_AVX2_F32x8(archsimd.LoadFloat32x8Slice(src[i:])).StoreSlice(dst[i:])
	}
	if i < n {
		sqrtSlice(dst[i:n], src[i:n])
	}
}

func sqrtSliceAVX2F64(dst, src []float64) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+4 <= n; i += 4 {
		Sqrt_AVX2_F64x4(archsimd.LoadFloat64x4Slice(src[i:])).StoreSlice(dst[i:])
	}
	if i < n {
		sqrtSlice(dst[i:n], src[i:n])
	}
}

func sqrtLaneAVX2F32(x float32) float32 {
	var out [8]float32
	Sqrt_AVX2_F32x8(archsimd.BroadcastFloat32x8(x)).StoreSlice(out[:])
	return out[0]
}

func sqrtLaneAVX2F64(x float64) float64 {
	var out [4]float64
	Sqrt_AVX2_F64x4(archsimd.BroadcastFloat64x4(x)).StoreSlice(out[:])
	return out[0]
}
