//go:build amd64 && goexperiment.simd

package hwy

import (
	"simd/archsimd"
)

// This file provides the AVX-512 square root kernels.

// Sqrt_AVX512_F32x16 computes sqrt(x) for a single Float32x16 vector.
func Sqrt_AVX512_F32x16(x archsimd.Float32x16) archsimd.Float32x16 {
	return x.Sqrt()
}

// Sqrt_AVX512_F64x8 computes sqrt(x) for a single Float64x8 vector.
func Sqrt_AVX512_F64x8(x archsimd.Float64x8) archsimd.Float64x8 {
	return x.Sqrt()
}

func sqrtSliceAVX512F32(dst, src []float32) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+16 <= n; i += 16 {
		Sqrt_AVX512_F32x16(archsimd.LoadFloat32x16Slice(src[i:])).StoreSlice(dst[i:])
	}
	if i < n {
		sqrtSliceAVX2F32(dst[i:n], src[i:n])
	}
}

func sqrtSliceAVX512F64(dst, src []float64) {
	n := min(len(dst), len(src))
	i := 0
	for ; i+8 <= n; i += 8 {
		Sqrt_AVX512_F64x8(archsimd.LoadFloat64x8Slice(src[i:])).StoreSlice(dst[i:])
	}
	if i < n {
		sqrtSliceAVX2F64(dst[i:n], src[i:n])
	}
}
