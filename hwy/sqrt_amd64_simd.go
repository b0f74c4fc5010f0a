//go:build amd64 && goexperiment.simd

package hwy

// installVectorKernels points the square root dispatch variables at the
// archsimd kernels for the detected level.
func installVectorKernels() {
	switch currentLevel {
	case DispatchAVX512:
		SqrtFloat32 = sqrtSliceAVX512F32
		SqrtFloat64 = sqrtSliceAVX512F64
		sqrtLaneF32 = sqrtLaneAVX2F32
		sqrtLaneF64 = sqrtLaneAVX2F64
	case DispatchAVX2:
		SqrtFloat32 = sqrtSliceAVX2F32
		SqrtFloat64 = sqrtSliceAVX2F64
		sqrtLaneF32 = sqrtLaneAVX2F32
		sqrtLaneF64 = sqrtLaneAVX2F64
	}
}
