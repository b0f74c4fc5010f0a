// Package hwy is the vector backend of crmath.
//
// It offers a portable vector handle, Vec, whose lanes are processed
// with the widest SIMD instructions the CPU supports, and the lane-wise
// square roots the dispatcher uses on its vector path. On amd64 built
// with GOEXPERIMENT=simd the bulk kernels run on AVX2 or AVX-512 through
// simd/archsimd; elsewhere, or when HWY_NO_SIMD is set, lanes are
// processed by portable Go code.
//
// Every operation here rounds to nearest, ties to even, regardless of the
// rounding mode crmath is asked to honor. Callers select this package only
// for the default rounding mode.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-crmath/hwy"
//
//	v := hwy.Load(data)
//	r := hwy.Sqrt(v)
//	hwy.Store(r, output)
package hwy

import "github.com/ajroetker/go-crmath/fp"

// Floats is a constraint for the native floating-point types.
type Floats interface {
	~float32 | ~float64
}

// Halfs is a constraint for the 16-bit floating-point storage types.
type Halfs interface {
	Float16 | BFloat16
}

// Float16 is IEEE-754 binary16 storage.
type Float16 = fp.Float16

// BFloat16 is bfloat16 storage.
type BFloat16 = fp.BFloat16

// Lanes is a constraint for all types that can be stored in vector lanes.
type Lanes interface {
	Floats | Halfs
}

// Vec is a portable vector handle.
// In base (scalar) mode, it wraps a slice.
//
// Vec instances should not be created directly; use Load, Set, or Zero instead.
type Vec[T Lanes] struct {
	data []T
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return len(v.data)
}

// Data returns the underlying slice representation of the vector.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	return v.data
}

// Store writes the vector's data to a slice.
// This is the method form of the hwy.Store function.
func (v Vec[T]) Store(dst []T) {
	Store(v, dst)
}
