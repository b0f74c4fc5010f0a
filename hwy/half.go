package hwy

import "github.com/ajroetker/go-crmath/fp"

// Float16FromFloat32 narrows f to binary16, rounding to nearest even.
func Float16FromFloat32(f float32) Float16 {
	return fp.Float16FromFloat32(f)
}

// BFloat16FromFloat32 narrows f to bfloat16, rounding to nearest even.
func BFloat16FromFloat32(f float32) BFloat16 {
	return fp.BFloat16FromFloat32(f)
}
