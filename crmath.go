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

// Package crmath provides correctly-rounded floating-point operations.
//
// Results are the exact mathematical value rounded once under the active
// rounding mode, for every supported format: float32, float64, and the
// binary16, bfloat16, x87 80-bit and binary128 storage types of package
// fp. They do not depend on the CPU or on how the program was built.
//
// The rounding mode comes from an fenv.Env. Sqrt reads the process-wide
// mode (see fenv.SetRoundingMode) on every call; SqrtIn takes an explicit
// Env; ConstSqrt evaluates in constant context, for tables that must be
// host independent.
//
//	crmath.Sqrt(2.0)                                 // 1.4142135623730951
//	crmath.SqrtIn(2.0, fenv.Fixed(fenv.Downward))    // 1.414213562373095
//	crmath.ConstSqrt(fp.Float80FromFloat64(2), fenv.ToNearest)
package crmath

import (
	"github.com/ajroetker/go-crmath/dispatch"
	"github.com/ajroetker/go-crmath/fenv"
	"github.com/ajroetker/go-crmath/fp"
)

// Float is the set of types crmath operates on.
type Float = fp.Float

// Native is the set of Go's built-in floating-point types.
type Native interface {
	float32 | float64
}

// Sqrt returns the square root of x, correctly rounded under the
// process-wide rounding mode.
//
// Special cases are:
//
//	Sqrt(+Inf) = +Inf
//	Sqrt(±0) = ±0
//	Sqrt(x < 0) = NaN
//	Sqrt(NaN) = NaN
func Sqrt[T Float](x T) T {
	return dispatch.Sqrt(x, dispatch.Runtime(fenv.Process()))
}

// SqrtIn is Sqrt under the rounding mode of env.
func SqrtIn[T Float](x T, env fenv.Env) T {
	return dispatch.Sqrt(x, dispatch.Runtime(env))
}

// ConstSqrt is Sqrt evaluated in constant context under mode.
func ConstSqrt[T Float](x T, mode fenv.RoundingMode) T {
	return dispatch.Sqrt(x, dispatch.ConstEval(mode))
}

// Sqrt32 is Sqrt for float32.
func Sqrt32(x float32) float32 {
	return Sqrt(x)
}

// Sqrt64 is Sqrt for float64.
func Sqrt64(x float64) float64 {
	return Sqrt(x)
}

// SqrtInt returns the square root of n as a float64. n is first rounded
// to float64 under the same mode.
func SqrtInt(n int64) float64 {
	mode := fenv.CurrentRoundingMode()
	x := fp.FromIntRound[float64](n, mode).Value()
	return dispatch.Sqrt(x, dispatch.Context{Mode: mode})
}
