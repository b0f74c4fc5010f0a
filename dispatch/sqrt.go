package dispatch

import (
	"github.com/ajroetker/go-crmath/fenv"
	"github.com/ajroetker/go-crmath/fp"
	"github.com/ajroetker/go-crmath/hwy"
	"github.com/ajroetker/go-crmath/internal/gen"
)

// Sqrt returns the square root of x correctly rounded per ctx.
//
// Operands that need no arithmetic (zeros, infinities, NaNs, negatives)
// are answered before a strategy is chosen, so every strategy sees only
// positive finite values and all of them agree bit for bit.
func Sqrt[T fp.Float](x T, ctx Context) T {
	if r, ok := gen.SqrtSpecial(x); ok {
		return r
	}
	r, _ := sqrtVia(Select(PlanFor[T](), ctx), x, ctx.Mode)
	return r
}

// SqrtVia computes the square root of x with strategy s, ignoring the
// build plan. It reports false when s cannot serve T under mode, in which
// case the result is zero.
func SqrtVia[T fp.Float](s Strategy, x T, mode fenv.RoundingMode) (T, bool) {
	if r, ok := gen.SqrtSpecial(x); ok {
		return r, true
	}
	return sqrtVia(s, x, mode)
}

func sqrtVia[T fp.Float](s Strategy, x T, mode fenv.RoundingMode) (T, bool) {
	switch s {
	case Builtin:
		return builtinSqrt(x, mode)
	case Vector:
		if mode != fenv.ToNearest {
			var zero T
			return zero, false
		}
		return vectorSqrt(x)
	default:
		return gen.SqrtFinite(x, mode), true
	}
}

func builtinSqrt[T fp.Float](x T, mode fenv.RoundingMode) (T, bool) {
	switch v := any(x).(type) {
	case float32:
		return any(builtinSqrt32(v, mode)).(T), true
	case float64:
		return any(builtinSqrt64(v, mode)).(T), true
	}
	var zero T
	return zero, false
}

func vectorSqrt[T fp.Float](x T) (T, bool) {
	switch v := any(x).(type) {
	case float32:
		return any(hwy.SqrtLane(v)).(T), true
	case float64:
		return any(hwy.SqrtLane(v)).(T), true
	case fp.Float16:
		return any(hwy.SqrtLane(v)).(T), true
	case fp.BFloat16:
		return any(hwy.SqrtLane(v)).(T), true
	}
	var zero T
	return zero, false
}
