package dispatch

import (
	"math"

	"github.com/ajroetker/go-crmath/fenv"
)

// builtinSqrt64 rounds the hardware square root, which is correctly
// rounded to nearest, to mode. The residual r*r - x is exact under FMA,
// so its sign says which side of the true root r lies on.
func builtinSqrt64(x float64, mode fenv.RoundingMode) float64 {
	scaled := x < 0x1p-900
	if scaled {
		// Keep r*r - x clear of the subnormal range.
		x *= 0x1p108
	}
	r := math.Sqrt(x)
	if mode != fenv.ToNearest {
		resid := math.FMA(r, r, -x)
		switch {
		case mode == fenv.Upward && resid < 0:
			r = math.Nextafter(r, math.Inf(1))
		case mode != fenv.Upward && resid > 0:
			r = math.Nextafter(r, 0)
		}
	}
	if scaled {
		r *= 0x1p-54
	}
	return r
}

// builtinSqrt32 narrows the correctly rounded float64 root. Squaring a
// float32 is exact in float64, which decides directed rounding.
func builtinSqrt32(x float32, mode fenv.RoundingMode) float32 {
	r := float32(math.Sqrt(float64(x)))
	if mode == fenv.ToNearest {
		return r
	}
	wide := float64(r)
	resid := wide*wide - float64(x)
	switch {
	case mode == fenv.Upward && resid < 0:
		r = math.Nextafter32(r, float32(math.Inf(1)))
	case mode != fenv.Upward && resid > 0:
		r = math.Nextafter32(r, 0)
	}
	return r
}
