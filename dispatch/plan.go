package dispatch

import (
	"github.com/ajroetker/go-crmath/fenv"
	"github.com/ajroetker/go-crmath/fp"
	"github.com/ajroetker/go-crmath/hwy"
	"github.com/ajroetker/go-crmath/internal/logger"
)

// Plan records which strategies a format may use in this build.
type Plan struct {
	Format *fp.Format

	// Builtin is set when the square root intrinsic is enabled
	// (build tag crmath_builtin) and covers the format.
	Builtin bool

	// Vector is set when the SIMD backend is compiled in (no noasm tag)
	// and has lanes for the format.
	Vector bool
}

// PlanFor returns the plan for T.
func PlanFor[T fp.Float]() Plan {
	return planFor(fp.FormatOf[T]())
}

func planFor(f *fp.Format) Plan {
	switch f {
	case fp.Binary32, fp.Binary64:
		return Plan{Format: f, Builtin: builtinEnabled, Vector: vectorEnabled}
	case fp.Binary16, fp.BFloat16Format:
		// Lanes are widened to float32.
		return Plan{Format: f, Vector: vectorEnabled}
	default:
		// No native vector lanes hold 80 or 128-bit values.
		return Plan{Format: f}
	}
}

// Plans returns the plan of every supported format.
func Plans() []Plan {
	plans := make([]Plan, len(fp.Formats))
	for i, f := range fp.Formats {
		plans[i] = planFor(f)
	}
	return plans
}

func init() {
	logPlans()
}

func logPlans() {
	for _, p := range Plans() {
		logger.Log.Debug("dispatch plan",
			"format", p.Format.Name,
			"builtin", p.Builtin,
			"vector", p.Vector,
			"simd", hwy.CurrentName(),
			"fma", hwy.HasFMA(),
			"f16c", hwy.HasF16C())
	}
}

// Select picks the strategy for one call:
//
//  1. Builtin, whenever the plan allows it.
//  2. Generic, for constant evaluation.
//  3. Generic, when the mode is not round-to-nearest.
//  4. Vector, when the plan allows it.
//  5. Generic otherwise.
func Select(p Plan, ctx Context) Strategy {
	switch {
	case p.Builtin:
		return Builtin
	case ctx.Constant:
		return Generic
	case ctx.Mode != fenv.ToNearest:
		return Generic
	case p.Vector:
		return Vector
	default:
		return Generic
	}
}
