package crmath

import (
	"fmt"

	"github.com/ajroetker/go-crmath/dispatch"
	"github.com/ajroetker/go-crmath/fenv"
	"github.com/ajroetker/go-crmath/fp"
	"github.com/ajroetker/go-crmath/hwy"
	"github.com/ajroetker/go-crmath/internal/gen"
	"github.com/ajroetker/go-crmath/workerpool"
)

// bulkBlock bounds how many special operands are recorded at a time.
const bulkBlock = 256

// ParallelBatch is the batch size ParallelSqrt hands to each worker.
const ParallelBatch = 4096

type fixup[T Float] struct {
	i int
	r T
}

// SqrtInto stores Sqrt(src[i]) into dst[i] under the rounding mode of env
// (the process-wide mode when env is nil). dst and src may be the same
// slice. It panics if dst is shorter than src.
func SqrtInto[T Float](dst, src []T, env fenv.Env) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("crmath: SqrtInto dst length %d < src length %d", len(dst), len(src)))
	}
	ctx := dispatch.Runtime(env)
	if dispatch.Select(dispatch.PlanFor[T](), ctx) != dispatch.Vector {
		for i, x := range src {
			dst[i] = dispatch.Sqrt(x, ctx)
		}
		return
	}

	fix := make([]fixup[T], 0, 8)
	for off := 0; off < len(src); off += bulkBlock {
		end := min(off+bulkBlock, len(src))
		s, d := src[off:end], dst[off:end]

		fix = fix[:0]
		for i, x := range s {
			if r, ok := gen.SqrtSpecial(x); ok {
				fix = append(fix, fixup[T]{i: i, r: r})
			}
		}
		vectorSqrtSlice(d, s)
		for _, f := range fix {
			d[f.i] = f.r
		}
	}
}

func vectorSqrtSlice[T Float](dst, src []T) {
	switch s := any(src).(type) {
	case []float32:
		hwy.SqrtFloat32(any(dst).([]float32), s)
	case []float64:
		hwy.SqrtFloat64(any(dst).([]float64), s)
	case []fp.Float16:
		hwy.SqrtHalf(any(dst).([]fp.Float16), s)
	case []fp.BFloat16:
		hwy.SqrtHalf(any(dst).([]fp.BFloat16), s)
	default:
		ctx := dispatch.Context{Mode: fenv.ToNearest}
		for i, x := range src {
			dst[i] = dispatch.Sqrt(x, ctx)
		}
	}
}

// ParallelSqrt is SqrtInto spread over the workers of pool. The rounding
// mode is read once, before any work starts. A nil pool runs inline.
func ParallelSqrt[T Float](pool *workerpool.Pool, dst, src []T, env fenv.Env) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("crmath: ParallelSqrt dst length %d < src length %d", len(dst), len(src)))
	}
	if env == nil {
		env = fenv.Process()
	}
	fixed := fenv.Fixed(env.RoundingMode())
	pool.ParallelForBatched(len(src), ParallelBatch, func(start, end int) {
		SqrtInto(dst[start:end], src[start:end], fixed)
	})
}
