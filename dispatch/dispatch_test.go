package dispatch

import (
	"bytes"
	"encoding/json"
	"math"
	"math/rand/v2"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-crmath/fenv"
	"github.com/ajroetker/go-crmath/fp"
	"github.com/ajroetker/go-crmath/hwy"
	"github.com/ajroetker/go-crmath/internal/gen"
	"github.com/ajroetker/go-crmath/internal/logger"
)

func TestSelect(t *testing.T) {
	f64 := fp.Binary64
	tests := []struct {
		name string
		plan Plan
		ctx  Context
		want Strategy
	}{
		{"builtin wins at runtime", Plan{f64, true, true}, Context{Mode: fenv.Upward}, Builtin},
		{"builtin wins when constant", Plan{f64, true, true}, ConstEval(fenv.ToNearest), Builtin},
		{"constant goes generic", Plan{f64, false, true}, ConstEval(fenv.ToNearest), Generic},
		{"directed goes generic", Plan{f64, false, true}, Context{Mode: fenv.Downward}, Generic},
		{"toward zero goes generic", Plan{f64, false, true}, Context{Mode: fenv.TowardZero}, Generic},
		{"nearest goes vector", Plan{f64, false, true}, Context{Mode: fenv.ToNearest}, Vector},
		{"no vector goes generic", Plan{fp.Binary128, false, false}, Context{Mode: fenv.ToNearest}, Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.plan, tt.ctx))
		})
	}
}

func TestPlans(t *testing.T) {
	plans := Plans()
	require.Len(t, plans, len(fp.Formats))
	for _, p := range plans {
		switch p.Format {
		case fp.X87Extended, fp.Binary128:
			assert.False(t, p.Builtin, p.Format.Name)
			assert.False(t, p.Vector, p.Format.Name)
		case fp.Binary16, fp.BFloat16Format:
			assert.False(t, p.Builtin, p.Format.Name)
			assert.Equal(t, vectorEnabled, p.Vector, p.Format.Name)
		default:
			assert.Equal(t, builtinEnabled, p.Builtin, p.Format.Name)
			assert.Equal(t, vectorEnabled, p.Vector, p.Format.Name)
		}
	}
	assert.Equal(t, fp.Binary64, PlanFor[float64]().Format)
	assert.Equal(t, fp.X87Extended, PlanFor[fp.Float80]().Format)
}

func TestLogPlans(t *testing.T) {
	defer logger.Setup(os.Getenv("CRMATH_LOG_LEVEL"), os.Getenv("CRMATH_LOG_FORMAT"))

	var buf bytes.Buffer
	logger.SetupWriter(&buf, "debug", "json")
	logPlans()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(fp.Formats))
	for i, line := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		assert.Equal(t, fp.Formats[i].Name, rec["format"])
		assert.Equal(t, hwy.CurrentName(), rec["simd"])
		assert.Equal(t, hwy.HasFMA(), rec["fma"])
		assert.Equal(t, hwy.HasF16C(), rec["f16c"])
	}
}

func TestRuntimeContext(t *testing.T) {
	start := fenv.CurrentRoundingMode()
	defer fenv.SetRoundingMode(start)

	fenv.SetRoundingMode(fenv.Downward)
	assert.Equal(t, Context{Mode: fenv.Downward}, Runtime(nil))
	assert.Equal(t, Context{Mode: fenv.Upward}, Runtime(fenv.Fixed(fenv.Upward)))
	assert.Equal(t, Context{Mode: fenv.TowardZero, Constant: true}, ConstEval(fenv.TowardZero))
}

func TestSqrtKnownValues(t *testing.T) {
	for _, ctx := range []Context{Runtime(fenv.Fixed(fenv.ToNearest)), ConstEval(fenv.ToNearest)} {
		assert.Equal(t, 1.4142135623730951, Sqrt(2.0, ctx))
		assert.Equal(t, uint64(0x3fd94c583ada5b53), math.Float64bits(Sqrt(0.15625, ctx)))
	}
	assert.Equal(t, uint64(0x3ff6a09e667f3bcc), math.Float64bits(Sqrt(2.0, Context{Mode: fenv.Downward})))
	assert.Equal(t, uint64(0x3fd94c583ada5b52), math.Float64bits(Sqrt(0.15625, Context{Mode: fenv.TowardZero})))
	assert.Equal(t, uint64(0x5ff0000000000000), math.Float64bits(Sqrt(math.MaxFloat64, Context{Mode: fenv.Upward})))
}

func TestSqrtSpecialsBeforeDispatch(t *testing.T) {
	negNaN := uint64(0xfff8000000000000)
	for _, s := range Strategies {
		for _, m := range fenv.Modes {
			got, ok := SqrtVia(s, -2.0, m)
			require.True(t, ok)
			assert.Equal(t, negNaN, math.Float64bits(got), "%s %s", s, m)

			got, ok = SqrtVia(s, math.Copysign(0, -1), m)
			require.True(t, ok)
			assert.Equal(t, uint64(1<<63), math.Float64bits(got))

			got32, ok := SqrtVia(s, float32(math.Inf(1)), m)
			require.True(t, ok)
			assert.True(t, math.IsInf(float64(got32), 1))

			nan := math.Float64frombits(0x7ff8000000000abc)
			got, ok = SqrtVia(s, nan, m)
			require.True(t, ok)
			assert.Equal(t, uint64(0x7ff8000000000abc), math.Float64bits(got))
		}
	}
}

func TestStrategyEligibility(t *testing.T) {
	_, ok := SqrtVia(Vector, 2.0, fenv.Upward)
	assert.False(t, ok)
	_, ok = SqrtVia(Vector, fp.Float80{Lo: 1 << 63, Hi: 0x4000}, fenv.ToNearest)
	assert.False(t, ok)
	_, ok = SqrtVia(Builtin, fp.Float16(0x4000), fenv.ToNearest)
	assert.False(t, ok)
	_, ok = SqrtVia(Builtin, 2.0, fenv.TowardZero)
	assert.True(t, ok)
	_, ok = SqrtVia(Generic, fp.Float128{Hi: 0x4000000000000000}, fenv.Upward)
	assert.True(t, ok)
}

// crossCheck runs x through every strategy that can serve it and
// requires the same bits as the generic kernel.
func crossCheck[T fp.Float](t *testing.T, x T) {
	t.Helper()
	for _, m := range fenv.Modes {
		want := gen.Sqrt(x, m)
		for _, s := range Strategies {
			got, ok := SqrtVia(s, x, m)
			if !ok {
				continue
			}
			if got != want {
				t.Fatalf("%s sqrt(%s) under %s = %s, generic gives %s",
					s, fp.FromValue(x), m, fp.FromValue(got), fp.FromValue(want))
			}
		}
		if got := Sqrt(x, Context{Mode: m}); got != want {
			t.Fatalf("Sqrt(%s) under %s = %s, want %s", fp.FromValue(x), m, fp.FromValue(got), fp.FromValue(want))
		}
	}
}

func TestCrossPathFloat64(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	for range 20000 {
		x := math.Float64frombits(rng.Uint64() &^ (1 << 63))
		if math.IsNaN(x) {
			continue
		}
		crossCheck(t, x)
	}
	for _, x := range []float64{2, 3, 0.15625, math.MaxFloat64, math.SmallestNonzeroFloat64, 0x1p-900, math.Nextafter(0x1p-900, 0), 0x1p-1022} {
		crossCheck(t, x)
	}
}

func TestCrossPathSubnormals(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))
	for range 5000 {
		crossCheck(t, math.Float64frombits(rng.Uint64()&(1<<52-1)|1))
		crossCheck(t, math.Float32frombits(rng.Uint32()&(1<<23-1)|1))
	}
}

func TestCrossPathFloat32(t *testing.T) {
	rng := rand.New(rand.NewPCG(25, 26))
	for range 20000 {
		x := math.Float32frombits(rng.Uint32() &^ (1 << 31))
		if math.IsNaN(float64(x)) {
			continue
		}
		crossCheck(t, x)
	}
	crossCheck(t, float32(math.MaxFloat32))
	crossCheck(t, float32(2))
}

func TestCrossPathHalf(t *testing.T) {
	for i := range 0x7c01 {
		crossCheck(t, fp.Float16(i))
	}
	for i := range 0x7f81 {
		crossCheck(t, fp.BFloat16(i))
	}
}

func TestCrossPathWide(t *testing.T) {
	two80 := fp.Float80{Lo: 1 << 63, Hi: 0x4000}
	crossCheck(t, two80)
	assert.Equal(t, fp.Float80{Lo: 0xb504f333f9de6484, Hi: 0x3fff}, Sqrt(two80, ConstEval(fenv.ToNearest)))
	crossCheck(t, fp.Float128{Hi: 0x4000000000000000})
}
