package fenv

import (
	"os"
	"sync/atomic"

	"github.com/ajroetker/go-crmath/internal/logger"
)

// Env supplies the rounding mode in effect for an operation.
type Env interface {
	RoundingMode() RoundingMode
}

// processMode holds the process-wide rounding mode.
var processMode atomic.Uint32

func init() {
	val := os.Getenv("CRMATH_ROUNDING_MODE")
	if val == "" {
		return
	}
	mode, err := ParseRoundingMode(val)
	if err != nil {
		logger.Log.Warn("ignoring CRMATH_ROUNDING_MODE", "value", val, "err", err)
		return
	}
	processMode.Store(uint32(mode))
	logger.Log.Debug("initial rounding mode", "mode", mode.String())
}

// CurrentRoundingMode returns the process-wide rounding mode.
func CurrentRoundingMode() RoundingMode {
	return RoundingMode(processMode.Load())
}

// SetRoundingMode sets the process-wide rounding mode and returns the
// previous one. Invalid modes are ignored.
//
// The setting is shared by every goroutine. Code that needs a mode of its
// own should pass Fixed(mode) to the operation instead.
func SetRoundingMode(m RoundingMode) RoundingMode {
	if !m.Valid() {
		return CurrentRoundingMode()
	}
	return RoundingMode(processMode.Swap(uint32(m)))
}

type processEnv struct{}

func (processEnv) RoundingMode() RoundingMode {
	return CurrentRoundingMode()
}

// Process returns the Env backed by the process-wide rounding mode.
// It reads the mode on every call.
func Process() Env {
	return processEnv{}
}

// Fixed is an Env that always reports the same mode.
type Fixed RoundingMode

// RoundingMode implements Env.
func (f Fixed) RoundingMode() RoundingMode {
	return RoundingMode(f)
}
