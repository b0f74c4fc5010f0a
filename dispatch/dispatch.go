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

// Package dispatch chooses how each correctly-rounded operation executes.
//
// Three strategies exist. Builtin uses the compiler's square root
// intrinsic and corrects it for the requested rounding mode. Vector
// computes in a SIMD register through package hwy and is only valid when
// rounding to nearest. Generic runs the host-independent kernel in
// internal/gen and is valid everywhere. Which strategies a format may use
// is fixed when the program is built (see Plan); each call then picks one
// from its Context. Every strategy returns bit-identical results.
package dispatch

import "github.com/ajroetker/go-crmath/fenv"

// Strategy is an execution path for an operation.
type Strategy int

const (
	// Generic is the portable bit-level kernel.
	Generic Strategy = iota

	// Builtin is the compiler intrinsic with a rounding correction.
	Builtin

	// Vector is the SIMD backend, round-to-nearest only.
	Vector
)

// Strategies lists every strategy.
var Strategies = []Strategy{Generic, Builtin, Vector}

func (s Strategy) String() string {
	switch s {
	case Generic:
		return "generic"
	case Builtin:
		return "builtin"
	case Vector:
		return "vector"
	default:
		return "unknown"
	}
}

// Context is what a call site knows when it invokes an operation.
type Context struct {
	// Mode is the rounding mode to honor.
	Mode fenv.RoundingMode

	// Constant marks evaluation whose result must not depend on the host,
	// such as generated tables.
	Constant bool
}

// Runtime returns a run-time context reading the mode from env. A nil env
// means the process-wide mode.
func Runtime(env fenv.Env) Context {
	if env == nil {
		env = fenv.Process()
	}
	return Context{Mode: env.RoundingMode()}
}

// ConstEval returns a constant-evaluation context for mode.
func ConstEval(mode fenv.RoundingMode) Context {
	return Context{Mode: mode, Constant: true}
}
