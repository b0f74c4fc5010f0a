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

// Package fenv models the floating-point rounding environment.
//
// Go offers no access to the hardware rounding-mode register, so the
// active mode is a software value: a process-wide setting that callers
// may change with SetRoundingMode, or an explicit Env handed to an
// operation. Every correctly-rounded operation in crmath consults an Env
// on each call rather than caching the mode.
package fenv

import (
	"errors"
	"fmt"
	"strings"
)

// RoundingMode is an IEEE-754 rounding direction.
type RoundingMode uint8

const (
	// ToNearest rounds to the nearest representable value, ties to even.
	ToNearest RoundingMode = iota

	// Upward rounds toward positive infinity.
	Upward

	// Downward rounds toward negative infinity.
	Downward

	// TowardZero truncates.
	TowardZero
)

// Modes lists every rounding mode in declaration order.
var Modes = []RoundingMode{ToNearest, Upward, Downward, TowardZero}

// ErrUnknownMode is returned by ParseRoundingMode for unrecognized names.
var ErrUnknownMode = errors.New("fenv: unknown rounding mode")

// String returns the canonical name of the mode.
func (m RoundingMode) String() string {
	switch m {
	case ToNearest:
		return "to-nearest"
	case Upward:
		return "upward"
	case Downward:
		return "downward"
	case TowardZero:
		return "toward-zero"
	default:
		return "unknown"
	}
}

// Valid reports whether m is one of the four IEEE modes.
func (m RoundingMode) Valid() bool {
	return m <= TowardZero
}

// ParseRoundingMode parses a mode name. Besides the canonical names it
// accepts the C spellings (FE_TONEAREST, ...) and a few short forms.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "to-nearest", "nearest", "tonearest", "fe_tonearest", "rne", "":
		return ToNearest, nil
	case "upward", "up", "fe_upward", "ru":
		return Upward, nil
	case "downward", "down", "fe_downward", "rd":
		return Downward, nil
	case "toward-zero", "towardzero", "zero", "fe_towardzero", "rz", "trunc":
		return TowardZero, nil
	default:
		return ToNearest, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m RoundingMode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, m)
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *RoundingMode) UnmarshalText(text []byte) error {
	parsed, err := ParseRoundingMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
