//go:build crmath_builtin

package dispatch

const builtinEnabled = true
