//go:build noasm

package dispatch

const vectorEnabled = false
