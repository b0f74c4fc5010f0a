//go:build !noasm

package dispatch

const vectorEnabled = true
