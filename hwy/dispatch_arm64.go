//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	setScalarMode()
	if NoSimdEnv() {
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
	}
}

// HasFMA returns true if the CPU executes fused multiply-add in hardware.
// FMADD is part of the ARMv8-A base architecture.
func HasFMA() bool {
	return true
}

// HasF16C returns false on ARM; see cpu.ARM64.HasFPHP.
func HasF16C() bool {
	return false
}
