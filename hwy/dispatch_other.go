//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures fall back to scalar mode for now.
	setScalarMode()
}

// HasFMA reports false; math.FMA still computes a fused result in software.
func HasFMA() bool {
	return false
}

// HasF16C returns false on this architecture.
func HasF16C() bool {
	return false
}
