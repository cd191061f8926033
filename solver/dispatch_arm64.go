//go:build arm64

package solver

import "golang.org/x/sys/cpu"

func init() {
	// NEON (ASIMD) is part of the ARMv8-A base architecture; the cpu
	// package check is kept for consistency with other platforms.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
	} else {
		currentLevel = DispatchScalar
	}
	currentName = currentLevel.String()
}
