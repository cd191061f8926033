//go:build amd64

package solver

import "golang.org/x/sys/cpu"

func init() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ:
		currentLevel = DispatchAVX512
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		currentLevel = DispatchAVX2
	default:
		// SSE2 is part of the amd64 baseline.
		currentLevel = DispatchSSE2
	}
	currentName = currentLevel.String()
}
