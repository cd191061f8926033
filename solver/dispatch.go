package solver

import (
	"os"
	"strconv"
)

// DispatchLevel represents the CPU capability tier detected at startup.
type DispatchLevel int

const (
	// DispatchScalar indicates no vector extensions were detected.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 (x86-64 baseline).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 (256-bit vectors, FMA).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 (512-bit vectors).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON (128-bit vectors).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected capability tier for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentName is the human-readable name of the current tier.
// Set by init() in dispatch_*.go files.
var currentName string

// CurrentLevel returns the CPU capability tier detected at startup.
// Kernels in this module are portable Go; the level is reported so callers
// and benchmarks can label results by the hardware they ran on.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current capability tier.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// NoParallelEnv checks if the SOLVER_NO_PARALLEL environment variable is set.
// When set, Auto entry points use the single-lane serial path regardless of
// problem size. This is useful for testing and debugging.
func NoParallelEnv() bool {
	val := os.Getenv("SOLVER_NO_PARALLEL")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
