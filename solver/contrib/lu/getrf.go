// Copyright 2024 The go-solver Authors. SPDX-License-Identifier: Apache-2.0

package lu

import (
	"runtime"

	"github.com/ajroetker/go-solver/solver"
	"github.com/ajroetker/go-solver/solver/contrib/workerpool"
)

// Size-based dispatch thresholds.
const (
	// MinParallelFlops is the minimum flop count (~ 2/3 m^2 n) before the
	// Auto entry points spin up parallel lanes. Below this, barrier and
	// scheduling overhead outweighs the arithmetic.
	MinParallelFlops = 64 * 64 * 64
)

// Getrf computes the LU factorization without pivoting of the m x n
// row-major matrix a with leading dimension lda, overwriting a with the
// combined factors: L in the strict lower triangle (unit diagonal
// implicit), U in the upper triangle including the diagonal.
//
// Rows are distributed cyclically across laneCount lanes; laneCount == 1
// runs fully serially. Every laneCount produces bit-identical results.
//
// Returns info == 0 on completion. No other status is defined: with
// pivoting omitted there is no failure to detect, and a zero pivot
// propagates Inf/NaN through the remaining sweeps instead of erroring.
//
// Panics if:
//   - m <= 0 or n <= 0
//   - m > n (no-pivot factorization requires a square or wide matrix)
//   - lda < n
//   - len(a) < (m-1)*lda + n
//   - laneCount < 1
func Getrf[T solver.Floats](a []T, m, n, lda, laneCount int) int {
	checkArgs(len(a), m, n, lda, laneCount)

	ly := newLayout[T](m, n, laneCount)
	ly.gather(a, lda)

	if laneCount == 1 {
		baseGetrf(ly)
	} else {
		pool := workerpool.New(laneCount)
		defer pool.Close()
		parallelGetrf(pool, ly)
	}

	ly.scatter(a, lda)
	return 0
}

// GetrfFloat32 is the non-generic version for float32.
func GetrfFloat32(a []float32, m, n, lda, laneCount int) int {
	return Getrf(a, m, n, lda, laneCount)
}

// GetrfFloat64 is the non-generic version for float64.
func GetrfFloat64(a []float64, m, n, lda, laneCount int) int {
	return Getrf(a, m, n, lda, laneCount)
}

// GetrfWithPool is like Getrf but runs on a caller-owned persistent pool,
// with one lane per pool worker. This avoids per-call pool construction
// when factoring many matrices.
//
// Usage:
//
//	pool := workerpool.New(runtime.GOMAXPROCS(0))
//	defer pool.Close()
//
//	for _, m := range matrices {
//	    lu.GetrfWithPool(pool, m.Data, m.Rows, m.Cols, m.Stride)
//	}
func GetrfWithPool[T solver.Floats](pool *workerpool.Pool, a []T, m, n, lda int) int {
	if pool == nil {
		return GetrfAuto(a, m, n, lda)
	}
	laneCount := pool.NumWorkers()
	checkArgs(len(a), m, n, lda, laneCount)

	ly := newLayout[T](m, n, laneCount)
	ly.gatherParallel(pool, a, lda)
	parallelGetrf(pool, ly)
	ly.scatterParallel(pool, a, lda)
	return 0
}

// GetrfWithPoolFloat32 is the non-generic version for float32.
func GetrfWithPoolFloat32(pool *workerpool.Pool, a []float32, m, n, lda int) int {
	return GetrfWithPool(pool, a, m, n, lda)
}

// GetrfWithPoolFloat64 is the non-generic version for float64.
func GetrfWithPoolFloat64(pool *workerpool.Pool, a []float64, m, n, lda int) int {
	return GetrfWithPool(pool, a, m, n, lda)
}

// GetrfAuto selects the lane count from the problem size: serial below
// MinParallelFlops, one lane per CPU above it. Setting SOLVER_NO_PARALLEL
// forces the serial path regardless of size.
func GetrfAuto[T solver.Floats](a []T, m, n, lda int) int {
	flops := 2 * m * m * n / 3
	if solver.NoParallelEnv() || flops < MinParallelFlops {
		return Getrf(a, m, n, lda, 1)
	}
	return Getrf(a, m, n, lda, runtime.GOMAXPROCS(0))
}

// GetrfAutoFloat32 is the non-generic version for float32.
func GetrfAutoFloat32(a []float32, m, n, lda int) int {
	return GetrfAuto(a, m, n, lda)
}

// GetrfAutoFloat64 is the non-generic version for float64.
func GetrfAutoFloat64(a []float64, m, n, lda int) int {
	return GetrfAuto(a, m, n, lda)
}

func checkArgs(lenA, m, n, lda, laneCount int) {
	if m <= 0 || n <= 0 {
		panic("matrix dimensions must be positive")
	}
	if m > n {
		panic("m > n: no-pivot factorization requires a square or wide matrix")
	}
	if lda < n {
		panic("lda smaller than column count")
	}
	if lenA < (m-1)*lda+n {
		panic("matrix slice too small")
	}
	if laneCount < 1 {
		panic("lane count must be at least 1")
	}
}
