// Copyright 2024 The go-solver Authors. SPDX-License-Identifier: Apache-2.0

package lu

import (
	"testing"

	"github.com/ajroetker/go-solver/solver/contrib/workerpool"
)

func TestGetrfLaneInvariance(t *testing.T) {
	// Any lane count must produce bit-identical factors: each element's
	// arithmetic history is the same regardless of which lane runs it.
	cases := []struct{ m, n, lda int }{
		{13, 17, 17},
		{32, 32, 32},
		{40, 40, 45},
	}

	for _, tc := range cases {
		ref := randomDiagDominant(tc.m, tc.n, tc.lda, int64(tc.m))
		Getrf(ref, tc.m, tc.n, tc.lda, 1)

		for _, lanes := range []int{2, 3, 4, 8} {
			a := randomDiagDominant(tc.m, tc.n, tc.lda, int64(tc.m))
			Getrf(a, tc.m, tc.n, tc.lda, lanes)

			for i := range a {
				if a[i] != ref[i] {
					t.Fatalf("m=%d n=%d lanes=%d: a[%d] = %v, serial produced %v",
						tc.m, tc.n, lanes, i, a[i], ref[i])
				}
			}
		}
	}
}

func TestGetrfMoreLanesThanRows(t *testing.T) {
	ref := randomDiagDominant(3, 5, 5, 9)
	Getrf(ref, 3, 5, 5, 1)

	a := randomDiagDominant(3, 5, 5, 9)
	Getrf(a, 3, 5, 5, 8)

	for i := range a {
		if a[i] != ref[i] {
			t.Fatalf("a[%d] = %v, serial produced %v", i, a[i], ref[i])
		}
	}
}

func TestGetrfWithPool(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	// Reuse one pool across several factorizations.
	for _, size := range []int{8, 16, 24} {
		ref := randomDiagDominant(size, size, size, int64(size))
		Getrf(ref, size, size, size, 1)

		a := randomDiagDominant(size, size, size, int64(size))
		if info := GetrfWithPool(pool, a, size, size, size); info != 0 {
			t.Fatalf("size=%d: info = %d, want 0", size, info)
		}

		for i := range a {
			if a[i] != ref[i] {
				t.Fatalf("size=%d: a[%d] = %v, serial produced %v", size, i, a[i], ref[i])
			}
		}
	}
}

func TestGetrfWithNilPool(t *testing.T) {
	ref := randomDiagDominant(8, 8, 8, 11)
	Getrf(ref, 8, 8, 8, 1)

	a := randomDiagDominant(8, 8, 8, 11)
	if info := GetrfWithPool[float64](nil, a, 8, 8, 8); info != 0 {
		t.Fatalf("info = %d, want 0", info)
	}
	for i := range a {
		if a[i] != ref[i] {
			t.Fatalf("a[%d] = %v, serial produced %v", i, a[i], ref[i])
		}
	}
}

func TestGetrfAuto(t *testing.T) {
	ref := randomDiagDominant(48, 48, 48, 5)
	Getrf(ref, 48, 48, 48, 1)

	a := randomDiagDominant(48, 48, 48, 5)
	if info := GetrfAuto(a, 48, 48, 48); info != 0 {
		t.Fatalf("info = %d, want 0", info)
	}
	for i := range a {
		if a[i] != ref[i] {
			t.Fatalf("a[%d] = %v, serial produced %v", i, a[i], ref[i])
		}
	}
}

func TestGetrfAutoNoParallelEnv(t *testing.T) {
	t.Setenv("SOLVER_NO_PARALLEL", "1")

	// Large enough that Auto would otherwise go parallel; results must
	// still match the serial path exactly.
	const size = 96
	ref := randomDiagDominant(size, size, size, 6)
	Getrf(ref, size, size, size, 1)

	a := randomDiagDominant(size, size, size, 6)
	GetrfAuto(a, size, size, size)

	for i := range a {
		if a[i] != ref[i] {
			t.Fatalf("a[%d] = %v, serial produced %v", i, a[i], ref[i])
		}
	}
}
