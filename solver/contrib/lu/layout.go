// Copyright 2025 go-solver Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lu

import (
	"github.com/ajroetker/go-solver/solver"
	"github.com/ajroetker/go-solver/solver/contrib/workerpool"
)

// Partition describes the cyclic distribution of matrix rows across lanes:
// global row r is owned by lane r mod Lanes at local index r / Lanes.
// The mapping is fixed for the lifetime of a factorization call; every
// global row maps to exactly one (lane, local) pair and back.
type Partition struct {
	Lanes int // number of compute lanes, >= 1
	Rows  int // total global rows (m)
}

// Lane returns the lane owning global row r.
func (p Partition) Lane(r int) int { return r % p.Lanes }

// LocalRow returns the index of global row r within its owning lane.
func (p Partition) LocalRow(r int) int { return r / p.Lanes }

// GlobalRow returns the global row stored at (lane, local).
func (p Partition) GlobalRow(lane, local int) int { return lane + local*p.Lanes }

// LaneRows returns how many global rows lane owns.
func (p Partition) LaneRows(lane int) int {
	if lane >= p.Rows {
		return 0
	}
	return (p.Rows - lane + p.Lanes - 1) / p.Lanes
}

// localBelow returns the first local index in lane whose global row is
// strictly below sweep row s. Lanes at or before s's owner have already
// consumed local index s/Lanes as a pivot-or-above row.
func (p Partition) localBelow(lane, s int) int {
	if lane <= s%p.Lanes {
		return s/p.Lanes + 1
	}
	return s / p.Lanes
}

// layout is the working copy of the matrix for one factorization call,
// stored lane-major: lane l's rows occupy a contiguous block of rowCap
// row slots of cols elements each. Padding slots past a lane's last owned
// row are never read or written.
type layout[T solver.Floats] struct {
	part   Partition
	cols   int // n
	rowCap int // row slots per lane: ceil(m / lanes)
	data   []T
}

func newLayout[T solver.Floats](m, n, lanes int) *layout[T] {
	rowCap := (m + lanes - 1) / lanes
	return &layout[T]{
		part:   Partition{Lanes: lanes, Rows: m},
		cols:   n,
		rowCap: rowCap,
		data:   make([]T, lanes*rowCap*n),
	}
}

// row returns the storage for global row r.
func (ly *layout[T]) row(r int) []T {
	slot := ly.part.Lane(r)*ly.rowCap + ly.part.LocalRow(r)
	return ly.data[slot*ly.cols : (slot+1)*ly.cols]
}

// laneRow returns the storage for (lane, local).
func (ly *layout[T]) laneRow(lane, local int) []T {
	slot := lane*ly.rowCap + local
	return ly.data[slot*ly.cols : (slot+1)*ly.cols]
}

// gather copies the caller's lda-strided matrix into the partitioned
// layout, visiting every element exactly once.
func (ly *layout[T]) gather(a []T, lda int) {
	for r := range ly.part.Rows {
		copy(ly.row(r), a[r*lda:r*lda+ly.cols])
	}
}

// scatter is the inverse of gather: it copies the partitioned layout back
// into the caller's matrix, leaving any lda padding untouched.
func (ly *layout[T]) scatter(a []T, lda int) {
	for r := range ly.part.Rows {
		copy(a[r*lda:r*lda+ly.cols], ly.row(r))
	}
}

// gatherParallel is gather with rows copied by the pool. The ParallelFor
// barrier guarantees the layout is fully populated before it returns.
func (ly *layout[T]) gatherParallel(pool *workerpool.Pool, a []T, lda int) {
	pool.ParallelFor(ly.part.Rows, func(start, end int) {
		for r := start; r < end; r++ {
			copy(ly.row(r), a[r*lda:r*lda+ly.cols])
		}
	})
}

// scatterParallel is scatter with rows copied by the pool.
func (ly *layout[T]) scatterParallel(pool *workerpool.Pool, a []T, lda int) {
	pool.ParallelFor(ly.part.Rows, func(start, end int) {
		for r := start; r < end; r++ {
			copy(a[r*lda:r*lda+ly.cols], ly.row(r))
		}
	})
}
