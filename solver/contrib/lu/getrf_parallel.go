// Copyright 2024 The go-solver Authors. SPDX-License-Identifier: Apache-2.0

package lu

import (
	"github.com/ajroetker/go-solver/solver"
	"github.com/ajroetker/go-solver/solver/contrib/workerpool"
)

// parallelGetrf runs the elimination sweeps with lanes executed by the
// pool. Each ParallelFor call is a full barrier, which provides the three
// ordering guarantees the sweep structure needs:
//
//  1. the pivot row is fully broadcast before any lane scales,
//  2. every multiplier is written before any lane starts the trailing
//     update (a lane only reads multipliers it wrote itself, but the
//     barrier keeps the phases aligned and publishes the pivot buffer),
//  3. sweep s+1 does not start before sweep s's update has committed on
//     every lane.
//
// The pivot buffer is shared rather than replicated per lane: it is written
// only between barriers and read-only within the scale and update phases.
func parallelGetrf[T solver.Floats](pool *workerpool.Pool, ly *layout[T]) {
	m := ly.part.Rows
	lanes := ly.part.Lanes
	pivot := make([]T, ly.cols)

	for s := 0; s < m-1; s++ {
		broadcastPivot(ly, pivot, s)
		a00 := pivot[s]

		pool.ParallelFor(lanes, func(start, end int) {
			for lane := start; lane < end; lane++ {
				scaleLane(ly, lane, s, a00)
			}
		})
		pool.ParallelFor(lanes, func(start, end int) {
			for lane := start; lane < end; lane++ {
				updateLane(ly, pivot, lane, s)
			}
		})
	}
}
