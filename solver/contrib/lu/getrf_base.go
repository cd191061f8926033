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

import "github.com/ajroetker/go-solver/solver"

// broadcastPivot copies the remaining entries of sweep s's pivot row
// (columns s..n-1) into the shared pivot buffer. The buffer is written only
// here, between phase barriers, so every lane observes the same values.
func broadcastPivot[T solver.Floats](ly *layout[T], pivot []T, s int) {
	copy(pivot[s:ly.cols], ly.row(s)[s:ly.cols])
}

// scaleLane divides column s of every row lane owns below the pivot by the
// pivot diagonal, storing the multiplier in place. The multiplier is the L
// entry for that row. A zero pivot divides through per IEEE-754.
func scaleLane[T solver.Floats](ly *layout[T], lane, s int, a00 T) {
	for local := ly.part.localBelow(lane, s); ly.part.GlobalRow(lane, local) < ly.part.Rows; local++ {
		row := ly.laneRow(lane, local)
		row[s] /= a00
	}
}

// updateLane applies the rank-1 trailing update to every row lane owns
// below the pivot: row[c] -= row[s] * pivot[c] for c in (s, n).
func updateLane[T solver.Floats](ly *layout[T], pivot []T, lane, s int) {
	n := ly.cols
	for local := ly.part.localBelow(lane, s); ly.part.GlobalRow(lane, local) < ly.part.Rows; local++ {
		row := ly.laneRow(lane, local)
		mult := row[s]

		c := s + 1
		for ; c+4 <= n; c += 4 {
			row[c] -= mult * pivot[c]
			row[c+1] -= mult * pivot[c+1]
			row[c+2] -= mult * pivot[c+2]
			row[c+3] -= mult * pivot[c+3]
		}
		for ; c < n; c++ {
			row[c] -= mult * pivot[c]
		}
	}
}

// baseGetrf runs the elimination sweeps serially, one lane at a time, in
// the same phase order as the parallel path: broadcast, scale, update.
// Sweep s+1's pivot row is produced by sweep s's update, so sweeps are
// strictly ordered.
func baseGetrf[T solver.Floats](ly *layout[T]) {
	m := ly.part.Rows
	pivot := make([]T, ly.cols)

	for s := 0; s < m-1; s++ {
		broadcastPivot(ly, pivot, s)
		a00 := pivot[s]

		for lane := range ly.part.Lanes {
			scaleLane(ly, lane, s, a00)
		}
		for lane := range ly.part.Lanes {
			updateLane(ly, pivot, lane, s)
		}
	}
}
