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

// Package lu provides in-place LU factorization without pivoting of dense
// row-major matrices, with lane-parallel execution.
//
// Getrf overwrites an m x n matrix A (m <= n) with its combined factors
// A = L*U: L occupies the strict lower triangle (unit diagonal implicit),
// U occupies the upper triangle including the diagonal.
//
// Rows are distributed cyclically across a configurable number of lanes;
// within each elimination sweep the pivot-broadcast, column-scale and
// trailing-update phases run with full barriers between them, so any lane
// count produces bit-identical results.
//
// No pivoting is performed. The caller must ensure every leading principal
// minor of A is nonzero (for example by pre-pivoting or supplying a
// diagonally dominant matrix); a zero pivot propagates Inf/NaN through the
// trailing submatrix per IEEE-754 and is not detected.
//
// Example usage:
//
//	// Factor a 2x2 matrix in place with a single lane.
//	a := []float64{4, 3, 6, 3}
//	info := lu.Getrf(a, 2, 2, 2, 1)
//	// info == 0, a == [4, 3, 1.5, -1.5]:
//	// L = [[1, 0], [1.5, 1]], U = [[4, 3], [0, -1.5]]
package lu
