// SPDX-License-Identifier: MIT

// Package grid is a bounded 2-D lattice whose cells hold any number of
// occupants. It is the spatial proximity layer of the epidemic model:
// agents move between orthogonal neighbors and interact with whoever
// shares their cell.
//
// What:
//
//   - Grid[T] stores, per cell, an insertion-ordered list of occupants.
//   - Neighbors returns the Conn4 (N, E, S, W) or Conn8 neighborhood of a
//     cell, wrapping at the edges when the grid is a torus.
//   - Place, Move and Remove keep occupancy consistent: an occupant is never
//     counted in two cells, nor in none, once a call returns.
//   - Clusters finds connected regions of cells whose occupants match a
//     predicate (e.g. "hosts an infectious agent").
//
// Complexity:
//
//   - Neighbors: O(d), d = 4 or 8.
//   - Occupants: O(k), k = occupants of the cell (a copy is returned).
//   - Place: O(1) amortized. Move/Remove: O(k).
//   - Clusters: O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: width or height is not positive (returned by New).
//   - ErrOutOfBounds: a coordinate outside the lattice (panics; caller bug).
//   - ErrNotPresent: Move/Remove of an occupant not in the source cell (panics).
package grid
