// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no columns or no rows was requested.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate outside the lattice.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNotPresent indicates an occupant was not found in the expected cell.
	ErrNotPresent = errors.New("grid: occupant not present in cell")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Pos is an integer cell coordinate. X grows east, Y grows south.
type Pos struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Options contains tunable parameters for grid construction.
type Options struct {
	// Torus wraps neighborhoods around the edges when true.
	Torus bool
	// Conn chooses 4- or 8-directional neighborhoods.
	Conn Connectivity
}

// DefaultOptions returns Options{Torus: true, Conn: Conn4}.
func DefaultOptions() Options {
	return Options{
		Torus: true,
		Conn:  Conn4,
	}
}

// Grid is a width×height lattice of cells, each holding zero or more
// occupants of type T. It is not safe for concurrent mutation.
type Grid[T comparable] struct {
	width, height   int
	torus           bool
	conn            Connectivity
	cells           [][]T // row-major: cells[y*width+x]
	size            int
	neighborOffsets [][2]int
}
