// SPDX-License-Identifier: MIT

package grid

import "fmt"

// New constructs an empty width×height grid.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New[T comparable](width, height int, opts Options) (*Grid[T], error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid[T]{
		width:           width,
		height:          height,
		torus:           opts.Torus,
		conn:            opts.Conn,
		cells:           make([][]T, width*height),
		neighborOffsets: offsets,
	}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Torus reports whether neighborhoods wrap around the edges.
func (g *Grid[T]) Torus() bool { return g.torus }

// Len returns the total number of occupants over all cells.
func (g *Grid[T]) Len() int { return g.size }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// index maps p to a row-major index: y*Width + x.
func (g *Grid[T]) index(p Pos) int {
	return p.Y*g.width + p.X
}

// coordinate converts a row-major index back to a Pos.
func (g *Grid[T]) coordinate(idx int) Pos {
	return Pos{X: idx % g.width, Y: idx / g.width}
}

// mustInBounds panics with ErrOutOfBounds when p is outside the lattice.
func (g *Grid[T]) mustInBounds(op string, p Pos) {
	if !g.InBounds(p) {
		panic(fmt.Errorf("%w: %s%v on %dx%d grid", ErrOutOfBounds, op, p, g.width, g.height))
	}
}

// Neighbors returns the cells adjacent to p under the grid's connectivity,
// in offset order (N, E, S, W for Conn4), never including p itself.
// On a torus coordinates wrap; a position reachable through two offsets
// (grids one or two cells wide) is listed once.
// Panics with ErrOutOfBounds if p is outside the grid.
// Complexity: O(d).
func (g *Grid[T]) Neighbors(p Pos) []Pos {
	g.mustInBounds("Neighbors", p)
	out := make([]Pos, 0, len(g.neighborOffsets))
	for _, d := range g.neighborOffsets {
		q := Pos{X: p.X + d[0], Y: p.Y + d[1]}
		if g.torus {
			q.X = wrap(q.X, g.width)
			q.Y = wrap(q.Y, g.height)
		} else if !g.InBounds(q) {
			continue
		}
		if q == p || containsPos(out, q) {
			continue
		}
		out = append(out, q)
	}
	return out
}

// Occupants returns a copy of the occupants of p in insertion order.
// Panics with ErrOutOfBounds if p is outside the grid.
func (g *Grid[T]) Occupants(p Pos) []T {
	g.mustInBounds("Occupants", p)
	cell := g.cells[g.index(p)]
	out := make([]T, len(cell))
	copy(out, cell)
	return out
}

// Count returns the number of occupants of p without copying them.
func (g *Grid[T]) Count(p Pos) int {
	g.mustInBounds("Count", p)
	return len(g.cells[g.index(p)])
}

// Place appends item to the occupants of p.
// Panics with ErrOutOfBounds if p is outside the grid.
func (g *Grid[T]) Place(item T, p Pos) {
	g.mustInBounds("Place", p)
	i := g.index(p)
	g.cells[i] = append(g.cells[i], item)
	g.size++
}

// Remove deletes item from the occupants of p, keeping the order of the rest.
// Panics with ErrOutOfBounds or ErrNotPresent on contract violations.
func (g *Grid[T]) Remove(item T, p Pos) {
	g.mustInBounds("Remove", p)
	g.detach(item, p)
	g.size--
}

// Move relocates item from one cell to another. Both positions are validated
// before any bookkeeping changes, so a failed Move leaves the grid untouched.
// Moving to the same cell sends the item to the back of that cell's list.
// Panics with ErrOutOfBounds or ErrNotPresent on contract violations.
func (g *Grid[T]) Move(item T, from, to Pos) {
	g.mustInBounds("Move", from)
	g.mustInBounds("Move", to)
	g.detach(item, from)
	j := g.index(to)
	g.cells[j] = append(g.cells[j], item)
}

// detach removes item from cell p or panics with ErrNotPresent.
func (g *Grid[T]) detach(item T, p Pos) {
	i := g.index(p)
	cell := g.cells[i]
	for k, v := range cell {
		if v == item {
			copy(cell[k:], cell[k+1:])
			var zero T
			cell[len(cell)-1] = zero
			g.cells[i] = cell[:len(cell)-1]
			return
		}
	}
	panic(fmt.Errorf("%w: %v", ErrNotPresent, p))
}

// Each calls fn for every non-empty cell in row-major order. The occupants
// slice is the grid's own storage and must not be modified or retained.
func (g *Grid[T]) Each(fn func(p Pos, occupants []T)) {
	for i, cell := range g.cells {
		if len(cell) == 0 {
			continue
		}
		fn(g.coordinate(i), cell)
	}
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func containsPos(ps []Pos, p Pos) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
