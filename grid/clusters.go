// SPDX-License-Identifier: MIT

package grid

// Clusters finds all contiguous regions of cells whose occupants satisfy
// match, according to the grid's connectivity (wrapping on a torus).
// match receives the cell's own occupant slice and must not retain it;
// it is only called for non-empty cells.
// Regions are returned in row-major order of their first cell, and the
// cells of a region in BFS discovery order.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid[T]) Clusters(match func(occupants []T) bool) [][]Pos {
	total := g.width * g.height
	hit := make([]bool, total)
	for i, cell := range g.cells {
		hit[i] = len(cell) > 0 && match(cell)
	}

	seen := make([]bool, total)
	var comps [][]Pos
	for i0 := 0; i0 < total; i0++ {
		if !hit[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Pos

		for qi := 0; qi < len(queue); qi++ {
			u := g.coordinate(queue[qi])
			comp = append(comp, u)
			for _, v := range g.Neighbors(u) {
				vi := g.index(v)
				if hit[vi] && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
