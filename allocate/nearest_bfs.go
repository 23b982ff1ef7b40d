package allocate

import "github.com/kc099/ASRS/grid"

// NearestBFS is the unconstrained nearest-by-expansion strategy. It visits
// cells in non-decreasing graph distance from the origin and returns the
// first one that fits the footprint, so no strictly closer valid anchor is
// ever skipped. Stateless; one value may serve many grids.
type NearestBFS struct{}

// NewNearestBFS returns the breadth-first allocation strategy.
func NewNearestBFS() *NearestBFS { return &NearestBFS{} }

// FindSlot expands outward from origin over all grid cells, 4-directional,
// visiting each cell at most once. The origin itself is tested first
// (distance 0). Ties among equally distant cells follow the expansion
// order up, down, left, right. Returns ErrNoSlot when the whole grid has
// been visited without a fit.
//
// Complexity: O(V·size²) worst case, V = rows×cols; memory O(V).
func (s *NearestBFS) FindSlot(g *grid.Grid, size int, origin grid.Cell) (grid.Cell, error) {
	if err := validate(g, size, origin); err != nil {
		return grid.Cell{}, err
	}

	visited := make(map[grid.Cell]bool, g.Rows()*g.Cols())
	queue := make([]grid.Cell, 0, g.Rows()*g.Cols())
	queue = append(queue, origin)
	visited[origin] = true

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if g.IsFreeFootprint(cur, size) {
			return cur, nil
		}
		for _, d := range neighborOffsets {
			next := grid.Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !g.InBounds(next) || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return grid.Cell{}, ErrNoSlot
}
