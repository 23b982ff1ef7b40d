package grid

import "fmt"

// Snapshot is a plain-data copy of a Grid's full placement state, complete
// enough to reconstruct the cell mapping and the reverse lookup. Encoding
// and storage are the caller's concern; the engine only guarantees the
// snapshot is self-contained and detached from the live grid.
type Snapshot struct {
	Rows, Cols int
	Boxes      map[BoxID]Placement
}

// Snapshot returns a detached copy of the grid's state. Mutating the
// returned value never affects the grid. Complexity: O(boxes).
func (g *Grid) Snapshot() Snapshot {
	boxes := make(map[BoxID]Placement, len(g.boxes))
	for id, p := range g.boxes {
		boxes[id] = p
	}
	return Snapshot{Rows: g.rows, Cols: g.cols, Boxes: boxes}
}

// FromSnapshot reconstructs a Grid from s, re-validating every invariant:
// dimensions, footprint bounds, and footprint disjointness. Returns
// ErrBadSnapshot (wrapping the underlying violation) if s is inconsistent.
// Complexity: O(rows×cols + Σ size²).
func FromSnapshot(s Snapshot) (*Grid, error) {
	g, err := New(s.Rows, s.Cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSnapshot, err)
	}
	for id, p := range s.Boxes {
		if err = g.Place(id, p.Anchor, p.Size); err != nil {
			return nil, fmt.Errorf("%w: box %d: %v", ErrBadSnapshot, id, err)
		}
	}
	return g, nil
}
