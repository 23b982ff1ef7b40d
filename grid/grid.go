package grid

import "fmt"

// Grid is a rows×cols occupancy field. Each cell holds at most one BoxID;
// a secondary map from BoxID to Placement gives O(1) reverse lookup on
// removal. Construct with New; the zero Grid is not usable.
type Grid struct {
	rows, cols int
	cells      [][]BoxID // 0 = empty
	boxes      map[BoxID]Placement
	occupied   int // total occupied cells, maintained incrementally
}

// New constructs an empty Grid with the given extents.
// Returns ErrBadDimensions if rows < 1 or cols < 1.
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	cells := make([][]BoxID, rows)
	for r := range cells {
		cells[r] = make([]BoxID, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
		boxes: make(map[BoxID]Placement),
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// fits reports whether a size×size footprint anchored at anchor lies
// entirely within bounds. Assumes size >= 1.
func (g *Grid) fits(anchor Cell, size int) bool {
	return anchor.Row >= 0 && anchor.Col >= 0 &&
		anchor.Row+size <= g.rows && anchor.Col+size <= g.cols
}

// IsFreeFootprint reports whether every cell of a size×size footprint
// anchored at anchor is within bounds and unoccupied. Pure predicate:
// never mutates and never errors; malformed inputs simply report false.
// Complexity: O(size²).
func (g *Grid) IsFreeFootprint(anchor Cell, size int) bool {
	if size < 1 || !g.fits(anchor, size) {
		return false
	}
	for r := anchor.Row; r < anchor.Row+size; r++ {
		for c := anchor.Col; c < anchor.Col+size; c++ {
			if g.cells[r][c] != 0 {
				return false
			}
		}
	}
	return true
}

// OccupantAt returns the box occupying c, if any. Out-of-bounds cells
// report no occupant. Complexity: O(1).
func (g *Grid) OccupantAt(c Cell) (BoxID, bool) {
	if !g.InBounds(c) || g.cells[c.Row][c.Col] == 0 {
		return 0, false
	}
	return g.cells[c.Row][c.Col], true
}

// Location returns the recorded placement of id, if present.
// Complexity: O(1).
func (g *Grid) Location(id BoxID) (Placement, bool) {
	p, ok := g.boxes[id]
	return p, ok
}

// OccupiedCount returns the total number of occupied cells.
// Complexity: O(1).
func (g *Grid) OccupiedCount() int { return g.occupied }

// Boxes returns the number of placed boxes. Complexity: O(1).
func (g *Grid) Boxes() int { return len(g.boxes) }

// Place marks every cell of a size×size footprint anchored at anchor with
// id and records the reverse-lookup entry. Validation happens before any
// mutation, so a failed Place leaves the grid untouched.
//
// Returns ErrBadBoxID, ErrBadFootprint, ErrDuplicateBox, ErrOutOfBounds,
// or ErrCollision (annotated with the first blocking cell and occupant).
// Complexity: O(size²).
func (g *Grid) Place(id BoxID, anchor Cell, size int) error {
	if id == 0 {
		return ErrBadBoxID
	}
	if size < 1 {
		return fmt.Errorf("%w: size %d", ErrBadFootprint, size)
	}
	if _, dup := g.boxes[id]; dup {
		return fmt.Errorf("%w: box %d", ErrDuplicateBox, id)
	}
	if !g.fits(anchor, size) {
		return fmt.Errorf("%w: anchor (%d,%d) size %d on %dx%d",
			ErrOutOfBounds, anchor.Row, anchor.Col, size, g.rows, g.cols)
	}
	for r := anchor.Row; r < anchor.Row+size; r++ {
		for c := anchor.Col; c < anchor.Col+size; c++ {
			if other := g.cells[r][c]; other != 0 {
				return fmt.Errorf("%w: cell (%d,%d) held by box %d",
					ErrCollision, r, c, other)
			}
		}
	}
	for r := anchor.Row; r < anchor.Row+size; r++ {
		for c := anchor.Col; c < anchor.Col+size; c++ {
			g.cells[r][c] = id
		}
	}
	g.boxes[id] = Placement{Anchor: anchor, Size: size}
	g.occupied += size * size
	return nil
}

// Remove clears every cell of id's footprint and deletes the reverse-lookup
// entry. Returns ErrUnknownBox if id has no recorded placement.
// Complexity: O(size²).
func (g *Grid) Remove(id BoxID) error {
	p, ok := g.boxes[id]
	if !ok {
		return fmt.Errorf("%w: box %d", ErrUnknownBox, id)
	}
	for r := p.Anchor.Row; r < p.Anchor.Row+p.Size; r++ {
		for c := p.Anchor.Col; c < p.Anchor.Col+p.Size; c++ {
			g.cells[r][c] = 0
		}
	}
	delete(g.boxes, id)
	g.occupied -= p.Size * p.Size
	return nil
}
