package allocate

import (
	"fmt"

	"github.com/kc099/ASRS/grid"
)

// Strategy finds a top-left anchor cell for a size×size footprint.
// Implementations read the grid and never mutate it; the caller applies
// the placement (grid.Place) once the result is accepted.
type Strategy interface {
	// FindSlot returns an anchor whose footprint is free according to the
	// strategy's policy, or ErrNoSlot when the search space is exhausted.
	FindSlot(g *grid.Grid, size int, origin grid.Cell) (grid.Cell, error)
}

// validate applies the input checks shared by both strategies.
func validate(g *grid.Grid, size int, origin grid.Cell) error {
	if g == nil {
		return ErrNilGrid
	}
	if size < 1 {
		return fmt.Errorf("%w: size %d", ErrBadFootprint, size)
	}
	if !g.InBounds(origin) {
		return fmt.Errorf("%w: (%d,%d)", ErrOriginOutOfBounds, origin.Row, origin.Col)
	}
	return nil
}

// neighborOffsets is the fixed 4-directional expansion order: up, down,
// left, right. The order is part of the NearestBFS contract — it decides
// ties among equally distant candidates.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
