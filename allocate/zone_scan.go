package allocate

import (
	"fmt"

	"github.com/kc099/ASRS/grid"
	"github.com/kc099/ASRS/zone"
)

// ZoneScan is the zone-constrained strategy: boxes must physically reside
// within the capacity zone configured for their size class. The scan order
// (row-major from the zone's starting edge) is deterministic and fills
// zones top-down, left to right.
type ZoneScan struct {
	zones *zone.Map
}

// NewZoneScan returns a zone-constrained strategy backed by m.
// Returns ErrNilZoneMap if m is nil.
func NewZoneScan(m *zone.Map) (*ZoneScan, error) {
	if m == nil {
		return nil, ErrNilZoneMap
	}
	return &ZoneScan{zones: m}, nil
}

// FindSlot looks up the zone for the size class and scans its rows
// RowStart..RowEnd top to bottom, columns left to right, returning the
// first anchor whose entire footprint stays inside the zone's row range
// and is unoccupied. An anchor whose footprint would span even one row
// outside the zone is rejected regardless of occupancy. origin is accepted
// for interface symmetry and validated, but plays no role in the scan.
//
// Returns ErrNoZoneForSize when the size class is unconfigured and
// ErrNoSlot when the zone is exhausted.
//
// Complexity: O(zoneRows×cols×size²) worst case.
func (s *ZoneScan) FindSlot(g *grid.Grid, size int, origin grid.Cell) (grid.Cell, error) {
	if err := validate(g, size, origin); err != nil {
		return grid.Cell{}, err
	}

	z, ok := s.zones.ZoneForSize(size)
	if !ok {
		return grid.Cell{}, fmt.Errorf("%w: size %d", ErrNoZoneForSize, size)
	}

	// The last anchor row whose footprint still ends inside the zone.
	lastRow := z.RowEnd - size + 1
	for row := z.RowStart; row <= lastRow; row++ {
		for col := 0; col+size <= g.Cols(); col++ {
			if g.IsFreeFootprint(grid.Cell{Row: row, Col: col}, size) {
				return grid.Cell{Row: row, Col: col}, nil
			}
		}
	}
	return grid.Cell{}, ErrNoSlot
}
