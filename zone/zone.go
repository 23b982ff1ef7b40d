package zone

import "fmt"

// ID identifies a capacity zone within a configuration.
type ID int

// Zone is one contiguous row-range classification. RowStart and RowEnd are
// both inclusive. Sizes lists the footprint size classes stored in this
// zone; Name is display identity only and has no behavioral role.
type Zone struct {
	ID       ID     `yaml:"id"`
	Name     string `yaml:"name"`
	RowStart int    `yaml:"row_start"`
	RowEnd   int    `yaml:"row_end"`
	Sizes    []int  `yaml:"sizes"`
}

// rows returns the number of rows the zone spans.
func (z Zone) rows() int { return z.RowEnd - z.RowStart + 1 }

// Map answers zone-membership queries over an ordered, immutable zone
// table. Construct with NewMap; the zero Map is not usable.
type Map struct {
	zones  []Zone
	bySize map[int]int // size class -> index into zones
	byID   map[ID]int
}

// NewMap validates and indexes the given zone table. The declaration order
// of zones is preserved and is the tie-break order for any overlapping
// membership queries. The input slice is copied.
//
// Returns ErrNoZones, ErrBadRowRange, ErrBadSizeClass, ErrDuplicateSize,
// or ErrDuplicateZone.
func NewMap(zones []Zone) (*Map, error) {
	if len(zones) == 0 {
		return nil, ErrNoZones
	}
	m := &Map{
		zones:  make([]Zone, len(zones)),
		bySize: make(map[int]int),
		byID:   make(map[ID]int, len(zones)),
	}
	copy(m.zones, zones)
	// Deep copy size lists so callers cannot mutate the map afterwards.
	for i := range m.zones {
		m.zones[i].Sizes = append([]int(nil), m.zones[i].Sizes...)
	}
	for i, z := range m.zones {
		if z.RowStart < 0 || z.RowEnd < z.RowStart {
			return nil, fmt.Errorf("%w: zone %d rows [%d,%d]", ErrBadRowRange, z.ID, z.RowStart, z.RowEnd)
		}
		if _, dup := m.byID[z.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateZone, z.ID)
		}
		m.byID[z.ID] = i
		for _, s := range z.Sizes {
			if s < 1 {
				return nil, fmt.Errorf("%w: zone %d size %d", ErrBadSizeClass, z.ID, s)
			}
			if prev, dup := m.bySize[s]; dup {
				return nil, fmt.Errorf("%w: size %d in zones %d and %d",
					ErrDuplicateSize, s, m.zones[prev].ID, z.ID)
			}
			m.bySize[s] = i
		}
	}
	return m, nil
}

// ZoneForSize returns the zone configured for the given footprint size
// class, or ok=false when no zone accepts that size. Complexity: O(1).
func (m *Map) ZoneForSize(size int) (Zone, bool) {
	i, ok := m.bySize[size]
	if !ok {
		return Zone{}, false
	}
	return m.zones[i], true
}

// RowInZone reports whether row lies within the row range of the zone
// identified by id. Unknown zones report false. Complexity: O(1).
func (m *Map) RowInZone(row int, id ID) bool {
	i, ok := m.byID[id]
	if !ok {
		return false
	}
	z := m.zones[i]
	return row >= z.RowStart && row <= z.RowEnd
}

// Zones returns a copy of the zone table in declaration order.
func (m *Map) Zones() []Zone {
	out := make([]Zone, len(m.zones))
	copy(out, m.zones)
	for i := range out {
		out[i].Sizes = append([]int(nil), out[i].Sizes...)
	}
	return out
}
