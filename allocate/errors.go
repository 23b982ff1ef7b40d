package allocate

import "errors"

// Sentinel errors for slot allocation.
var (
	// ErrNilGrid indicates a nil grid pointer was passed to FindSlot.
	ErrNilGrid = errors.New("allocate: grid is nil")

	// ErrNilZoneMap indicates NewZoneScan received a nil zone map.
	ErrNilZoneMap = errors.New("allocate: zone map is nil")

	// ErrBadFootprint indicates a footprint size below 1.
	ErrBadFootprint = errors.New("allocate: footprint size must be at least 1")

	// ErrOriginOutOfBounds indicates an origin cell outside the grid.
	ErrOriginOutOfBounds = errors.New("allocate: origin outside grid bounds")

	// ErrNoZoneForSize indicates no zone is configured for the size class.
	ErrNoZoneForSize = errors.New("allocate: no zone configured for size class")

	// ErrNoSlot indicates the search strategy exhausted without a fit.
	// Expected under high occupancy; treat as "warehouse full here".
	ErrNoSlot = errors.New("allocate: no available slot")
)
