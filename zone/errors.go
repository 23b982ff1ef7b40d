package zone

import "errors"

// Sentinel errors for zone map and configuration validation.
var (
	// ErrNoZones indicates an empty zone table.
	ErrNoZones = errors.New("zone: at least one zone is required")

	// ErrBadRowRange indicates RowStart > RowEnd or a negative row.
	ErrBadRowRange = errors.New("zone: invalid row range")

	// ErrBadSizeClass indicates a footprint size class below 1.
	ErrBadSizeClass = errors.New("zone: size class must be at least 1")

	// ErrDuplicateSize indicates one size class mapped to two zones.
	ErrDuplicateSize = errors.New("zone: size class mapped to multiple zones")

	// ErrDuplicateZone indicates two zones sharing an identifier.
	ErrDuplicateZone = errors.New("zone: duplicate zone id")

	// ErrBadConfig indicates an invalid engine configuration.
	ErrBadConfig = errors.New("zone: invalid configuration")
)
