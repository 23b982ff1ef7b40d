package grid

import "errors"

// Sentinel errors for grid construction and mutation.
//
// All of these are routine, recoverable outcomes except ErrUnknownBox,
// which signals a caller-side consistency bug (a stale box reference)
// and deserves distinct handling upstream.
var (
	// ErrBadDimensions indicates a grid constructed with rows < 1 or cols < 1.
	ErrBadDimensions = errors.New("grid: rows and cols must be positive")

	// ErrBadFootprint indicates a footprint size below 1.
	ErrBadFootprint = errors.New("grid: footprint size must be at least 1")

	// ErrBadBoxID indicates the zero BoxID was used as an occupant.
	ErrBadBoxID = errors.New("grid: box id must be non-zero")

	// ErrOutOfBounds indicates an anchor+size that exceeds the grid extents.
	ErrOutOfBounds = errors.New("grid: footprint exceeds grid bounds")

	// ErrCollision indicates a footprint overlapping an occupied cell.
	ErrCollision = errors.New("grid: footprint overlaps an occupied cell")

	// ErrDuplicateBox indicates a box placed twice without removal in between.
	ErrDuplicateBox = errors.New("grid: box already placed")

	// ErrUnknownBox indicates removal of a box with no recorded placement.
	ErrUnknownBox = errors.New("grid: box not found")

	// ErrBadSnapshot indicates a snapshot that violates grid invariants.
	ErrBadSnapshot = errors.New("grid: invalid snapshot")
)
