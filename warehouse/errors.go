package warehouse

import "errors"

// Sentinel errors for warehouse construction and operation.
var (
	// ErrNilGrid indicates a nil grid was passed to New.
	ErrNilGrid = errors.New("warehouse: grid is nil")

	// ErrNilStrategy indicates a nil allocation strategy was passed to New.
	ErrNilStrategy = errors.New("warehouse: allocation strategy is nil")

	// ErrOriginOutOfBounds indicates the agent origin lies outside the grid.
	ErrOriginOutOfBounds = errors.New("warehouse: origin outside grid bounds")

	// ErrEmpty indicates a FIFO/LIFO pick on a warehouse with no boxes.
	ErrEmpty = errors.New("warehouse: no boxes stored")

	// ErrBadState indicates a restore of inconsistent warehouse state.
	ErrBadState = errors.New("warehouse: invalid state")
)
