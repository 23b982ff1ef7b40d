package pathfind

import "errors"

// Sentinel errors for path planning.
var (
	// ErrNilGrid indicates a nil grid pointer was passed to FindPath.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrStartOutOfBounds indicates the start cell lies outside the grid.
	ErrStartOutOfBounds = errors.New("pathfind: start outside grid bounds")

	// ErrGoalOutOfBounds indicates the goal cell lies outside the grid.
	ErrGoalOutOfBounds = errors.New("pathfind: goal outside grid bounds")

	// ErrBadNodeLimit indicates a negative node limit option.
	ErrBadNodeLimit = errors.New("pathfind: node limit cannot be negative")

	// ErrNoPath indicates the search exhausted without reaching the goal.
	// Expected under a fully enclosed target; not a fault.
	ErrNoPath = errors.New("pathfind: no path to goal")

	// ErrNodeLimit indicates the expansion cap was reached mid-search.
	ErrNodeLimit = errors.New("pathfind: node expansion limit reached")
)
