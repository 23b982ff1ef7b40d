package pathfind

import "github.com/kc099/ASRS/grid"

// Option configures FindPath behavior via functional arguments. An invalid
// option (e.g. a negative node limit) is recorded internally and surfaced
// when FindPath is invoked.
type Option func(*Options)

// Options holds tunable parameters for a single search.
type Options struct {
	// NodeLimit, if > 0, aborts the search with ErrNodeLimit after that
	// many node expansions. 0 disables the cap.
	NodeLimit int

	// OnExpand is called as each node is popped for expansion, with the
	// cell and its exact cost-so-far from the start.
	OnExpand func(c grid.Cell, g int)

	// OccupiedGoal exempts the goal cell from the occupancy check, so a
	// route may terminate on an occupied cell. Intermediate cells must
	// still be free.
	OccupiedGoal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: no expansion cap and
// a no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		NodeLimit: 0,
		OnExpand:  func(grid.Cell, int) {},
	}
}

// WithNodeLimit caps node expansions at n.
//
//	n > 0: abort with ErrNodeLimit after n expansions
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrBadNodeLimit
func WithNodeLimit(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrBadNodeLimit
			return
		}
		o.NodeLimit = n
	}
}

// WithOccupiedGoal permits the search to enter the goal cell even when it
// is occupied. Intended for approach moves whose destination is itself a
// station or a held box, such as a trolley returning to its home cell.
func WithOccupiedGoal() Option {
	return func(o *Options) { o.OccupiedGoal = true }
}

// WithOnExpand registers a callback to observe node expansion order.
func WithOnExpand(fn func(c grid.Cell, g int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
