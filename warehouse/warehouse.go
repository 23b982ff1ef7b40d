package warehouse

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kc099/ASRS/allocate"
	"github.com/kc099/ASRS/grid"
	"github.com/kc099/ASRS/pathfind"
)

// Warehouse drives store and retrieve operations over an occupancy grid,
// using a caller-chosen allocation strategy and the A* path planner.
// Construct with New; the zero Warehouse is not usable.
type Warehouse struct {
	grid     *grid.Grid
	strategy allocate.Strategy
	origin   grid.Cell
	nextID   grid.BoxID
	order    []grid.BoxID // placement order, oldest first
	journal  []Operation
	now      func() time.Time
}

// New constructs a Warehouse over g with the given allocation strategy and
// agent origin cell. The warehouse takes ownership of g's mutation; callers
// must not place or remove boxes behind its back while using FIFO/LIFO
// picks or state restore.
func New(g *grid.Grid, s allocate.Strategy, origin grid.Cell) (*Warehouse, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if s == nil {
		return nil, ErrNilStrategy
	}
	if !g.InBounds(origin) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrOriginOutOfBounds, origin.Row, origin.Col)
	}
	return &Warehouse{
		grid:     g,
		strategy: s,
		origin:   origin,
		nextID:   1,
		now:      time.Now,
	}, nil
}

// Origin returns the agent's configured origin cell.
func (w *Warehouse) Origin() grid.Cell { return w.origin }

// Grid exposes the underlying grid for read-only queries.
func (w *Warehouse) Grid() *grid.Grid { return w.grid }

// Store finds a slot for a size×size box, plans the outbound and return
// travel legs, and only then commits the placement. The new box's ID is
// issued on success. Allocation exhaustion surfaces as allocate.ErrNoSlot
// and planning failure as pathfind.ErrNoPath, both with context; neither
// mutates the grid.
func (w *Warehouse) Store(size int) (StoreResult, error) {
	slot, err := w.strategy.FindSlot(w.grid, size, w.origin)
	if err != nil {
		return StoreResult{}, fmt.Errorf("warehouse: store size %d: %w", size, err)
	}

	outbound, err := pathfind.FindPath(w.grid, w.origin, slot)
	if err != nil {
		return StoreResult{}, fmt.Errorf("warehouse: store size %d: outbound leg: %w", size, err)
	}
	// The home cell may hold a previously stored box; the trolley returns
	// to its station regardless.
	ret, err := pathfind.FindPath(w.grid, slot, w.origin, pathfind.WithOccupiedGoal())
	if err != nil {
		return StoreResult{}, fmt.Errorf("warehouse: store size %d: return leg: %w", size, err)
	}

	id := w.nextID
	if err = w.grid.Place(id, slot, size); err != nil {
		// Unreachable under the single-writer discipline: the slot was
		// free when the strategy chose it.
		return StoreResult{}, fmt.Errorf("warehouse: store size %d: %w", size, err)
	}
	w.nextID++
	w.order = append(w.order, id)
	w.log(OpStore, id, slot, size, len(outbound))

	return StoreResult{Box: id, Slot: slot, Size: size, Outbound: outbound, Return: ret}, nil
}

// Retrieve removes the box and plans the trolley's travel to its anchor
// and back. The box leaves the grid before planning so its own footprint
// does not block the approach; if either leg cannot be planned the box is
// re-placed and the failure reported, leaving state untouched.
//
// Returns grid.ErrUnknownBox (wrapped) for a stale box reference.
func (w *Warehouse) Retrieve(id grid.BoxID) (RetrieveResult, error) {
	p, ok := w.grid.Location(id)
	if !ok {
		return RetrieveResult{}, fmt.Errorf("warehouse: retrieve box %d: %w", id, grid.ErrUnknownBox)
	}
	if err := w.grid.Remove(id); err != nil {
		return RetrieveResult{}, fmt.Errorf("warehouse: retrieve box %d: %w", id, err)
	}

	outbound, err := pathfind.FindPath(w.grid, w.origin, p.Anchor)
	if err == nil {
		var ret []grid.Cell
		if ret, err = pathfind.FindPath(w.grid, p.Anchor, w.origin, pathfind.WithOccupiedGoal()); err == nil {
			w.dropFromOrder(id)
			w.log(OpRetrieve, id, p.Anchor, p.Size, len(outbound))
			return RetrieveResult{Box: id, Slot: p.Anchor, Size: p.Size, Outbound: outbound, Return: ret}, nil
		}
	}

	// Roll the removal back; the placement was valid a moment ago.
	if undoErr := w.grid.Place(id, p.Anchor, p.Size); undoErr != nil {
		return RetrieveResult{}, fmt.Errorf("warehouse: retrieve box %d: %v; rollback failed: %w", id, err, undoErr)
	}
	return RetrieveResult{}, fmt.Errorf("warehouse: retrieve box %d: %w", id, err)
}

// OldestBox returns the earliest-stored box still on the grid (FIFO pick).
func (w *Warehouse) OldestBox() (grid.BoxID, error) {
	if len(w.order) == 0 {
		return 0, ErrEmpty
	}
	return w.order[0], nil
}

// NewestBox returns the latest-stored box still on the grid (LIFO pick).
func (w *Warehouse) NewestBox() (grid.BoxID, error) {
	if len(w.order) == 0 {
		return 0, ErrEmpty
	}
	return w.order[len(w.order)-1], nil
}

// Boxes returns the stored boxes in placement order, oldest first.
func (w *Warehouse) Boxes() []grid.BoxID {
	return append([]grid.BoxID(nil), w.order...)
}

// Utilization returns the occupied fraction of the grid in [0,1].
func (w *Warehouse) Utilization() float64 {
	return float64(w.grid.OccupiedCount()) / float64(w.grid.Rows()*w.grid.Cols())
}

// Journal returns a copy of the operation journal, oldest first.
func (w *Warehouse) Journal() []Operation {
	return append([]Operation(nil), w.journal...)
}

// log appends a journal entry for a committed operation.
func (w *Warehouse) log(kind OpKind, id grid.BoxID, slot grid.Cell, size, steps int) {
	w.journal = append(w.journal, Operation{
		ID:       uuid.NewString(),
		Kind:     kind,
		Box:      id,
		Slot:     slot,
		Size:     size,
		Distance: grid.Manhattan(w.origin, slot),
		Steps:    steps,
		At:       w.now(),
	})
}

// dropFromOrder removes id from the placement-order list.
func (w *Warehouse) dropFromOrder(id grid.BoxID) {
	for i, b := range w.order {
		if b == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			return
		}
	}
}

// State captures the full warehouse state for external persistence. The
// journal is deliberately excluded: it is reporting output, not placement
// state.
func (w *Warehouse) State() State {
	return State{
		Grid:   w.grid.Snapshot(),
		Origin: w.origin,
		Order:  append([]grid.BoxID(nil), w.order...),
		NextID: w.nextID,
	}
}

// Restore rebuilds a Warehouse from a previously captured State, using the
// given allocation strategy. Returns ErrBadState (wrapping the violation)
// if the snapshot is inconsistent: an invalid grid, an order list that does
// not exactly cover the placed boxes, or an ID counter that would reissue a
// live box ID.
func Restore(st State, s allocate.Strategy) (*Warehouse, error) {
	g, err := grid.FromSnapshot(st.Grid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadState, err)
	}
	if st.NextID < 1 {
		return nil, fmt.Errorf("%w: next id %d", ErrBadState, st.NextID)
	}
	if len(st.Order) != g.Boxes() {
		return nil, fmt.Errorf("%w: order lists %d boxes, grid holds %d", ErrBadState, len(st.Order), g.Boxes())
	}
	seen := make(map[grid.BoxID]bool, len(st.Order))
	for _, id := range st.Order {
		if _, ok := g.Location(id); !ok {
			return nil, fmt.Errorf("%w: ordered box %d not on grid", ErrBadState, id)
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: box %d listed twice", ErrBadState, id)
		}
		seen[id] = true
		if id >= st.NextID {
			return nil, fmt.Errorf("%w: box %d not below next id %d", ErrBadState, id, st.NextID)
		}
	}

	w, err := New(g, s, st.Origin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadState, err)
	}
	w.nextID = st.NextID
	w.order = append([]grid.BoxID(nil), st.Order...)
	return w, nil
}
