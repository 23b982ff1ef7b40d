package warehouse

import (
	"time"

	"github.com/kc099/ASRS/grid"
)

// OpKind labels a journal entry.
type OpKind string

const (
	// OpStore records a completed store operation.
	OpStore OpKind = "store"
	// OpRetrieve records a completed retrieve operation.
	OpRetrieve OpKind = "retrieve"
)

// Operation is one completed store or retrieve, as journaled for external
// statistics consumers. Distance is the Manhattan estimate between the
// agent origin and the slot, matching the legacy operations log; Steps is
// the actual outbound path length.
type Operation struct {
	ID       string // unique operation identifier
	Kind     OpKind
	Box      grid.BoxID
	Slot     grid.Cell
	Size     int
	Distance int
	Steps    int
	At       time.Time
}

// StoreResult reports a completed store: the issued box ID, the chosen
// slot, and the two travel legs (origin→slot, slot→origin). Paths follow
// the pathfind convention: start excluded, destination included.
type StoreResult struct {
	Box      grid.BoxID
	Slot     grid.Cell
	Size     int
	Outbound []grid.Cell
	Return   []grid.Cell
}

// RetrieveResult reports a completed retrieval of a box from its slot.
type RetrieveResult struct {
	Box      grid.BoxID
	Slot     grid.Cell
	Size     int
	Outbound []grid.Cell
	Return   []grid.Cell
}

// State is a plain-data copy of the full warehouse state, sufficient for
// an external persistence collaborator to serialize and later restore.
type State struct {
	Grid   grid.Snapshot
	Origin grid.Cell
	Order  []grid.BoxID // placement order, oldest first
	NextID grid.BoxID
}
