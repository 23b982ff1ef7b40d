// Package warehouse orchestrates the full store and retrieve workflows on
// top of the engine's planning components: allocate a slot, plan the
// trolley's outbound and return travel, then commit the grid mutation.
//
// Ordering guarantee: the grid is mutated only after BOTH travel legs are
// confirmed — never speculatively by a planner. On any planning failure a
// retrieval re-places the box, so no partial state is observable.
//
// Workflow detail for retrieval: the target box is removed from the grid
// BEFORE planning, so its own footprint does not block the approach to its
// anchor cell. Planning then sees the grid exactly as the trolley will.
// Return legs are planned with the home cell exempt from the occupancy
// check: a box stored on the origin never strands the trolley.
//
// Each completed operation is journaled with a unique operation ID, the
// box, the slot, the Manhattan travel estimate from the origin, and a
// timestamp — the feed for external statistics collaborators. Paths are
// returned to the caller for playback (animation, logging) and are not
// retained.
//
// Box identity: BoxIDs are issued from an internal monotonic counter, and
// placement order is tracked so callers can pick boxes FIFO (oldest first)
// or LIFO (newest first).
//
// Concurrency: none. The warehouse assumes the same single-writer,
// single-threaded discipline as the grid it owns; callers serialize
// operations.
package warehouse
