// Package grid implements the occupancy grid at the heart of the storage
// engine: a rectangular rows×cols field of cells, each holding at most one
// box, with footprint-level placement and removal.
//
// What:
//
//   - Cell: an integer (row, col) coordinate with a Manhattan metric.
//   - BoxID: a typed occupant identifier recorded in cells to mark ownership.
//   - Grid: the single authoritative owner of placement state. Supports
//     Place/Remove of square footprints anchored at their top-left cell,
//     pure occupancy queries, an O(1) reverse lookup from box to placement,
//     and full-state snapshots for external persistence.
//
// Why:
//
//   - Slot allocation: allocators test IsFreeFootprint over candidate anchors.
//   - Travel planning: path planners treat occupied cells as obstacles.
//   - Capacity reporting: OccupiedCount feeds utilization statistics.
//
// Invariants (hold between any two calls):
//
//   - A cell maps to at most one box.
//   - Every cell spanned by a recorded placement maps to that box, and no
//     other box claims any of those cells.
//   - Place and Remove are atomic: they validate fully before mutating, so
//     no partial footprint is ever observable.
//
// Concurrency: none. The grid assumes a single-writer, single-threaded
// mutation discipline; callers that plan and mutate from multiple goroutines
// must serialize the whole plan→confirm→mutate sequence themselves.
//
// Errors:
//
//   - ErrBadDimensions: grid constructed with a non-positive extent.
//   - ErrBadFootprint: footprint size below 1.
//   - ErrBadBoxID: the zero BoxID used as an occupant.
//   - ErrOutOfBounds: anchor+size exceeds the grid extents.
//   - ErrCollision: footprint overlaps an already-occupied cell.
//   - ErrDuplicateBox: a box placed twice without an intervening Remove.
//   - ErrUnknownBox: removal of a box with no recorded placement.
//   - ErrBadSnapshot: restoring a snapshot that violates the invariants.
package grid
