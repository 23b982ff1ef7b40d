// Package asrs is the planning core of an automated storage & retrieval
// system: an occupancy grid, zone-aware slot allocation, and A* travel
// planning for the picking trolley.
//
// 🚀 What is ASRS?
//
//	A deterministic, single-writer planning engine that brings together:
//		• Occupancy grid: square-footprint place/remove with full validation
//		• Zone map: size-class → row-band layout, YAML-configurable
//		• Slot allocation: nearest-by-BFS or zone-constrained scan strategies
//		• Path planning: A* over free cells, Manhattan heuristic, optimal
//		• Warehouse façade: store/retrieve with plan-then-commit, FIFO/LIFO
//		  picks, an operation journal and snapshot persistence
//
// ✨ Why this engine?
//
//   - Deterministic – fixed expansion orders and stable tie-breaks, so the
//     same inputs always yield the same slot and the same path
//   - All-or-nothing – the grid mutates only after planning succeeds; a
//     failed operation leaves no trace
//   - Pure Go – no cgo, no background goroutines, no hidden state
//   - Observable – expansion hooks, a journal of committed operations
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/      — occupancy grid, cells, footprints, snapshots
//	zone/      — zone map and YAML layout configuration
//	allocate/  — slot-allocation strategies (NearestBFS, ZoneScan)
//	pathfind/  — A* shortest-path search for the trolley
//	warehouse/ — store/retrieve orchestration, picks, journal, persistence
//
// Quick ASCII example (5×5 rack, trolley at bottom-left):
//
//	. . . . .
//	. . . . .
//	. . . . .
//	B B . . .
//	B B . . .          B = a stored 2×2 box, trolley origin (4,0)
//
// Dive into the subpackage docs for contracts, determinism notes and
// complexity bounds.
//
//	go get github.com/kc099/ASRS
package asrs
