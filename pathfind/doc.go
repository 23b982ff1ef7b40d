// Package pathfind implements A* shortest-path search for a picking agent
// traveling between two cells of an occupancy grid.
//
// The graph is the grid's free cells under 4-directional movement with
// uniform step cost 1. The heuristic is Manhattan distance to the goal,
// which is admissible and consistent on this graph, so returned paths are
// optimal (their length equals the true shortest-path distance).
//
// Path convention: the returned path EXCLUDES the start cell and INCLUDES
// the goal, so len(path) is the number of steps traveled. FindPath with
// start == goal returns an empty path and nil error; an unreachable goal
// returns ErrNoPath — callers must treat the two outcomes differently.
//
// Traversability: a neighbor is expandable iff it is in bounds and
// currently unoccupied. The grid is read as-is; the start cell is exempt
// (the agent may stand on it), but an occupied goal is unreachable by
// default, so a caller planning a retrieval approach removes the target
// box before planning. WithOccupiedGoal lifts the check for the goal cell
// alone, for moves whose destination is itself a station or a held box.
//
// Determinism: the open set is a binary min-heap ordered by f = g + h;
// entries with equal f break ties by insertion order (a monotonically
// increasing sequence number), so identical inputs always produce the
// identical path.
//
// Options:
//
//   - WithNodeLimit(n): cap on node expansions for bounded latency on
//     pathological grids; exceeding it returns ErrNodeLimit.
//   - WithOccupiedGoal(): permit the path to terminate on an occupied goal.
//   - WithOnExpand(fn): observation hook invoked as each node is expanded.
//
// Complexity: O(V log V) time with V = rows×cols in the worst case (full
// exploration), O(V) memory. Suited to grids of hundreds to a few
// thousand cells; not tuned beyond that.
//
// Errors:
//
//   - ErrNilGrid, ErrStartOutOfBounds, ErrGoalOutOfBounds, ErrBadNodeLimit:
//     caller input violations.
//   - ErrNoPath: the search space was exhausted without reaching the goal.
//   - ErrNodeLimit: the expansion cap was hit before termination.
package pathfind
