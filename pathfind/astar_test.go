package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kc099/ASRS/grid"
	"github.com/kc099/ASRS/pathfind"
)

func mustGrid(t *testing.T, rows, cols int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, cols)
	require.NoError(t, err)
	return g
}

// occupy places 1×1 boxes on the given cells.
var nextBoxID = grid.BoxID(1000)

func occupy(t *testing.T, g *grid.Grid, cells ...grid.Cell) {
	t.Helper()
	for _, c := range cells {
		require.NoError(t, g.Place(nextBoxID, c, 1))
		nextBoxID++
	}
}

// bfsDistance is an independent reference: plain breadth-first search over
// the same free-cell graph, returning the step count to goal or -1.
func bfsDistance(g *grid.Grid, start, goal grid.Cell) int {
	type item struct {
		cell grid.Cell
		dist int
	}
	visited := map[grid.Cell]bool{start: true}
	queue := []item{{start, 0}}
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur.cell == goal {
			return cur.dist
		}
		for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			next := grid.Cell{Row: cur.cell.Row + d[0], Col: cur.cell.Col + d[1]}
			if !g.InBounds(next) || visited[next] {
				continue
			}
			if _, occ := g.OccupantAt(next); occ {
				continue
			}
			visited[next] = true
			queue = append(queue, item{next, cur.dist + 1})
		}
	}
	return -1
}

// requireContiguous asserts each consecutive pair differs by one step in
// one axis and that the path obeys the exclude-start/include-goal
// convention.
func requireContiguous(t *testing.T, path []grid.Cell, start, goal grid.Cell) {
	t.Helper()
	prev := start
	for i, c := range path {
		require.Equal(t, 1, grid.Manhattan(prev, c), "step %d: %v -> %v is not adjacent", i, prev, c)
		prev = c
	}
	if len(path) > 0 {
		require.Equal(t, goal, path[len(path)-1])
		require.NotEqual(t, start, path[0])
	}
}

//----------------------------------------------------------------------------//
// Input validation
//----------------------------------------------------------------------------//

func TestFindPath_InputErrors(t *testing.T) {
	g := mustGrid(t, 5, 5)

	_, err := pathfind.FindPath(nil, grid.Cell{}, grid.Cell{})
	require.ErrorIs(t, err, pathfind.ErrNilGrid)

	_, err = pathfind.FindPath(g, grid.Cell{Row: -1, Col: 0}, grid.Cell{})
	require.ErrorIs(t, err, pathfind.ErrStartOutOfBounds)

	_, err = pathfind.FindPath(g, grid.Cell{}, grid.Cell{Row: 0, Col: 5})
	require.ErrorIs(t, err, pathfind.ErrGoalOutOfBounds)

	_, err = pathfind.FindPath(g, grid.Cell{}, grid.Cell{Row: 4, Col: 4}, pathfind.WithNodeLimit(-1))
	require.ErrorIs(t, err, pathfind.ErrBadNodeLimit)
}

//----------------------------------------------------------------------------//
// Basic routing
//----------------------------------------------------------------------------//

// TestFindPath_EmptyGrid: 5×5 empty grid, (0,0)→(4,4) returns exactly the
// Manhattan distance of 8 adjacent steps.
func TestFindPath_EmptyGrid(t *testing.T) {
	g := mustGrid(t, 5, 5)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4}

	path, err := pathfind.FindPath(g, start, goal)
	require.NoError(t, err)
	require.Len(t, path, 8)
	requireContiguous(t, path, start, goal)
}

// TestFindPath_StartEqualsGoal returns an empty path with nil error —
// distinct from the unreachable case.
func TestFindPath_StartEqualsGoal(t *testing.T) {
	g := mustGrid(t, 5, 5)
	c := grid.Cell{Row: 2, Col: 2}

	path, err := pathfind.FindPath(g, c, c)
	require.NoError(t, err)
	require.Empty(t, path)
}

// TestFindPath_Detour: row 1 fully occupied except column 4 forces the
// route through (1,4); length still matches the independent BFS distance
//.
func TestFindPath_Detour(t *testing.T) {
	g := mustGrid(t, 5, 5)
	occupy(t, g,
		grid.Cell{Row: 1, Col: 0}, grid.Cell{Row: 1, Col: 1},
		grid.Cell{Row: 1, Col: 2}, grid.Cell{Row: 1, Col: 3},
	)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4}

	path, err := pathfind.FindPath(g, start, goal)
	require.NoError(t, err)
	requireContiguous(t, path, start, goal)
	require.Contains(t, path, grid.Cell{Row: 1, Col: 4}, "route must pass through the only gap")
	require.GreaterOrEqual(t, len(path), 8)
	require.Equal(t, bfsDistance(g, start, goal), len(path))
}

// TestFindPath_ThroughGap: a goal walled in on all sides except one gap is
// reachable only through the gap; sealing the gap makes it unreachable
//.
func TestFindPath_ThroughGap(t *testing.T) {
	g := mustGrid(t, 5, 5)
	// Goal (2,2) enclosed except the gap at (1,2).
	occupy(t, g,
		grid.Cell{Row: 2, Col: 1}, grid.Cell{Row: 2, Col: 3}, grid.Cell{Row: 3, Col: 2},
	)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 2, Col: 2}

	path, err := pathfind.FindPath(g, start, goal)
	require.NoError(t, err)
	requireContiguous(t, path, start, goal)
	require.Contains(t, path, grid.Cell{Row: 1, Col: 2}, "route must traverse the gap")
	require.Equal(t, bfsDistance(g, start, goal), len(path))

	// Seal the gap: now unreachable.
	occupy(t, g, grid.Cell{Row: 1, Col: 2})
	_, err = pathfind.FindPath(g, start, goal)
	require.ErrorIs(t, err, pathfind.ErrNoPath)
}

// TestFindPath_StartMayBeOccupied: the agent's own cell does not block
// departure.
func TestFindPath_StartMayBeOccupied(t *testing.T) {
	g := mustGrid(t, 4, 4)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 3, Col: 3}
	occupy(t, g, start)

	path, err := pathfind.FindPath(g, start, goal)
	require.NoError(t, err)
	require.Len(t, path, 6)
	requireContiguous(t, path, start, goal)
}

// TestFindPath_OccupiedGoal: the grid is read as-is, so a goal still
// holding its box is unreachable — callers remove the target first.
func TestFindPath_OccupiedGoal(t *testing.T) {
	g := mustGrid(t, 4, 4)
	goal := grid.Cell{Row: 3, Col: 3}
	occupy(t, g, goal)

	_, err := pathfind.FindPath(g, grid.Cell{Row: 0, Col: 0}, goal)
	require.ErrorIs(t, err, pathfind.ErrNoPath)
}

// TestFindPath_WithOccupiedGoal: the exemption admits the goal cell alone;
// other occupied cells still force a detour or a failure.
func TestFindPath_WithOccupiedGoal(t *testing.T) {
	g := mustGrid(t, 4, 4)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 3, Col: 3}
	occupy(t, g, goal)

	path, err := pathfind.FindPath(g, start, goal, pathfind.WithOccupiedGoal())
	require.NoError(t, err)
	require.Len(t, path, 6)
	requireContiguous(t, path, start, goal)

	// Sealing off the goal's free neighbors defeats the exemption.
	occupy(t, g, grid.Cell{Row: 2, Col: 3})
	occupy(t, g, grid.Cell{Row: 3, Col: 2})
	_, err = pathfind.FindPath(g, start, goal, pathfind.WithOccupiedGoal())
	require.ErrorIs(t, err, pathfind.ErrNoPath)
}

//----------------------------------------------------------------------------//
// Optimality
//----------------------------------------------------------------------------//

// TestFindPath_Optimality cross-checks A* path lengths against an
// independent BFS over every free start/goal pair of an obstacle grid.
func TestFindPath_Optimality(t *testing.T) {
	g := mustGrid(t, 6, 6)
	occupy(t, g,
		grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 1, Col: 2}, grid.Cell{Row: 1, Col: 3},
		grid.Cell{Row: 3, Col: 2}, grid.Cell{Row: 3, Col: 3}, grid.Cell{Row: 3, Col: 4},
		grid.Cell{Row: 4, Col: 0}, grid.Cell{Row: 2, Col: 5},
	)

	var free []grid.Cell
	for r := 0; r < 6; r++ {
		for c := 0; c < 6; c++ {
			cell := grid.Cell{Row: r, Col: c}
			if _, occ := g.OccupantAt(cell); !occ {
				free = append(free, cell)
			}
		}
	}

	for _, start := range free {
		for _, goal := range free {
			want := bfsDistance(g, start, goal)
			path, err := pathfind.FindPath(g, start, goal)
			switch {
			case start == goal:
				require.NoError(t, err)
				require.Empty(t, path)
			case want < 0:
				require.ErrorIs(t, err, pathfind.ErrNoPath, "%v -> %v", start, goal)
			default:
				require.NoError(t, err, "%v -> %v", start, goal)
				require.Equal(t, want, len(path), "%v -> %v", start, goal)
				requireContiguous(t, path, start, goal)
			}
		}
	}
}

// TestFindPath_Deterministic: repeated identical searches return the
// identical path, byte for byte.
func TestFindPath_Deterministic(t *testing.T) {
	g := mustGrid(t, 8, 8)
	occupy(t, g,
		grid.Cell{Row: 2, Col: 2}, grid.Cell{Row: 2, Col: 3},
		grid.Cell{Row: 5, Col: 5}, grid.Cell{Row: 4, Col: 1},
	)
	start, goal := grid.Cell{Row: 7, Col: 0}, grid.Cell{Row: 0, Col: 7}

	first, err := pathfind.FindPath(g, start, goal)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := pathfind.FindPath(g, start, goal)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

//----------------------------------------------------------------------------//
// Options
//----------------------------------------------------------------------------//

// TestFindPath_NodeLimit aborts a long search but leaves short ones alone.
func TestFindPath_NodeLimit(t *testing.T) {
	g := mustGrid(t, 10, 10)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 9, Col: 9}

	_, err := pathfind.FindPath(g, start, goal, pathfind.WithNodeLimit(3))
	require.ErrorIs(t, err, pathfind.ErrNodeLimit)

	path, err := pathfind.FindPath(g, start, goal, pathfind.WithNodeLimit(0))
	require.NoError(t, err)
	require.Len(t, path, 18)
}

// TestFindPath_OnExpand observes monotonically plausible expansion: the
// first expanded node is the start at cost 0, and costs never exceed the
// final path length.
func TestFindPath_OnExpand(t *testing.T) {
	g := mustGrid(t, 5, 5)
	start, goal := grid.Cell{Row: 0, Col: 0}, grid.Cell{Row: 4, Col: 4}

	type expansion struct {
		cell grid.Cell
		g    int
	}
	var seen []expansion
	path, err := pathfind.FindPath(g, start, goal,
		pathfind.WithOnExpand(func(c grid.Cell, cost int) {
			seen = append(seen, expansion{c, cost})
		}))
	require.NoError(t, err)
	require.NotEmpty(t, seen)
	require.Equal(t, expansion{start, 0}, seen[0])
	for _, e := range seen {
		require.LessOrEqual(t, e.g, len(path))
	}
}
