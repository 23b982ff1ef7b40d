package grid

// Cell identifies a single grid position by row and column.
// Valid cells satisfy 0 <= Row < rows and 0 <= Col < cols for the grid
// they are used against; Cell itself carries no bounds.
type Cell struct {
	Row, Col int
}

// Manhattan returns the Manhattan distance from c to o:
// |c.Row-o.Row| + |c.Col-o.Col|.
// It is symmetric, zero on identical cells, and admissible as an A*
// heuristic on a 4-connected grid with uniform step cost.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

// Manhattan returns the Manhattan distance between a and b.
// Exposed as a standalone metric for travel-distance statistics;
// equivalent to a.Manhattan(b).
func Manhattan(a, b Cell) int {
	return a.Manhattan(b)
}

// BoxID identifies a stored box. The zero value is reserved and never a
// valid occupant; grids report empty cells by returning ok=false rather
// than a sentinel id.
type BoxID int64

// Placement records where a box sits: its top-left anchor cell and the
// edge length of its square size×size footprint.
type Placement struct {
	Anchor Cell
	Size   int
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
