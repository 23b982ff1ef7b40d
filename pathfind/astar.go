package pathfind

import (
	"container/heap"
	"fmt"

	"github.com/kc099/ASRS/grid"
)

// neighborOffsets is the fixed 4-directional expansion order: up, down,
// left, right.
var neighborOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// FindPath computes a least-cost route from start to goal over the grid's
// free cells, 4-directional, uniform step cost. The returned path excludes
// start and includes goal; start == goal yields an empty path and nil
// error. See the package documentation for the full contract.
func FindPath(g *grid.Grid, start, goal grid.Cell, opts ...Option) ([]grid.Cell, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, start.Row, start.Col)
	}
	if !g.InBounds(goal) {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrGoalOutOfBounds, goal.Row, goal.Col)
	}
	if start == goal {
		return nil, nil
	}

	r := &runner{
		grid:   g,
		goal:   goal,
		opts:   o,
		gScore: map[grid.Cell]int{start: 0},
		parent: make(map[grid.Cell]grid.Cell),
		closed: make(map[grid.Cell]bool),
	}
	heap.Init(&r.open)
	r.push(start, 0)

	return r.search(start)
}

// runner holds the mutable state of a single A* execution.
type runner struct {
	grid   *grid.Grid
	goal   grid.Cell
	opts   Options
	open   nodePQ
	gScore map[grid.Cell]int
	parent map[grid.Cell]grid.Cell
	closed map[grid.Cell]bool
	seq    int // insertion counter, breaks f-score ties deterministically
	popped int // expansions so far, checked against NodeLimit
}

// push inserts cell with cost-so-far gc onto the open heap.
func (r *runner) push(c grid.Cell, gc int) {
	r.seq++
	heap.Push(&r.open, &node{
		cell: c,
		g:    gc,
		f:    gc + c.Manhattan(r.goal),
		seq:  r.seq,
	})
}

// search runs the main loop: pop lowest-f node, finish on goal, expand
// free neighbors. Stale heap entries (already closed) are skipped, the
// lazy-decrease-key approach.
func (r *runner) search(start grid.Cell) ([]grid.Cell, error) {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*node)
		cur := item.cell
		if r.closed[cur] {
			continue
		}
		if cur == r.goal {
			return r.reconstruct(start), nil
		}
		r.closed[cur] = true

		r.popped++
		if r.opts.NodeLimit > 0 && r.popped > r.opts.NodeLimit {
			return nil, ErrNodeLimit
		}
		r.opts.OnExpand(cur, item.g)

		for _, d := range neighborOffsets {
			next := grid.Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !r.grid.InBounds(next) {
				continue
			}
			if _, occupied := r.grid.OccupantAt(next); occupied {
				if !(r.opts.OccupiedGoal && next == r.goal) {
					continue
				}
			}
			tentative := item.g + 1
			if old, seen := r.gScore[next]; seen && tentative >= old {
				continue
			}
			r.gScore[next] = tentative
			r.parent[next] = cur
			r.push(next, tentative)
		}
	}
	return nil, ErrNoPath
}

// reconstruct walks parent pointers from the goal back to start and
// reverses, dropping the start cell per the package convention.
func (r *runner) reconstruct(start grid.Cell) []grid.Cell {
	var path []grid.Cell
	for cur := r.goal; cur != start; cur = r.parent[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// node is one open-set entry: a cell, its cost-so-far g, its priority
// f = g + heuristic, and the insertion sequence number for tie-breaks.
type node struct {
	cell grid.Cell
	g, f int
	seq  int
}

// nodePQ is a min-heap of *node ordered by f ascending, then seq ascending.
// Re-discovering a cell with a better g pushes a fresh entry; the stale one
// is ignored when popped (checked via closed).
type nodePQ []*node

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by f, breaking ties by insertion order.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap; x must be of type *node.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*node)) }

// Pop removes and returns the last element after heap reordering.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
