package astar

import (
	"container/heap"
	"math"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
	"github.com/zyedidia/generic/mapset"
)

// Find computes a route from start to end on g.
//
// Returns:
//
//   - Result with the start-to-goal waypoints, final facing and the rotations
//     recorded at each smash (goal-to-start order).
//   - ErrNoPath if end cannot be reached under the given options.
//
// Preconditions:
//  1. g must be non-nil (ErrNilGrid).
//  2. start and end must lie on the board (panics otherwise).
//
// Side effects: obstacles smashed along the returned route are marked
// Destroyed and get DestroyCost set. Nothing is written when ErrNoPath is returned.
//
// Complexity: O(V log V) time, O(V) memory.
func Find(g *grid.Grid, start, end grid.Point, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	s, e := g.IndexOf(start), g.IndexOf(end)

	// 3) Run the search over a fresh side table.
	r := &runner{
		g:       g,
		options: cfg,
		start:   start,
		end:     end,
		endIdx:  e,
		nodes:   make([]node, g.Len()),
		open:    make(openQueue, 0, g.Len()),
		closed:  mapset.New[int](),
	}
	r.init(s)

	return r.process()
}

// node is the per-search state of one tile.
type node struct {
	g      int       // accumulated cost from start
	h      float64   // heuristic estimate to goal
	f      float64   // g + h
	parent int       // predecessor index, -1 for none
	smash  int       // extra in-place actions replayed before entering this tile
	broken bool      // reached by smashing its obstacle
	item   *openItem // heap entry while in the open set, nil otherwise
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *grid.Grid
	options Options
	start   grid.Point
	end     grid.Point
	endIdx  int
	nodes   []node
	open    openQueue
	closed  mapset.Set[int]
	seq     uint64
	nbrs    []int
}

// init clears predecessors and pushes the start tile.
func (r *runner) init(s int) {
	for i := range r.nodes {
		r.nodes[i].parent = -1
	}
	n := &r.nodes[s]
	n.h = r.heuristic(s)
	n.f = n.h
	heap.Init(&r.open)
	r.push(s)
}

// process pops tiles in ascending f until the goal is finalized or the open set empties.
func (r *runner) process() (Result, error) {
	for r.open.Len() > 0 {
		item := heap.Pop(&r.open).(*openItem)
		cur := item.index
		r.nodes[cur].item = nil

		r.closed.Put(cur)
		r.options.OnExpand(r.g.Coordinate(cur))
		if cur == r.endIdx {
			return r.reconstruct(), nil
		}

		r.expand(cur)
	}

	return Result{}, ErrNoPath
}

// expand examines the cardinal neighbours of cur and prices the move onto each.
func (r *runner) expand(cur int) {
	facing := r.facingAt(cur)
	from := r.g.Coordinate(cur)

	r.nbrs = r.g.Neighbors(r.nbrs[:0], cur)
	for _, adj := range r.nbrs {
		if r.closed.Has(adj) {
			continue
		}
		tile := r.g.At(adj)
		switch {
		case tile.Walkable():
			r.consider(cur, adj, StepCost, 0)

		case r.options.Destroy && tile.Obstacle.Destructible():
			// Intact destructible: smash it, turning first unless already facing it.
			step, _ := grid.DirectionBetween(from, r.g.Coordinate(adj))
			if step == facing {
				r.consider(cur, adj, SmashAheadCost, 1)
			} else {
				r.consider(cur, adj, SmashTurnCost, 2)
			}
		}
	}
}

// consider relaxes the edge cur→adj. A tile already in the open set is only
// updated on a strictly lower g; an undiscovered tile is scored and pushed.
func (r *runner) consider(cur, adj, cost, smash int) {
	g := r.nodes[cur].g + cost
	n := &r.nodes[adj]

	if n.item != nil {
		if g >= n.g {
			return
		}
		r.link(adj, cur, g, smash)
		n.item.f = n.f
		heap.Fix(&r.open, n.item.pos)
		return
	}

	n.h = r.heuristic(adj)
	r.link(adj, cur, g, smash)
	r.push(adj)
}

// link records cur as the predecessor of adj with cost g.
func (r *runner) link(adj, cur, g, smash int) {
	n := &r.nodes[adj]
	n.g = g
	n.f = float64(g) + n.h
	n.parent = cur
	n.smash = smash
	n.broken = smash > 0
}

// push inserts tile i into the open set with the next insertion rank.
func (r *runner) push(i int) {
	item := &openItem{index: i, f: r.nodes[i].f, seq: r.seq}
	r.seq++
	r.nodes[i].item = item
	heap.Push(&r.open, item)
}

// heuristic scores tile i against the search's goal.
func (r *runner) heuristic(i int) float64 {
	return estimate(r.options.TieBreak, r.start, r.end, r.g.Coordinate(i))
}

// estimate is the scaled Euclidean distance from p to end minus the
// reversed tie-break term selected by t.
func estimate(t TieBreak, start, end, p grid.Point) float64 {
	dx1 := float64(p.X - end.X)
	dy1 := float64(p.Y - end.Y)
	dx2 := float64(start.X - end.X)
	dy2 := float64(start.Y - end.Y)

	cross := dx1*dy2 - dx2*dy1
	if t == TieBreakLegacy {
		cross = dx1*dx2 - dx2*dy1
	}
	return distanceScale*math.Sqrt(dx1*dx1+dy1*dy1) - tieBreakWeight*math.Abs(cross)
}

// facingAt is the agent's direction on tile i: the direction of the step
// that led there, or the configured start facing.
func (r *runner) facingAt(i int) grid.Direction {
	p := r.nodes[i].parent
	if p < 0 {
		return r.options.Facing
	}
	d, _ := grid.DirectionBetween(r.g.Coordinate(p), r.g.Coordinate(i))
	return d
}

// reconstruct walks predecessors from the goal back to the start, replaying
// smashes, then commits destruction onto the route's obstacles.
func (r *runner) reconstruct() Result {
	var (
		rev       = []int{r.endIdx}
		rotations []grid.Direction
		t         = r.endIdx
	)
	for r.nodes[t].parent >= 0 {
		p := r.nodes[t].parent
		n := &r.nodes[t]
		if n.broken {
			// A ruby right before a smashed tile needs no second action.
			if r.g.At(p).Holds(grid.Ruby) {
				r.nodes[p].smash = 0
			}
			if n.smash != 0 {
				d, _ := grid.DirectionBetween(r.g.Coordinate(p), r.g.Coordinate(t))
				rotations = append(rotations, d)
				for k := 0; k < n.smash; k++ {
					rev = append(rev, p)
				}
			}
		}
		t = p
		rev = append(rev, t)
	}

	// Commit destruction along the route.
	for _, i := range rev {
		n := &r.nodes[i]
		if !n.broken {
			continue
		}
		o := r.g.At(i).Obstacle
		o.Destroy()
		o.DestroyCost = n.smash
	}

	res := Result{
		Facing:    r.facingAt(r.endIdx),
		Rotations: rotations,
		Cost:      r.nodes[r.endIdx].g,
		Expanded:  r.closed.Size(),
	}

	// The agent smashes a ruby goal from the tile in front of it, so it ends
	// the route facing the ruby.
	if len(rev) > 1 && r.nodes[r.endIdx].broken && r.g.At(r.endIdx).Holds(grid.Ruby) {
		rev = rev[1:]
	}

	res.Path = make([]grid.Point, len(rev))
	for i, idx := range rev {
		res.Path[len(rev)-1-i] = r.g.Coordinate(idx)
	}

	return res
}
