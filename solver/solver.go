package solver

import (
	"errors"
	"fmt"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/astar"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/permute"
	"github.com/sirupsen/logrus"
)

// errPruned marks a partial tour that can no longer beat the best one found.
var errPruned = errors.New("solver: tour pruned")

// Solve searches the goal visiting orders of g from start.
//
// Contracts:
//   - g must be non-nil; every goal and start must lie on g (otherwise astar.Find panics).
//   - len(goals) ≤ Options.MaxGoals.
//
// An unreachable leg abandons its permutation; it is not an error. When no
// permutation completes, the Result carries StatusNoSolution and a nil Path.
//
// On return the obstacles of g are in the state left by the returned tour
// (see WithResetBricks for what that means with reset off). Without a
// solution they are in the state left by the last permutation tried.
func Solve(g *grid.Grid, start grid.Point, goals []grid.Goal, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if len(goals) > o.MaxGoals {
		return Result{}, fmt.Errorf("%w: %d goals, limit %d", ErrTooManyGoals, len(goals), o.MaxGoals)
	}

	s := &search{g: g, start: start, goals: goals, opts: o, log: o.Logger}
	return s.run()
}

// EvaluateOrder walks one fixed visiting order in isolation, starting from a
// reset board. It returns astar.ErrNoPath (wrapped) if a leg is unreachable.
// Status is StatusMatched when the tour fits Options.Bound, StatusBestEffort
// otherwise.
func EvaluateOrder(g *grid.Grid, start grid.Point, goals []grid.Goal, order []int, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !isPermutation(order, len(goals)) {
		return Result{}, fmt.Errorf("%w: %v for %d goals", ErrBadOrder, order, len(goals))
	}

	s := &search{g: g, start: start, goals: goals, opts: o, log: o.Logger}
	t, err := s.walk(order, -1)
	if err != nil {
		return Result{Status: StatusNoSolution, Permutations: 1, Legs: s.legs},
			fmt.Errorf("solver: order %v: %w", order, err)
	}
	if !t.complete {
		return Result{Status: StatusNoSolution, Permutations: 1, Legs: s.legs}, nil
	}

	res := s.result(order, t)
	res.Permutations = 1
	if len(t.path) <= o.Bound {
		res.Status = StatusMatched
	}
	return res, nil
}

// search holds the state shared by every permutation of one Solve call.
type search struct {
	g     *grid.Grid
	start grid.Point
	goals []grid.Goal
	opts  Options
	log   logrus.FieldLogger
	legs  int
}

// tour is one permutation walked so far.
type tour struct {
	path      []grid.Point
	rotations []grid.Direction
	facing    grid.Direction
	collected []int
	complete  bool
}

// run enumerates permutations until the bound is met or all are exhausted.
func (s *search) run() (Result, error) {
	var (
		best  = Result{Status: StatusNoSolution}
		state grid.State
		found bool
		perms int
	)

	for order := range permute.New(len(s.goals)).All() {
		perms++

		// 1) Walk the order; once a tour is known, stop partial tours that reach its length.
		limit := -1
		if found {
			limit = len(best.Path)
		}
		t, err := s.walk(order, limit)
		switch {
		case errors.Is(err, astar.ErrNoPath):
			s.log.WithField("order", order).Debug("permutation abandoned: unreachable leg")
			continue
		case errors.Is(err, errPruned):
			continue
		case err != nil:
			return Result{}, err
		}
		if !t.complete {
			continue
		}

		// 2) Keep the shortest complete tour; the first one wins ties.
		if found && len(t.path) >= len(best.Path) {
			continue
		}
		best = s.result(order, t)
		state = s.g.State()
		found = true
		s.log.WithFields(logrus.Fields{"order": order, "moves": len(t.path)}).Debug("new best tour")

		// 3) A tour within the known best ends the search.
		if len(t.path) <= s.opts.Bound {
			best.Status = StatusMatched
			break
		}
	}

	// Leave the board as the returned tour left it.
	if found {
		s.g.Restore(state)
	}

	best.Permutations = perms
	best.Legs = s.legs
	s.log.WithFields(logrus.Fields{
		"status":       best.Status,
		"moves":        len(best.Path),
		"bound":        s.opts.Bound,
		"order":        best.Order,
		"permutations": perms,
		"legs":         s.legs,
	}).Info("solve finished")

	return best, nil
}

// walk resets the board and follows order leg by leg. Goals already
// completed by earlier legs are skipped. If limit ≥ 0 and the incomplete
// tour reaches limit moves, walk returns errPruned.
func (s *search) walk(order []int, limit int) (tour, error) {
	s.g.ResetObstacles(s.opts.ResetBricks)

	t := tour{facing: s.opts.Facing}
	pos := s.start
	s.collect(&t, 0)
	for _, gi := range order {
		if s.done(t.path, s.goals[gi]) {
			continue
		}

		res, err := astar.Find(s.g, pos, s.goals[gi].Point,
			astar.WithDestroy(s.opts.Destroy),
			astar.WithFacing(t.facing),
			astar.WithTieBreak(s.opts.TieBreak),
		)
		s.legs++
		if err != nil {
			return t, err
		}

		// The leg's first waypoint is the current position.
		from := len(t.path)
		t.path = append(t.path, res.Path[1:]...)
		for i := len(res.Rotations) - 1; i >= 0; i-- {
			t.rotations = append(t.rotations, res.Rotations[i])
		}
		pos = res.Path[len(res.Path)-1]
		t.facing = res.Facing
		s.collect(&t, from)

		if s.allDone(t.path) {
			t.complete = true
			return t, nil
		}
		if limit >= 0 && len(t.path) >= limit {
			return t, errPruned
		}
	}
	t.complete = s.allDone(t.path)
	return t, nil
}

// done reports whether goal is completed by path.
func (s *search) done(path []grid.Point, goal grid.Goal) bool {
	if goal.Obstacle != nil && goal.Obstacle.Kind == grid.Ruby {
		return goal.Obstacle.Destroyed
	}
	if goal.Point == s.start {
		return true
	}
	for _, p := range path {
		if p == goal.Point {
			return true
		}
	}
	return false
}

// collect appends to t.collected the goals completed by t.path[from:], in
// path order. A Ruby smashed from the last waypoint comes after the waypoints
// of its leg; goals under the start tile come first.
func (s *search) collect(t *tour, from int) {
	seen := make([]bool, len(s.goals))
	for _, gi := range t.collected {
		seen[gi] = true
	}
	add := func(gi int) {
		seen[gi] = true
		t.collected = append(t.collected, gi)
	}

	for _, p := range t.path[from:] {
		for gi, goal := range s.goals {
			if seen[gi] || goal.Point != p {
				continue
			}
			if goal.Obstacle == nil || goal.Obstacle.Kind != grid.Ruby || goal.Obstacle.Destroyed {
				add(gi)
			}
		}
	}
	for gi, goal := range s.goals {
		if !seen[gi] && s.done(t.path, goal) {
			add(gi)
		}
	}
}

func (s *search) allDone(path []grid.Point) bool {
	for _, goal := range s.goals {
		if !s.done(path, goal) {
			return false
		}
	}
	return true
}

func (s *search) result(order []int, t tour) Result {
	return Result{
		Path:      t.path,
		Rotations: t.rotations,
		Order:     order,
		Collected: t.collected,
		Facing:    t.facing,
		Status:    StatusBestEffort,
	}
}

func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
