package solver_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/astar"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/command"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/permute"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/solver"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y int) grid.Point { return grid.Point{X: x, Y: y} }

// row builds a w×1 board with stars at the given columns.
func row(t *testing.T, w int, stars ...int) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, 1)
	require.NoError(t, err)
	for _, x := range stars {
		require.NoError(t, g.Place(pt(x, 0), grid.NewStar()))
	}
	return g
}

// layout builds a board from rows of '.' empty, 'D' destroyable brick,
// '#' permanent brick, 'S' star, 'H' hammer and 'R' ruby.
func layout(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.New(len(rows[0]), len(rows))
	require.NoError(t, err)
	for y, r := range rows {
		for x, c := range r {
			var o *grid.Obstacle
			switch c {
			case 'D':
				o = grid.NewBrick(true)
			case '#':
				o = grid.NewBrick(false)
			case 'S':
				o = grid.NewStar()
			case 'H':
				o = grid.NewHammer()
			case 'R':
				o = grid.NewRuby()
			}
			require.NoError(t, g.Place(pt(x, y), o))
		}
	}
	return g
}

func TestSolve_MatchesBoundOnFirstOrder(t *testing.T) {
	g := row(t, 3, 1, 2)
	res, err := solver.Solve(g, pt(0, 0), g.Goals(), solver.WithBound(2))
	require.NoError(t, err)

	assert.Equal(t, solver.StatusMatched, res.Status)
	assert.Equal(t, []grid.Point{pt(1, 0), pt(2, 0)}, res.Path)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, 1, res.Permutations)
	assert.Equal(t, 2, res.Moves())
}

func TestSolve_BestEffortKeepsFirstShortest(t *testing.T) {
	g := row(t, 3, 1, 2)
	res, err := solver.Solve(g, pt(0, 0), g.Goals(), solver.WithBound(1))
	require.NoError(t, err)

	assert.Equal(t, solver.StatusBestEffort, res.Status)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, 2, res.Moves())
	assert.Equal(t, 2, res.Permutations)
	// [0 1] needs two legs; [1 0] completes both stars on its first leg.
	assert.Equal(t, 3, res.Legs)
}

func TestSolve_ExhaustsAllOrders(t *testing.T) {
	g := row(t, 5, 1, 2, 4)
	res, err := solver.Solve(g, pt(0, 0), g.Goals(), solver.WithBound(1))
	require.NoError(t, err)

	assert.Equal(t, int(permute.Count(3)), res.Permutations)
	assert.Equal(t, solver.StatusBestEffort, res.Status)
	assert.Equal(t, 4, res.Moves())
}

func TestSolve_UnreachableGoalMeansNoSolution(t *testing.T) {
	g, err := grid.New(3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Place(pt(1, 0), grid.NewStar()))
	require.NoError(t, g.Place(pt(2, 0), grid.NewBrick(false)))
	require.NoError(t, g.Place(pt(1, 1), grid.NewBrick(false)))
	require.NoError(t, g.Place(pt(2, 1), grid.NewStar()))

	res, err := solver.Solve(g, pt(0, 0), g.Goals(), solver.WithBound(3), solver.WithDestroy(true))
	require.NoError(t, err)
	assert.Equal(t, solver.StatusNoSolution, res.Status)
	assert.Nil(t, res.Path)
	assert.Nil(t, res.Order)
	assert.Equal(t, 2, res.Permutations)
}

func TestSolve_RubyGoal(t *testing.T) {
	g := row(t, 3, 1)
	ruby := grid.NewRuby()
	require.NoError(t, g.Place(pt(2, 0), ruby))

	res, err := solver.Solve(g, pt(0, 0), g.Goals(),
		solver.WithBound(2),
		solver.WithDestroy(true),
		solver.WithFacing(grid.Right),
	)
	require.NoError(t, err)
	assert.Equal(t, solver.StatusMatched, res.Status)
	assert.Equal(t, []grid.Point{pt(1, 0), pt(1, 0)}, res.Path)
	assert.Equal(t, []grid.Direction{grid.Right}, res.Rotations)
	assert.True(t, ruby.Destroyed, "board reflects the returned tour")
}

func TestSolve_RotationsChronological(t *testing.T) {
	// B # . # *    bot faces right; both bricks need a smash.
	g, err := grid.New(5, 2)
	require.NoError(t, err)
	require.NoError(t, g.Place(pt(1, 0), grid.NewBrick(true)))
	require.NoError(t, g.Place(pt(3, 0), grid.NewBrick(true)))
	require.NoError(t, g.Place(pt(2, 0), grid.NewStar()))
	require.NoError(t, g.Place(pt(4, 1), grid.NewStar()))
	for x := 0; x < 4; x++ {
		require.NoError(t, g.Place(pt(x, 1), grid.NewBrick(false)))
	}

	res, err := solver.Solve(g, pt(0, 0), g.Goals(), solver.WithDestroy(true), solver.WithFacing(grid.Right))
	require.NoError(t, err)
	// Second leg turns down at (4,0) after the second smash faced right.
	require.Equal(t, []grid.Direction{grid.Right, grid.Right}, res.Rotations)
	require.Equal(t, pt(4, 1), res.Path[len(res.Path)-1])
	require.Equal(t, grid.Down, res.Facing)
}

func TestSolve_Deterministic(t *testing.T) {
	g := randomBoard(rand.New(rand.NewSource(3)), 6, 6, 4)
	goals := g.Goals()

	first, err := solver.Solve(g, pt(0, 0), goals, solver.WithDestroy(true))
	require.NoError(t, err)
	second, err := solver.Solve(g, pt(0, 0), goals, solver.WithDestroy(true))
	require.NoError(t, err)

	require.Equal(t, first.Path, second.Path)
	require.Equal(t, first.Rotations, second.Rotations)
	require.Equal(t, first.Order, second.Order)
	require.Equal(t, first.Status, second.Status)
}

// TestSolve_NoWorseThanAnyOrder compares Solve against every fixed order on random boards.
func TestSolve_NoWorseThanAnyOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		g := randomBoard(rng, 4+rng.Intn(3), 4+rng.Intn(3), 3)
		goals := g.Goals()
		hammer := trial%2 == 0

		best, err := solver.Solve(g, pt(0, 0), goals, solver.WithDestroy(hammer))
		require.NoError(t, err)

		for order := range permute.New(len(goals)).All() {
			fixed, err := solver.EvaluateOrder(g, pt(0, 0), goals, order, solver.WithDestroy(hammer))
			if errors.Is(err, astar.ErrNoPath) {
				continue
			}
			require.NoError(t, err)
			require.NotEqual(t, solver.StatusNoSolution, best.Status, "order %v completes", order)
			require.ElementsMatch(t, order, best.Collected, "trial %d collects every goal once", trial)
			require.LessOrEqual(t, best.Moves(), fixed.Moves(), "trial %d order %v", trial, order)
		}
	}
}

func TestSolve_StarUnderStart(t *testing.T) {
	g := layout(t, "SS.")
	res, err := solver.Solve(g, pt(0, 0), g.Goals())
	require.NoError(t, err)

	assert.Equal(t, solver.StatusBestEffort, res.Status)
	assert.Equal(t, []grid.Point{pt(1, 0)}, res.Path)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, []int{0, 1}, res.Collected)
	// Neither order routes to the start tile.
	assert.Equal(t, 2, res.Legs)
}

func TestSolve_RubyUnderStartIsNeverSmashed(t *testing.T) {
	g := layout(t, "R.")
	res, err := solver.Solve(g, pt(0, 0), g.Goals(), solver.WithDestroy(true))
	require.NoError(t, err)

	assert.Equal(t, solver.StatusNoSolution, res.Status)
	assert.Nil(t, res.Path)
	assert.Equal(t, 1, res.Permutations)
	assert.Equal(t, 1, res.Legs)
}

func TestSolve_CollectedFollowsPath(t *testing.T) {
	// The leg to the far star crosses the near one.
	g := layout(t, "SS.")
	res, err := solver.Solve(g, pt(2, 0), g.Goals(), solver.WithFacing(grid.Left))
	require.NoError(t, err)

	assert.Equal(t, []grid.Point{pt(1, 0), pt(0, 0)}, res.Path)
	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, []int{1, 0}, res.Collected)
}

func TestSolve_FacingAfterRubyPricesNextSmash(t *testing.T) {
	// . . D S
	// # R # #   the ruby is smashed facing down; the brick then needs a turn.
	g := layout(t, "..DS", "#R##")
	res, err := solver.Solve(g, pt(0, 0), g.Goals(), solver.WithDestroy(true), solver.WithFacing(grid.Right))
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0}, res.Order)
	assert.Equal(t, []grid.Point{pt(1, 0), pt(1, 0), pt(1, 0), pt(1, 0), pt(1, 0), pt(2, 0), pt(3, 0)}, res.Path)
	assert.Equal(t, []grid.Direction{grid.Down, grid.Right}, res.Rotations)

	cmds, err := command.Translate(res.Path, pt(0, 0), grid.Right, res.Rotations)
	require.NoError(t, err)
	assert.Equal(t, []string{"right", "down", "smash", "right", "smash", "right", "right"}, cmds)
}

func TestSolve_KeepBricksLeavesReturnedTourState(t *testing.T) {
	// . . . .
	// S D . S   order [1 0] smashes the brick but loses to [0 1].
	g := layout(t, "....", "SD.S")
	brick := g.Tile(pt(1, 1)).Obstacle

	res, err := solver.Solve(g, pt(0, 0), g.Goals(),
		solver.WithDestroy(true),
		solver.WithFacing(grid.Right),
		solver.WithResetBricks(false),
	)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, res.Order)
	assert.Equal(t, []grid.Point{pt(0, 1), pt(0, 0), pt(1, 0), pt(2, 0), pt(3, 0), pt(3, 1)}, res.Path)
	assert.Equal(t, 2, res.Permutations)
	assert.False(t, brick.Destroyed, "the returned tour never smashes the brick")

	again, err := solver.Solve(g, pt(0, 0), g.Goals(),
		solver.WithDestroy(true),
		solver.WithFacing(grid.Right),
		solver.WithResetBricks(false),
	)
	require.NoError(t, err)
	assert.Equal(t, res.Path, again.Path)
}

func TestSolve_TieBreakIsPassedToLegs(t *testing.T) {
	// . . # .
	// . . D .   the two tie-break terms pick different routes to (3,1).
	g := layout(t, "..#.", "..D.")
	target := []grid.Goal{{Index: g.Index(3, 1), Point: pt(3, 1)}}

	cross, err := solver.EvaluateOrder(g, pt(0, 0), target, []int{0},
		solver.WithDestroy(true), solver.WithFacing(grid.Right))
	require.NoError(t, err)
	legacy, err := solver.EvaluateOrder(g, pt(0, 0), target, []int{0},
		solver.WithDestroy(true), solver.WithFacing(grid.Right), solver.WithTieBreak(astar.TieBreakLegacy))
	require.NoError(t, err)

	assert.Equal(t, 6, cross.Moves())
	assert.Equal(t, 5, legacy.Moves())
}

func TestEvaluateOrder_ResetBricks(t *testing.T) {
	g := row(t, 3, 2)
	brick := grid.NewBrick(true)
	require.NoError(t, g.Place(pt(1, 0), brick))

	brick.Destroy()
	res, err := solver.EvaluateOrder(g, pt(0, 0), g.Goals(), []int{0}, solver.WithResetBricks(false))
	require.NoError(t, err)
	require.Equal(t, 2, res.Moves())

	_, err = solver.EvaluateOrder(g, pt(0, 0), g.Goals(), []int{0})
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.False(t, brick.Destroyed)
}

func TestSolve_Errors(t *testing.T) {
	_, err := solver.Solve(nil, pt(0, 0), nil)
	require.ErrorIs(t, err, solver.ErrNilGrid)

	g := row(t, 4, 1, 2, 3)
	_, err = solver.Solve(g, pt(0, 0), g.Goals(), solver.WithMaxGoals(2))
	require.ErrorIs(t, err, solver.ErrTooManyGoals)

	_, err = solver.EvaluateOrder(g, pt(0, 0), g.Goals(), []int{0, 0, 1})
	require.ErrorIs(t, err, solver.ErrBadOrder)

	require.Panics(t, func() { solver.WithBound(-1) })
}

func TestSolve_NoGoals(t *testing.T) {
	g := row(t, 2)
	res, err := solver.Solve(g, pt(0, 0), nil)
	require.NoError(t, err)
	require.Equal(t, solver.StatusMatched, res.Status)
	require.Empty(t, res.Path)
	require.Equal(t, 1, res.Permutations)
}

func TestSolve_LogsOutcome(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g := row(t, 3, 1, 2)
	_, err := solver.Solve(g, pt(0, 0), g.Goals(), solver.WithBound(2), solver.WithLogger(logger))
	require.NoError(t, err)

	last := hook.LastEntry()
	require.NotNil(t, last)
	require.Equal(t, logrus.InfoLevel, last.Level)
	require.Equal(t, "solve finished", last.Message)
	require.Equal(t, solver.StatusMatched, last.Data["status"])
}

// randomBoard scatters bricks and goals over a w×h board, keeping (0,0) free.
func randomBoard(rng *rand.Rand, w, h, goals int) *grid.Grid {
	g, _ := grid.New(w, h)
	for i := 1; i < g.Len(); i++ {
		switch rng.Intn(5) {
		case 0:
			_ = g.Place(g.Coordinate(i), grid.NewBrick(true))
		case 1:
			_ = g.Place(g.Coordinate(i), grid.NewBrick(false))
		}
	}
	for placed := 0; placed < goals; {
		i := 1 + rng.Intn(g.Len()-1)
		if g.At(i).Obstacle.Collectible() {
			continue
		}
		o := grid.NewStar()
		if rng.Intn(3) == 0 {
			o = grid.NewRuby()
		}
		_ = g.Place(g.Coordinate(i), o)
		placed++
	}
	return g
}
