package astar_test

import (
	"math/rand"
	"testing"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/astar"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
	"github.com/stretchr/testify/require"
)

// board builds a w×h grid and places the given obstacles.
func board(t *testing.T, w, h int, obstacles map[grid.Point]*grid.Obstacle) *grid.Grid {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	for p, o := range obstacles {
		require.NoError(t, g.Place(p, o))
	}
	return g
}

func pt(x, y int) grid.Point { return grid.Point{X: x, Y: y} }

func manhattan(a, b grid.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func TestFind_EmptyThreeByThree(t *testing.T) {
	g := board(t, 3, 3, nil)
	res, err := astar.Find(g, pt(0, 0), pt(2, 2))
	require.NoError(t, err)

	// 4 cardinal moves × 10, whichever of the shortest orderings is taken.
	require.Len(t, res.Path, 5)
	require.Equal(t, 40, res.Cost)
	require.Equal(t, pt(0, 0), res.Path[0])
	require.Equal(t, pt(2, 2), res.Path[4])
	for i := 1; i < len(res.Path); i++ {
		require.Equal(t, 1, manhattan(res.Path[i-1], res.Path[i]), "step %d", i)
	}
	require.Empty(t, res.Rotations)
}

func TestFind_TieBreakPrefersFirstInserted(t *testing.T) {
	g := board(t, 3, 3, nil)
	res, err := astar.Find(g, pt(0, 0), pt(2, 2))
	require.NoError(t, err)
	require.Equal(t, []grid.Point{pt(0, 0), pt(1, 0), pt(2, 0), pt(2, 1), pt(2, 2)}, res.Path)
	require.Equal(t, grid.Down, res.Facing)
	require.Equal(t, 9, res.Expanded)
}

func TestFind_SmashAhead(t *testing.T) {
	brick := grid.NewBrick(true)
	g := board(t, 3, 1, map[grid.Point]*grid.Obstacle{pt(1, 0): brick})

	res, err := astar.Find(g, pt(0, 0), pt(2, 0), astar.WithDestroy(true), astar.WithFacing(grid.Right))
	require.NoError(t, err)

	require.Equal(t, []grid.Point{pt(0, 0), pt(0, 0), pt(1, 0), pt(2, 0)}, res.Path)
	require.Equal(t, []grid.Direction{grid.Right}, res.Rotations)
	require.Equal(t, astar.SmashAheadCost+astar.StepCost, res.Cost)
	require.True(t, brick.Destroyed)
	require.Equal(t, 1, brick.DestroyCost)
	require.Equal(t, grid.Right, res.Facing)
}

func TestFind_SmashWithTurn(t *testing.T) {
	brick := grid.NewBrick(true)
	g := board(t, 3, 1, map[grid.Point]*grid.Obstacle{pt(1, 0): brick})

	res, err := astar.Find(g, pt(0, 0), pt(2, 0), astar.WithDestroy(true), astar.WithFacing(grid.Down))
	require.NoError(t, err)

	require.Equal(t, []grid.Point{pt(0, 0), pt(0, 0), pt(0, 0), pt(1, 0), pt(2, 0)}, res.Path)
	require.Equal(t, []grid.Direction{grid.Right}, res.Rotations)
	require.Equal(t, astar.SmashTurnCost+astar.StepCost, res.Cost)
	require.Equal(t, 2, brick.DestroyCost)
}

func TestFind_RotationsGoalToStart(t *testing.T) {
	first, second := grid.NewBrick(true), grid.NewBrick(true)
	g := board(t, 4, 2, map[grid.Point]*grid.Obstacle{
		pt(1, 0): first,
		pt(2, 0): second,
		pt(0, 1): grid.NewBrick(false),
		pt(1, 1): grid.NewBrick(false),
		pt(2, 1): grid.NewBrick(false),
		pt(3, 1): grid.NewBrick(false),
	})

	res, err := astar.Find(g, pt(0, 0), pt(3, 0), astar.WithDestroy(true), astar.WithFacing(grid.Right))
	require.NoError(t, err)
	require.Equal(t, []grid.Point{pt(0, 0), pt(0, 0), pt(1, 0), pt(1, 0), pt(2, 0), pt(3, 0)}, res.Path)
	require.Len(t, res.Rotations, 2)
	require.Equal(t, 50, res.Cost)
	require.True(t, first.Destroyed)
	require.True(t, second.Destroyed)
}

func TestFind_RubyGoalIsNotStoodOn(t *testing.T) {
	ruby := grid.NewRuby()
	g := board(t, 3, 1, map[grid.Point]*grid.Obstacle{pt(2, 0): ruby})

	res, err := astar.Find(g, pt(0, 0), pt(2, 0), astar.WithDestroy(true), astar.WithFacing(grid.Right))
	require.NoError(t, err)

	require.Equal(t, []grid.Point{pt(0, 0), pt(1, 0), pt(1, 0)}, res.Path)
	require.Equal(t, []grid.Direction{grid.Right}, res.Rotations)
	require.Equal(t, grid.Right, res.Facing)
	require.True(t, ruby.Destroyed)
	require.Equal(t, 1, ruby.DestroyCost)
}

func TestFind_RubyGoalKeepsFacingTheRuby(t *testing.T) {
	// B . .
	// # R .   the ruby is smashed after turning down from (1,0).
	ruby := grid.NewRuby()
	g := board(t, 3, 2, map[grid.Point]*grid.Obstacle{pt(1, 1): ruby, pt(0, 1): grid.NewBrick(false)})

	res, err := astar.Find(g, pt(0, 0), pt(1, 1), astar.WithDestroy(true), astar.WithFacing(grid.Right))
	require.NoError(t, err)

	require.Equal(t, []grid.Point{pt(0, 0), pt(1, 0), pt(1, 0), pt(1, 0)}, res.Path)
	require.Equal(t, []grid.Direction{grid.Down}, res.Rotations)
	require.Equal(t, grid.Down, res.Facing)
	require.Equal(t, astar.StepCost+astar.SmashTurnCost, res.Cost)
	require.Equal(t, 2, ruby.DestroyCost)
}

func TestFind_TieBreakSelectsRoute(t *testing.T) {
	// B . # .
	// . . D G
	build := func() *grid.Grid {
		return board(t, 4, 2, map[grid.Point]*grid.Obstacle{
			pt(2, 0): grid.NewBrick(false),
			pt(2, 1): grid.NewBrick(true),
		})
	}

	cross, err := astar.Find(build(), pt(0, 0), pt(3, 1), astar.WithDestroy(true), astar.WithFacing(grid.Right))
	require.NoError(t, err)
	require.Equal(t, []grid.Point{pt(0, 0), pt(1, 0), pt(1, 1), pt(1, 1), pt(1, 1), pt(2, 1), pt(3, 1)}, cross.Path)
	require.Equal(t, 60, cross.Cost)

	legacy, err := astar.Find(build(), pt(0, 0), pt(3, 1),
		astar.WithDestroy(true),
		astar.WithFacing(grid.Right),
		astar.WithTieBreak(astar.TieBreakLegacy),
	)
	require.NoError(t, err)
	require.Equal(t, []grid.Point{pt(0, 0), pt(0, 1), pt(1, 1), pt(1, 1), pt(2, 1), pt(3, 1)}, legacy.Path)
	require.Equal(t, 50, legacy.Cost)
	require.Equal(t, []grid.Direction{grid.Right}, legacy.Rotations)
}

func TestFind_RubyBeforeSmashNeedsNoSecondAction(t *testing.T) {
	ruby, brick := grid.NewRuby(), grid.NewBrick(true)
	g := board(t, 4, 1, map[grid.Point]*grid.Obstacle{pt(1, 0): ruby, pt(2, 0): brick})

	res, err := astar.Find(g, pt(0, 0), pt(3, 0), astar.WithDestroy(true), astar.WithFacing(grid.Right))
	require.NoError(t, err)

	require.Equal(t, []grid.Point{pt(0, 0), pt(1, 0), pt(1, 0), pt(2, 0), pt(3, 0)}, res.Path)
	require.Len(t, res.Rotations, 1)
	require.True(t, ruby.Destroyed)
	require.Equal(t, 0, ruby.DestroyCost)
	require.Equal(t, 1, brick.DestroyCost)
}

func TestFind_Unreachable(t *testing.T) {
	brick := grid.NewBrick(true)
	g := board(t, 3, 1, map[grid.Point]*grid.Obstacle{pt(1, 0): brick})

	_, err := astar.Find(g, pt(0, 0), pt(2, 0))
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.False(t, brick.Destroyed, "failed search must not write obstacle state")

	wall := board(t, 3, 1, map[grid.Point]*grid.Obstacle{pt(1, 0): grid.NewBrick(false)})
	_, err = astar.Find(wall, pt(0, 0), pt(2, 0), astar.WithDestroy(true))
	require.ErrorIs(t, err, astar.ErrNoPath)
}

func TestFind_DestroyedObstacleIsWalkable(t *testing.T) {
	brick := grid.NewBrick(true)
	g := board(t, 3, 1, map[grid.Point]*grid.Obstacle{pt(1, 0): brick})

	_, err := astar.Find(g, pt(0, 0), pt(2, 0), astar.WithDestroy(true), astar.WithFacing(grid.Right))
	require.NoError(t, err)

	back, err := astar.Find(g, pt(2, 0), pt(0, 0))
	require.NoError(t, err)
	require.Equal(t, []grid.Point{pt(2, 0), pt(1, 0), pt(0, 0)}, back.Path)
	require.Empty(t, back.Rotations)
	require.Equal(t, 20, back.Cost)
}

func TestFind_SameTile(t *testing.T) {
	g := board(t, 2, 2, nil)
	res, err := astar.Find(g, pt(1, 1), pt(1, 1), astar.WithFacing(grid.Left))
	require.NoError(t, err)
	require.Equal(t, []grid.Point{pt(1, 1)}, res.Path)
	require.Equal(t, grid.Left, res.Facing)
	require.Zero(t, res.Cost)
}

func TestFind_DetoursWithoutHammer(t *testing.T) {
	brick := grid.NewBrick(true)
	g := board(t, 3, 3, map[grid.Point]*grid.Obstacle{pt(1, 1): brick})

	res, err := astar.Find(g, pt(0, 1), pt(2, 1))
	require.NoError(t, err)
	require.NotContains(t, res.Path, pt(1, 1))
	require.Equal(t, 40, res.Cost)
	require.False(t, brick.Destroyed)
}

func TestFind_NilGridAndPanics(t *testing.T) {
	_, err := astar.Find(nil, pt(0, 0), pt(0, 0))
	require.ErrorIs(t, err, astar.ErrNilGrid)

	g := board(t, 2, 2, nil)
	require.Panics(t, func() { _, _ = astar.Find(g, pt(0, 0), pt(5, 5)) })
}

// TestFind_RandomBoards checks structural properties on deterministic random boards:
// no tile is finalized twice, consecutive waypoints are adjacent, and without a
// hammer no intact destructible obstacle is crossed.
func TestFind_RandomBoards(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		w, h := 3+rng.Intn(5), 3+rng.Intn(5)
		g, err := grid.New(w, h)
		require.NoError(t, err)
		for i := 0; i < g.Len(); i++ {
			switch rng.Intn(6) {
			case 0:
				_ = g.Place(g.Coordinate(i), grid.NewBrick(true))
			case 1:
				_ = g.Place(g.Coordinate(i), grid.NewBrick(false))
			case 2:
				_ = g.Place(g.Coordinate(i), grid.NewStar())
			}
		}
		start := grid.Point{X: 0, Y: 0}
		end := grid.Point{X: w - 1, Y: h - 1}
		_ = g.Place(start, nil)
		_ = g.Place(end, nil)

		hammer := trial%2 == 0
		seen := map[grid.Point]bool{}
		res, err := astar.Find(g, start, end,
			astar.WithDestroy(hammer),
			astar.WithOnExpand(func(p grid.Point) {
				require.False(t, seen[p], "tile %v expanded twice", p)
				seen[p] = true
			}),
		)
		if err != nil {
			require.ErrorIs(t, err, astar.ErrNoPath)
			continue
		}
		require.Equal(t, len(seen), res.Expanded)
		require.Equal(t, start, res.Path[0])
		require.Equal(t, end, res.Path[len(res.Path)-1])
		for i := 1; i < len(res.Path); i++ {
			d := manhattan(res.Path[i-1], res.Path[i])
			if hammer {
				require.LessOrEqual(t, d, 1)
			} else {
				require.Equal(t, 1, d)
				require.True(t, g.Tile(res.Path[i]).Walkable())
			}
		}
	}
}
