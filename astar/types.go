package astar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
)

// Sentinel errors returned by Find.
var (
	// ErrNoPath indicates the open set was exhausted before reaching the goal.
	ErrNoPath = errors.New("astar: no path between start and goal")

	// ErrNilGrid indicates a nil *grid.Grid was passed to Find.
	ErrNilGrid = errors.New("astar: grid is nil")
)

// Edge costs of the search.
const (
	// StepCost is the cost of walking onto a free neighbour.
	StepCost = 10
	// SmashAheadCost is the cost of smashing an obstacle already faced, then stepping on it.
	SmashAheadCost = 20
	// SmashTurnCost is the cost of turning, smashing, then stepping on the obstacle.
	SmashTurnCost = 30
)

// Heuristic weights.
const (
	distanceScale  = 10.0
	tieBreakWeight = 2.5
)

// TieBreak selects the term subtracted from the distance part of the heuristic.
// Both terms can make the estimate exceed the true remaining cost.
type TieBreak uint8

const (
	// TieBreakCross subtracts 2.5·|dx1·dy2 − dx2·dy1|, the cross product of
	// tile→end and start→end.
	TieBreakCross TieBreak = iota
	// TieBreakLegacy subtracts 2.5·|dx1·dx2 − dx2·dy1|, the term the
	// published best-solution counts were computed with.
	TieBreakLegacy
)

// String returns "cross" or "legacy".
func (t TieBreak) String() string {
	if t == TieBreakLegacy {
		return "legacy"
	}
	return "cross"
}

// ParseTieBreak converts "cross" or "legacy" (any case) to a TieBreak.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cross":
		return TieBreakCross, nil
	case "legacy":
		return TieBreakLegacy, nil
	}
	return TieBreakCross, fmt.Errorf("astar: unknown tie-break %q", s)
}

// Options configures a single search.
//
// Destroy  – whether intact destructible obstacles may be smashed.
// Facing   – direction the agent faces at the start tile.
// TieBreak – heuristic tie-break term.
// OnExpand – called with each tile as it is finalized (closed).
type Options struct {
	Destroy  bool
	Facing   grid.Direction
	TieBreak TieBreak
	OnExpand func(p grid.Point)
}

// Option represents a functional option for configuring Find.
type Option func(*Options)

// WithDestroy allows or forbids smashing destructible obstacles.
func WithDestroy(allowed bool) Option {
	return func(o *Options) {
		o.Destroy = allowed
	}
}

// WithFacing sets the agent's facing at the start tile.
func WithFacing(d grid.Direction) Option {
	return func(o *Options) {
		o.Facing = d
	}
}

// WithTieBreak selects the heuristic tie-break term.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithOnExpand installs a hook invoked for every finalized tile.
func WithOnExpand(fn func(p grid.Point)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns Options with destruction disabled, facing Down,
// the cross-product tie-break and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Destroy:  false,
		Facing:   grid.Down,
		TieBreak: TieBreakCross,
		OnExpand: func(grid.Point) {},
	}
}

// Result is the outcome of a successful search.
type Result struct {
	// Path runs from start to goal inclusive. Each smash adds repeated copies
	// of the waypoint in front of the smashed tile. A Ruby goal smashed on
	// arrival is not part of the path.
	Path []grid.Point

	// Facing is the agent's direction at the end of the route. After a Ruby
	// goal is smashed the agent faces the Ruby, not the tile it stands on.
	Facing grid.Direction

	// Rotations holds the facing at each smash, in goal-to-start order.
	Rotations []grid.Direction

	// Cost is the accumulated edge cost g of the goal tile.
	Cost int

	// Expanded is the number of tiles finalized by the search.
	Expanded int
}
