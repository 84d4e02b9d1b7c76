package solver

import (
	"errors"
	"io"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/astar"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by Solve and EvaluateOrder.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed in.
	ErrNilGrid = errors.New("solver: grid is nil")

	// ErrTooManyGoals indicates the goal list exceeds Options.MaxGoals.
	ErrTooManyGoals = errors.New("solver: too many goals for permutation search")

	// ErrBadOrder indicates an order that is not a permutation of the goal indices.
	ErrBadOrder = errors.New("solver: order is not a permutation of the goals")
)

// Status describes how a Result was obtained.
type Status int

const (
	// StatusNoSolution: no permutation completed every goal.
	StatusNoSolution Status = iota
	// StatusMatched: a tour within the known best move count was found.
	StatusMatched
	// StatusBestEffort: every permutation was tried; the shortest completed tour is returned.
	StatusBestEffort
)

// String returns a lowercase name of the status.
func (s Status) String() string {
	switch s {
	case StatusMatched:
		return "matched"
	case StatusBestEffort:
		return "best-effort"
	default:
		return "no-solution"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// DefaultMaxGoals bounds the factorial search.
const DefaultMaxGoals = 9

// Options configures Solve.
type Options struct {
	// Bound is the best known move count. Zero means unknown: every order is tried.
	Bound int
	// Destroy enables smashing of destructible obstacles (the level has a hammer).
	Destroy bool
	// Facing is the agent's direction at the start tile.
	Facing grid.Direction
	// ResetBricks also restores destroyable Bricks between permutations.
	// Rubies are always restored.
	ResetBricks bool
	// TieBreak selects the pathfinder's heuristic tie-break term.
	TieBreak astar.TieBreak
	// MaxGoals is the largest goal list accepted.
	MaxGoals int
	// Logger receives progress at Debug level and the outcome at Info level.
	Logger logrus.FieldLogger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithBound sets the best known move count.
// Panics if n is negative.
func WithBound(n int) Option {
	if n < 0 {
		panic("solver: WithBound(n) requires n >= 0")
	}
	return func(o *Options) {
		o.Bound = n
	}
}

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

// WithResetBricks controls whether destroyed Bricks are restored before each permutation.
//
// With reset off a permutation walks over Bricks smashed by the ones before
// it, so the result depends on evaluation order and on the state g had when
// Solve was called. A second Solve on the same g starts from the Bricks the
// returned tour smashed.
func WithResetBricks(reset bool) Option {
	return func(o *Options) {
		o.ResetBricks = reset
	}
}

// WithTieBreak selects the pathfinder's heuristic tie-break term.
func WithTieBreak(t astar.TieBreak) Option {
	return func(o *Options) {
		o.TieBreak = t
	}
}

// WithMaxGoals overrides DefaultMaxGoals.
// Panics if n is negative.
func WithMaxGoals(n int) Option {
	if n < 0 {
		panic("solver: WithMaxGoals(n) requires n >= 0")
	}
	return func(o *Options) {
		o.MaxGoals = n
	}
}

// WithLogger installs a logger; nil keeps the current one.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with no bound, no hammer, facing Down,
// brick reset enabled, DefaultMaxGoals and a discarding logger.
func DefaultOptions() Options {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	return Options{
		Bound:       0,
		Destroy:     false,
		Facing:      grid.Down,
		ResetBricks: true,
		TieBreak:    astar.TieBreakCross,
		MaxGoals:    DefaultMaxGoals,
		Logger:      quiet,
	}
}

// Result is the outcome of Solve or EvaluateOrder.
type Result struct {
	// Path is the concatenated route without the start tile; one entry per move.
	// Repeated entries stand for in-place smash actions.
	Path []grid.Point

	// Rotations holds the facing before every smash, in chronological order.
	Rotations []grid.Direction

	// Order is the goal visiting order (indices into the goal list) that produced Path.
	Order []int

	// Collected lists the goals in the order Path completes them. It differs
	// from Order when a leg crosses a goal that comes later in Order.
	Collected []int

	// Facing is the agent's direction at the end of Path.
	Facing grid.Direction

	// Status reports whether the bound was met.
	Status Status

	// Permutations is the number of orders evaluated.
	Permutations int

	// Legs is the number of astar.Find calls made.
	Legs int
}

// Moves returns the number of moves in the tour.
func (r Result) Moves() int { return len(r.Path) }
