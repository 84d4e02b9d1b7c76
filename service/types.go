package service

import (
	"errors"
	"io"
	"time"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/astar"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/hint"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/level"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/solver"
	"github.com/sirupsen/logrus"
)

// ErrNilLevel indicates Solve was called without a level.
var ErrNilLevel = errors.New("service: level is nil")

// Options configures a Service.
type Options struct {
	Logger      logrus.FieldLogger
	ResetBricks bool
	MaxGoals    int
	TieBreak    astar.TieBreak
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithLogger sets the logger; nil keeps the current one.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithResetBricks controls whether destroyed bricks are restored between goal orders.
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

// WithMaxGoals caps the number of goals a level may have.
func WithMaxGoals(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxGoals = n
		}
	}
}

// DefaultOptions returns Options with a discarding logger, brick reset
// enabled and solver.DefaultMaxGoals.
func DefaultOptions() Options {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	return Options{
		Logger:      quiet,
		ResetBricks: true,
		MaxGoals:    solver.DefaultMaxGoals,
	}
}

// Request carries the per-call inputs of Solve.
type Request struct {
	// Demo is the player's recorded attempt; nil skips hint generation.
	Demo *level.Demo
	// Render attaches the ASCII board to the report.
	Render bool
}

// Report is the JSON-serialisable outcome of one solve.
type Report struct {
	ID     string         `json:"id"`
	Level  string         `json:"level,omitempty"`
	Start  grid.Point     `json:"start"`
	Facing grid.Direction `json:"facing"`
	Hammer bool           `json:"hammer"`
	Goals  []grid.Point   `json:"goals"`

	Status    solver.Status    `json:"status"`
	Moves     int              `json:"moves"`
	Best      int              `json:"best"`
	Order     []int            `json:"order"`
	Collected []int            `json:"collected"`
	Path      []grid.Point     `json:"path"`
	Rotations []grid.Direction `json:"rotations"`
	Commands  []string         `json:"commands"`

	// Unreachable lists goals no route can get to; set only without a solution.
	Unreachable []grid.Point `json:"unreachable,omitempty"`

	Permutations int `json:"permutations"`
	Legs         int `json:"legs"`

	UserMoves []string   `json:"user_moves,omitempty"`
	Hint      *hint.Hint `json:"hint,omitempty"`
	Grid      string     `json:"grid,omitempty"`

	Elapsed time.Duration `json:"elapsed_ns"`
}
