package hint

import "github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"

// Verdict classifies an attempt as a whole.
type Verdict int

const (
	VerdictIncomplete Verdict = iota
	VerdictNotShortest
	VerdictOptimal
)

// String returns a lowercase name of the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictOptimal:
		return "optimal"
	case VerdictNotShortest:
		return "not-shortest"
	default:
		return "incomplete"
	}
}

// MarshalText encodes the verdict by name.
func (v Verdict) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// Kind is the type of advice attached to a non-optimal attempt.
type Kind int

const (
	// KindNone: no advice.
	KindNone Kind = iota
	// KindWrongMove: Move is the first move that differs from the solution.
	KindWrongMove
	// KindNotFinished: all moves so far are right; Expected is the next one.
	KindNotFinished
	// KindNoMoves: the attempt is empty; Expected is the first move.
	KindNoMoves
	// KindTooManyMoves: the solution is a prefix of the attempt.
	KindTooManyMoves
	// KindNextGoal: Goal is the next goal to look at; Collected were collected in order.
	KindNextGoal
	// KindNoGoalsYet: nothing was collected; Goal is the first goal to look at.
	KindNoGoalsYet
)

var kindNames = [...]string{
	KindNone:         "none",
	KindWrongMove:    "wrong-move",
	KindNotFinished:  "not-finished",
	KindNoMoves:      "no-moves",
	KindTooManyMoves: "too-many-moves",
	KindNextGoal:     "next-goal",
	KindNoGoalsYet:   "no-goals-yet",
}

// String returns a lowercase name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Hint is the outcome of Generate.
type Hint struct {
	Verdict Verdict `json:"verdict"`
	Kind    Kind    `json:"kind"`

	// Move is the 1-based index of the wrong move (KindWrongMove).
	Move int `json:"move,omitempty"`
	// Got is the player's move at Move.
	Got string `json:"got,omitempty"`
	// Expected is the solution's move at Move, or the next move to make.
	Expected string `json:"expected,omitempty"`

	// Goal is the tile to look at next (KindNextGoal, KindNoGoalsYet).
	Goal *grid.Point `json:"goal,omitempty"`
	// Collected lists the goals completed in the solved order so far.
	Collected []grid.Point `json:"collected,omitempty"`

	// Message is the advice in plain English.
	Message string `json:"message"`
}

// String returns Message.
func (h Hint) String() string { return h.Message }
