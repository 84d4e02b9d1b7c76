package hint

import (
	"fmt"
	"strings"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
	"github.com/WietzeSlagman/Bomberbot-Hint-generation/level"
)

// Generate grades demo against the solved commands best. order is the
// sequence in which the solution collects the goals; it and
// demo.GoalsCollected index into goals.
func Generate(demo level.Demo, best []string, goals []grid.Goal, order []int) Hint {
	h := Hint{Verdict: verdict(demo, best, goals)}
	if h.Verdict == VerdictOptimal {
		h.Message = "You found the best path."
		return h
	}

	lead := "Your path is incomplete."
	if h.Verdict == VerdictNotShortest {
		lead = "Your path is complete, but it is not the shortest path."
	}

	if len(goals) > 1 && nextGoal(&h, demo.GoalsCollected, goals, order) {
		h.Message = lead + " " + h.Message
		return h
	}
	compareMoves(&h, demo.MoveList, best)
	h.Message = lead + " " + h.Message
	return h
}

func verdict(demo level.Demo, best []string, goals []grid.Goal) Verdict {
	if len(demo.GoalsCollected) != len(goals) {
		return VerdictIncomplete
	}
	if len(demo.MoveList) <= len(best) {
		return VerdictOptimal
	}
	return VerdictNotShortest
}

// nextGoal points at the first goal collected out of the solved order.
// It reports false when the collected prefix already follows order.
func nextGoal(h *Hint, collected []int, goals []grid.Goal, order []int) bool {
	if len(order) == 0 {
		return false
	}
	if len(collected) == 0 {
		p := goals[order[0]].Point
		h.Kind = KindNoGoalsYet
		h.Goal = &p
		h.Message = fmt.Sprintf("No goals collected yet. Try looking at tile (%d,%d).", p.X, p.Y)
		return true
	}

	for i, gi := range order {
		if i < len(collected) && collected[i] == gi {
			h.Collected = append(h.Collected, goals[gi].Point)
			continue
		}
		p := goals[gi].Point
		h.Kind = KindNextGoal
		h.Goal = &p

		var b strings.Builder
		if len(h.Collected) > 0 {
			b.WriteString("Goals ")
			for j, c := range h.Collected {
				if j > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "(%d,%d)", c.X, c.Y)
			}
			b.WriteString(" are correctly collected. ")
		}
		fmt.Fprintf(&b, "Try looking at tile (%d,%d) next.", p.X, p.Y)
		h.Message = b.String()
		return true
	}
	return false
}

// compareMoves finds the first difference between moves and best.
func compareMoves(h *Hint, moves, best []string) {
	for i := 0; i < len(moves) && i < len(best); i++ {
		if moves[i] != best[i] {
			h.Kind = KindWrongMove
			h.Move = i + 1
			h.Got = moves[i]
			h.Expected = best[i]
			h.Message = fmt.Sprintf("Wrong move at move %d: you chose %q, but the correct move is %q.", i+1, moves[i], best[i])
			return
		}
	}

	switch {
	case len(moves) == 0:
		h.Kind = KindNoMoves
		if len(best) > 0 {
			h.Expected = best[0]
		}
		h.Message = fmt.Sprintf("No moves made. Try %q first.", h.Expected)
	case len(moves) < len(best):
		h.Kind = KindNotFinished
		h.Expected = best[len(moves)]
		h.Message = fmt.Sprintf("Your moves are correct so far but not done. Try %q next.", h.Expected)
	default:
		h.Kind = KindTooManyMoves
		h.Message = "Your moves are correct, but you used too many moves at the end."
	}
}
