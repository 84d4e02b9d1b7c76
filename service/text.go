package service

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
)

// WriteText prints the report in the sectioned plain-text layout of the CLI.
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "--- Level information ---")
	if r.Level != "" {
		fmt.Fprintf(bw, "Level: %s\n", r.Level)
	}
	fmt.Fprintf(bw, "Starting location: (%d, %d)\n", r.Start.X, r.Start.Y)
	fmt.Fprintf(bw, "Starting direction: %s\n", r.Facing)
	fmt.Fprintf(bw, "Hammer: %t\n", r.Hammer)
	if r.Grid != "" {
		fmt.Fprintln(bw)
		fmt.Fprint(bw, r.Grid)
	}

	fmt.Fprintln(bw, "\n--- Path info ---")
	fmt.Fprintf(bw, "Path found: %d moves. | Best solution: %d moves. | Permutation used %v (%s)\n",
		r.Moves, r.Best, r.Order, r.Status)
	if len(r.Collected) > 0 {
		fmt.Fprintf(bw, "Goal order: %v\n", goalPoints(r.Collected, r.Goals))
	}
	fmt.Fprintf(bw, "Best path: %s\n", strings.Join(r.Commands, ", "))
	if len(r.Unreachable) > 0 {
		fmt.Fprintf(bw, "Unreachable goals: %v\n", r.Unreachable)
	}
	if r.UserMoves != nil || r.Hint != nil {
		fmt.Fprintf(bw, "User path: %s\n", strings.Join(r.UserMoves, ", "))
	}

	if r.Hint != nil {
		fmt.Fprintln(bw, "\n--- Hint generated ---")
		fmt.Fprintln(bw, r.Hint.Message)
	}

	fmt.Fprintln(bw, "\n--- Run time ---")
	fmt.Fprintf(bw, "%s\n", r.Elapsed)

	return bw.Flush()
}

// goalPoints maps a visiting order to goal tiles.
func goalPoints(order []int, goals []grid.Point) []grid.Point {
	out := make([]grid.Point, 0, len(order))
	for _, i := range order {
		if i >= 0 && i < len(goals) {
			out = append(out, goals[i])
		}
	}
	return out
}
