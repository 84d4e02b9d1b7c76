package command

import (
	"errors"
	"fmt"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
)

// Smash is the token of the destroy action.
const Smash = "smash"

var (
	// ErrRotationsExhausted indicates more smash runs than rotation entries.
	ErrRotationsExhausted = errors.New("command: rotation list exhausted")

	// ErrUnusedRotations indicates rotation entries left over after the route.
	ErrUnusedRotations = errors.New("command: unused rotation entries")

	// ErrNotAdjacent indicates two consecutive waypoints that are not neighbours.
	ErrNotAdjacent = errors.New("command: waypoints are not adjacent")
)

// Translate converts path into command tokens. path excludes start; facing
// is the bot's direction at start and rotations are in chronological order.
func Translate(path []grid.Point, start grid.Point, facing grid.Direction, rotations []grid.Direction) ([]string, error) {
	var (
		out    = make([]string, 0, len(path))
		prev   = start
		repeat int
		rot    int
	)

	// flush spends the pending repeats on smash actions.
	flush := func(at int) error {
		for repeat > 0 {
			if rot >= len(rotations) {
				return fmt.Errorf("%w: at waypoint %d", ErrRotationsExhausted, at)
			}
			d := rotations[rot]
			rot++
			if d == facing {
				out = append(out, Smash)
				repeat--
				continue
			}
			if repeat == 1 {
				// A lone repeat always faces the target already.
				out = append(out, Smash)
				facing = d
				repeat = 0
				continue
			}
			out = append(out, d.String(), Smash)
			facing = d
			repeat -= 2
		}
		return nil
	}

	for i, p := range path {
		if p == prev {
			repeat++
			continue
		}
		if err := flush(i); err != nil {
			return nil, err
		}
		d, ok := grid.DirectionBetween(prev, p)
		if !ok || manhattan(prev, p) != 1 {
			return nil, fmt.Errorf("%w: %v -> %v", ErrNotAdjacent, prev, p)
		}
		out = append(out, d.String())
		facing = d
		prev = p
	}
	if err := flush(len(path)); err != nil {
		return nil, err
	}
	if rot != len(rotations) {
		return nil, fmt.Errorf("%w: %d of %d", ErrUnusedRotations, len(rotations)-rot, len(rotations))
	}
	return out, nil
}

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
