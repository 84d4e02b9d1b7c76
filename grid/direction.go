package grid

import (
	"fmt"
	"strings"
)

// Direction is a facing or movement direction on the board.
type Direction uint8

const (
	// Up points towards decreasing Y.
	Up Direction = iota
	// Right points towards increasing X.
	Right
	// Down points towards increasing Y.
	Down
	// Left points towards decreasing X.
	Left
)

var directionNames = [...]string{Up: "up", Right: "right", Down: "down", Left: "left"}

// String returns the lower-case name used by level files and command tokens.
func (d Direction) String() string {
	if int(d) < len(directionNames) {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection converts "up", "right", "down" or "left" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "right":
		return Right, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	}
	return Down, fmt.Errorf("grid: unknown direction %q", s)
}

// DirectionBetween returns the direction of the step from → to.
// Vertical movement wins when both axes change; identical points yield ok=false.
func DirectionBetween(from, to Point) (d Direction, ok bool) {
	switch {
	case to.Y < from.Y:
		return Up, true
	case to.Y > from.Y:
		return Down, true
	case to.X > from.X:
		return Right, true
	case to.X < from.X:
		return Left, true
	}
	return Down, false
}
