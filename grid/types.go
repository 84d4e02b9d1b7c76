package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates a requested width or height of zero or less.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrOutOfBounds indicates a coordinate outside the board.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// Point is a tile coordinate. X grows to the right, Y grows downwards.
type Point struct {
	X, Y int
}

// Goal is one collectible target of a level: the tile index, its coordinate
// and the obstacle that makes it a goal.
type Goal struct {
	Index    int
	Point    Point
	Obstacle *Obstacle
}

// neighborOffsets lists cardinal offsets in expansion order: right, up, left, down.
var neighborOffsets = [4][2]int{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}
