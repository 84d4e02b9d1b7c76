package grid

import "fmt"

// Grid is a Width×Height board stored row-major: index = y*Width + x.
type Grid struct {
	Width, Height int
	tiles         []Tile
}

// New constructs an empty board of the given size.
// Returns ErrEmptyGrid if either dimension is not positive.
// Complexity: O(W×H) time and memory.
func New(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{Width: width, Height: height, tiles: make([]Tile, width*height)}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := &g.tiles[g.Index(x, y)]
			t.X, t.Y = x, y
		}
	}

	return g, nil
}

// Len returns the number of tiles.
func (g *Grid) Len() int { return len(g.tiles) }

// InBounds reports whether (x,y) lies on the board.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to its row-major index. It does not check bounds.
func (g *Grid) Index(x, y int) int { return y*g.Width + x }

// IndexOf maps p to its row-major index and panics if p is off the board.
func (g *Grid) IndexOf(p Point) int {
	if !g.InBounds(p.X, p.Y) {
		panic(fmt.Sprintf("grid: point (%d,%d) outside %dx%d board", p.X, p.Y, g.Width, g.Height))
	}
	return g.Index(p.X, p.Y)
}

// Coordinate converts a row-major index back to a Point.
func (g *Grid) Coordinate(i int) Point {
	return Point{X: i % g.Width, Y: i / g.Width}
}

// At returns the tile at index i. It panics if i is out of range.
func (g *Grid) At(i int) *Tile { return &g.tiles[i] }

// Tile returns the tile at p. It panics if p is off the board.
func (g *Grid) Tile(p Point) *Tile { return &g.tiles[g.IndexOf(p)] }

// Place puts o on the tile at p, replacing any previous obstacle.
func (g *Grid) Place(p Point, o *Obstacle) error {
	if !g.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	g.tiles[g.Index(p.X, p.Y)].Obstacle = o
	return nil
}

// SetSlide marks the tile at p as slide terrain.
func (g *Grid) SetSlide(p Point, slide bool) error {
	if !g.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, p.X, p.Y)
	}
	g.tiles[g.Index(p.X, p.Y)].Slide = slide
	return nil
}

// Neighbors appends the indices of the cardinal neighbours of tile i to dst,
// in the order right, up, left, down, and returns the extended slice.
func (g *Grid) Neighbors(dst []int, i int) []int {
	x, y := i%g.Width, i/g.Width
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) {
			dst = append(dst, g.Index(nx, ny))
		}
	}
	return dst
}

// Goals scans the board row by row and returns every Star, Ruby and Hammer tile.
func (g *Grid) Goals() []Goal {
	var goals []Goal
	for i := range g.tiles {
		o := g.tiles[i].Obstacle
		if !o.Collectible() {
			continue
		}
		goals = append(goals, Goal{Index: i, Point: g.Coordinate(i), Obstacle: o})
	}
	return goals
}

// ResetObstacles clears the transient state of every Ruby, and of every
// destroyable Brick when includeBricks is true.
func (g *Grid) ResetObstacles(includeBricks bool) {
	for i := range g.tiles {
		o := g.tiles[i].Obstacle
		if o == nil {
			continue
		}
		if o.Kind == Ruby || (includeBricks && o.Kind == Brick) {
			o.Reset()
		}
	}
}

// Clone returns a deep copy whose obstacles are independent of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{Width: g.Width, Height: g.Height, tiles: make([]Tile, len(g.tiles))}
	copy(c.tiles, g.tiles)
	for i := range c.tiles {
		if o := c.tiles[i].Obstacle; o != nil {
			cp := *o
			c.tiles[i].Obstacle = &cp
		}
	}
	return c
}

// State is a copy of the transient obstacle state of a board.
type State struct {
	destroyed []bool
	cost      []int
}

// State records the Destroyed flag and DestroyCost of every obstacle.
func (g *Grid) State() State {
	s := State{destroyed: make([]bool, len(g.tiles)), cost: make([]int, len(g.tiles))}
	for i := range g.tiles {
		if o := g.tiles[i].Obstacle; o != nil {
			s.destroyed[i] = o.Destroyed
			s.cost[i] = o.DestroyCost
		}
	}
	return s
}

// Restore writes s back onto the obstacles of g. s must come from g.
func (g *Grid) Restore(s State) {
	for i := range s.destroyed {
		if o := g.tiles[i].Obstacle; o != nil {
			o.Destroyed = s.destroyed[i]
			o.DestroyCost = s.cost[i]
		}
	}
}
