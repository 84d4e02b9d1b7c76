package grid

import "fmt"

// Kind tags the variant held by an Obstacle.
type Kind uint8

const (
	// Star is an inert collectible goal marker.
	Star Kind = iota + 1
	// Hammer is an inert collectible goal marker.
	Hammer
	// Ruby is a goal that is completed by destroying it.
	Ruby
	// Brick blocks movement; a destroyable brick can be smashed.
	Brick
)

var kindNames = [...]string{Star: "Star", Hammer: "Hammer", Ruby: "Ruby", Brick: "Brick"}

// String returns the variant name.
func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Obstacle is the entity occupying a tile.
//
// Destroyed and DestroyCost are transient: searches set them when a
// destructible obstacle is smashed on a route, and solvers clear them
// before each new attempt.
type Obstacle struct {
	Kind        Kind
	Destroyable bool
	Destroyed   bool
	DestroyCost int
}

// NewStar returns a Star goal marker.
func NewStar() *Obstacle { return &Obstacle{Kind: Star} }

// NewHammer returns a Hammer goal marker.
func NewHammer() *Obstacle { return &Obstacle{Kind: Hammer} }

// NewRuby returns an intact, destroyable Ruby.
func NewRuby() *Obstacle { return &Obstacle{Kind: Ruby, Destroyable: true} }

// NewBrick returns an intact Brick; destroyable selects whether it can be smashed.
func NewBrick(destroyable bool) *Obstacle { return &Obstacle{Kind: Brick, Destroyable: destroyable} }

// Destructible reports whether the obstacle supports the destroy capability.
func (o *Obstacle) Destructible() bool {
	if o == nil {
		return false
	}
	return (o.Kind == Ruby || o.Kind == Brick) && o.Destroyable
}

// Collectible reports whether the obstacle is a goal of the level.
func (o *Obstacle) Collectible() bool {
	if o == nil {
		return false
	}
	return o.Kind == Star || o.Kind == Hammer || o.Kind == Ruby
}

// Blocking reports whether the obstacle currently prevents walking onto its tile.
func (o *Obstacle) Blocking() bool {
	if o == nil {
		return false
	}
	switch o.Kind {
	case Star, Hammer:
		return false
	case Ruby, Brick:
		return !(o.Destroyable && o.Destroyed)
	}
	return true
}

// Destroy smashes an intact destructible obstacle and reports whether it did.
func (o *Obstacle) Destroy() bool {
	if !o.Destructible() || o.Destroyed {
		return false
	}
	o.Destroyed = true
	return true
}

// Reset returns the obstacle's transient state to intact.
func (o *Obstacle) Reset() {
	o.Destroyed = false
	o.DestroyCost = 0
}

// Tile is one cell of the board.
type Tile struct {
	X, Y int
	// Slide marks slippery terrain. Search treats it like any other floor.
	Slide    bool
	Obstacle *Obstacle
}

// Point returns the tile coordinate.
func (t *Tile) Point() Point { return Point{X: t.X, Y: t.Y} }

// Walkable reports whether the agent may step onto the tile without smashing.
func (t *Tile) Walkable() bool { return !t.Obstacle.Blocking() }

// Holds reports whether the tile carries an obstacle of kind k.
func (t *Tile) Holds(k Kind) bool { return t.Obstacle != nil && t.Obstacle.Kind == k }
