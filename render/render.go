package render

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
)

// ErrNilGrid indicates a nil *grid.Grid was passed to Render.
var ErrNilGrid = errors.New("render: grid is nil")

// Options configures Render.
type Options struct {
	// Route is marked on tiles without an obstacle.
	Route []grid.Point
}

// Option represents a functional option for configuring Render.
type Option func(*Options)

// WithRoute marks the tiles of path.
func WithRoute(path []grid.Point) Option {
	return func(o *Options) {
		o.Route = path
	}
}

// Render writes g to w with the bot at start.
func Render(w io.Writer, g *grid.Grid, start grid.Point, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	var o Options
	for _, fn := range opts {
		fn(&o)
	}

	route := make(map[grid.Point]bool, len(o.Route))
	for _, p := range o.Route {
		route[p] = true
	}

	var (
		bw      = bufio.NewWriter(w)
		ceiling = " " + "  " + strings.Repeat("______", g.Width) + "_\n"
		floor   = " " + "  " + strings.Repeat("|_____", g.Width) + "|\n"
		spacer  = " " + "  " + strings.Repeat("|     ", g.Width) + "|\n"
	)
	for y := 0; y < g.Height; y++ {
		if y == 0 {
			bw.WriteString(ceiling)
		} else {
			bw.WriteString(floor)
		}
		bw.WriteString(spacer)

		bw.WriteString(strconv.Itoa(y))
		for x := 0; x < g.Width; x++ {
			p := grid.Point{X: x, Y: y}
			bw.WriteString("  |  ")
			bw.WriteByte(cell(g.Tile(p), p == start, route[p]))
		}
		bw.WriteString("  |\n")
	}
	bw.WriteString(floor)

	bw.WriteString("   ")
	for x := 0; x < g.Width; x++ {
		bw.WriteString("   " + strconv.Itoa(x) + "  ")
	}
	bw.WriteString("\n")

	return bw.Flush()
}

// String renders g into a string.
func String(g *grid.Grid, start grid.Point, opts ...Option) string {
	var b strings.Builder
	if err := Render(&b, g, start, opts...); err != nil {
		return ""
	}
	return b.String()
}

func cell(t *grid.Tile, start, onRoute bool) byte {
	if start {
		return 'B'
	}
	o := t.Obstacle
	if o == nil {
		if onRoute {
			return '*'
		}
		return ' '
	}
	switch o.Kind {
	case grid.Brick:
		if o.Destroyable {
			return 'D'
		}
		return 'X'
	case grid.Star:
		return 'S'
	case grid.Hammer:
		return 'H'
	case grid.Ruby:
		return 'R'
	}
	return '?'
}
