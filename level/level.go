package level

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/WietzeSlagman/Bomberbot-Hint-generation/grid"
	"gopkg.in/yaml.v3"
)

// Load reads and validates the level file at path; the format follows its extension.
func Load(path string) (*Level, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}

	lvl, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return lvl, nil
}

// Parse decodes and validates level data.
func Parse(data []byte, format Format) (*Level, error) {
	var (
		lvl Level
		err error
	)
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &lvl)
	default:
		err = json.Unmarshal(data, &lvl)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}
	if err = lvl.Normalize(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Normalize fills in defaults for absent optional fields and validates the level.
// Levels decoded by other means (for example inside a larger request) should
// be normalized before use.
func (l *Level) Normalize() error {
	if l.DirPlayer == "" {
		l.DirPlayer = DefaultDirection
	}
	return l.Validate()
}

// Validate checks the level's structure without building a grid.
func (l *Level) Validate() error {
	// 1) Declared size.
	if l.Dimension.Rows <= 0 || l.Dimension.Cols <= 0 {
		return fmt.Errorf("%w: dimension %dx%d", ErrMalformedLevel, l.Dimension.Rows, l.Dimension.Cols)
	}
	if l.Solutions.Best < 0 {
		return fmt.Errorf("%w: negative best solution %d", ErrMalformedLevel, l.Solutions.Best)
	}

	// 2) Tile rows and columns.
	rows := l.rows()
	if len(rows) != l.Dimension.Rows {
		return fmt.Errorf("%w: %d rows, want %d", ErrDimensionMismatch, len(rows), l.Dimension.Rows)
	}
	for y, row := range rows {
		if len(row) != l.Dimension.Cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrDimensionMismatch, y, len(row), l.Dimension.Cols)
		}
		for x, code := range row {
			if code == "" {
				return fmt.Errorf("%w: empty cell at (%d,%d)", ErrMalformedLevel, x, y)
			}
		}
	}

	// 3) Player.
	if l.PosPlayer.X < 0 || l.PosPlayer.X >= l.Dimension.Cols || l.PosPlayer.Y < 0 || l.PosPlayer.Y >= l.Dimension.Rows {
		return fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, l.PosPlayer.X, l.PosPlayer.Y)
	}
	if _, err := l.Facing(); err != nil {
		return err
	}
	return nil
}

// Start returns the player's start tile.
func (l *Level) Start() grid.Point {
	return grid.Point{X: l.PosPlayer.X, Y: l.PosPlayer.Y}
}

// Facing returns the player's start direction, Down when unset.
func (l *Level) Facing() (grid.Direction, error) {
	if l.DirPlayer == "" {
		return grid.Down, nil
	}
	d, err := grid.ParseDirection(l.DirPlayer)
	if err != nil {
		return grid.Down, fmt.Errorf("%w: %q", ErrUnknownDirection, l.DirPlayer)
	}
	return d, nil
}

// Build decodes the tile codes into a new grid.
func (l *Level) Build() (*grid.Grid, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(l.Dimension.Cols, l.Dimension.Rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}
	for y, row := range l.rows() {
		for x, code := range row {
			p := grid.Point{X: x, Y: y}
			slide, o := DecodeCell(code)
			if err = g.Place(p, o); err != nil {
				return nil, err
			}
			if err = g.SetSlide(p, slide); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// DecodeCell translates one tile code into its slide flag and obstacle (nil when empty).
func DecodeCell(code string) (slide bool, o *grid.Obstacle) {
	if code == "" {
		return false, nil
	}
	switch code[0] {
	case '.':
		return false, grid.NewBrick(false)
	case 'b':
		slide = true
	}
	if len(code) != 2 {
		return slide, nil
	}
	switch code[1] {
	case '0':
		return slide, nil
	case '4':
		o = grid.NewStar()
	case '3':
		o = grid.NewRuby()
	case '1':
		o = grid.NewBrick(true)
	case '6':
		o = grid.NewHammer()
	default:
		o = grid.NewBrick(false)
	}
	return slide, o
}

func (l *Level) rows() [][]string {
	lines := strings.Split(strings.TrimSpace(l.Tiles), ";")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		cells := strings.Split(line, ",")
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
	}
	return rows
}
