package level

import (
	"errors"
	"path/filepath"
	"strings"
)

// Sentinel errors.
var (
	// ErrMalformedLevel indicates level data that cannot be decoded or is structurally invalid.
	ErrMalformedLevel = errors.New("level: malformed level")

	// ErrDimensionMismatch indicates the tile rows or columns disagree with the declared dimension.
	ErrDimensionMismatch = errors.New("level: tiles do not match dimension")

	// ErrStartOutOfBounds indicates posPlayer lies outside the grid.
	ErrStartOutOfBounds = errors.New("level: player position out of bounds")

	// ErrUnknownDirection indicates an unrecognised dirPlayer value.
	ErrUnknownDirection = errors.New("level: unknown player direction")

	// ErrUnknownFormat indicates a file extension other than .json, .yaml or .yml.
	ErrUnknownFormat = errors.New("level: unknown file format")

	// ErrDemoNotFound indicates there is no recorded demo for the requested level.
	ErrDemoNotFound = errors.New("level: demo not found")
)

// DefaultDirection is the facing used when a level omits dirPlayer.
const DefaultDirection = "down"

// Format selects the level file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// String returns the lowercase format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "json"
}

// ParseFormat maps "json", "yaml" or "yml" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json", "":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatJSON, ErrUnknownFormat
}

// FormatOf infers the Format from the extension of path.
func FormatOf(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return FormatJSON, ErrUnknownFormat
	}
	return ParseFormat(ext)
}

// Dimension is the declared board size.
type Dimension struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
}

// Position is a board coordinate as stored in level files.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Solutions carries the reference move counts of a level.
type Solutions struct {
	Best int `json:"best" yaml:"best"`
}

// Level is one decoded level file.
type Level struct {
	// Name is the file name without extension; empty for parsed data.
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Tiles     string    `json:"tiles" yaml:"tiles"`
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	PosPlayer Position  `json:"posPlayer" yaml:"posPlayer"`
	DirPlayer string    `json:"dirPlayer,omitempty" yaml:"dirPlayer,omitempty"`
	Hammer    bool      `json:"hammer" yaml:"hammer"`
	Solutions Solutions `json:"solutions" yaml:"solutions"`
}

// Demo is a recorded player attempt.
type Demo struct {
	// MoveList holds the player's command tokens ("up", "smash", ...).
	MoveList []string `json:"moveList" yaml:"moveList"`
	// GoalsCollected lists goal indices in the order the player completed them.
	GoalsCollected []int `json:"goalsCollected" yaml:"goalsCollected"`
}

// Empty reports whether the demo holds no moves.
func (d Demo) Empty() bool { return len(d.MoveList) == 0 }
