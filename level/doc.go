// Package level loads Bomberbot level files and recorded demos.
//
// A level is stored as JSON (the format exported by the game) or YAML:
//
//	{
//	  "tiles": "a0,a4,.0;a0,a1,a3",
//	  "dimension": {"rows": 2, "cols": 3},
//	  "posPlayer": {"x": 0, "y": 0},
//	  "dirPlayer": "right",
//	  "hammer": true,
//	  "solutions": {"best": 5}
//	}
//
// Tiles are row-major: rows are separated by ';' and cells by ','.
// Every cell code is decoded as follows:
//
//   - a leading 'b' marks a slide tile;
//   - a leading '.' is a permanent brick;
//   - otherwise a two-character code selects the obstacle by its second
//     character: '4' Star, '3' Ruby, '1' destroyable Brick, '6' Hammer,
//     anything else a permanent brick. Shorter or longer codes are empty.
//
// dirPlayer defaults to "down" and hammer to false when absent.
//
// Demos are kept in a single JSON file keyed by mission and level number:
//
//	{"1": {"3": {"moveList": ["right", "smash"], "goalsCollected": [0]}}}
//
// A missing demo is not fatal: LoadDemo returns an empty Demo together with
// an error wrapping ErrDemoNotFound.
package level
