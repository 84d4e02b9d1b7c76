// Package bomberbot solves Bomberbot puzzle levels and explains how a
// player's recorded attempt compares to the best route.
//
// 🚀 What does it do?
//
//	Given a rectangular level with stars, hammers and rubies to collect and
//	bricks in the way, it finds a short command sequence that collects every
//	goal, then tells the player what to try next:
//		• Grid model: tiles, slide terrain, bricks, rubies and collectibles
//		• A* pathfinding with facing-aware smash costs
//		• Permutation search over goal orders with early exit at a known best
//		• Command translation: "right", "down", "smash", "left smash" …
//		• Hints against a recorded demo (moveList, goalsCollected)
//
// Under the hood, everything is organized into small packages:
//
//	grid/          — board, tiles, obstacles, directions
//	astar/         — single-leg pathfinder with smash costs
//	permute/       — lazy lexicographic permutation generator
//	solver/        — multi-goal tour search over goal orders
//	level/         — JSON/YAML level files and recorded demos
//	command/       — waypoint route → command tokens
//	hint/          — demo vs best solution comparison
//	render/        — ASCII board printer
//	service/       — one-shot pipeline shared by every front end
//	api/           — HTTP surface (gorilla/mux)
//	transport/mcp/ — MCP stdio tool server
//	cmd/bomberbot/ — command line (solve, batch, serve, mcp)
//
// Quick ASCII example (mission1-level1: B start, S star, X wall, D brick, R ruby):
//
//	   ___________________
//	   |     |     |     |
//	0  |  B  |  S  |  X  |
//	   |_____|_____|_____|
//	   |     |     |     |
//	1  |     |  D  |  R  |
//	   |_____|_____|_____|
//	      0     1     2
//
//	go run ./cmd/bomberbot solve level/testdata/mission1-level1.json
package bomberbot
