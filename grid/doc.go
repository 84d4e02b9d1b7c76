// Package grid models a Bomberbot level as a rectangular board of tiles.
//
// It supports:
//
//   - Row-major tile storage with O(1) coordinate ↔ index conversion
//   - Four-directional adjacency (right, up, left, down), clipped to the board
//   - A tagged Obstacle variant (Star, Hammer, Ruby, Brick) with two capability
//     predicates: Destructible and Collectible
//   - Goal extraction in grid-scan order
//   - Flood-fill reachability of tiles from a start position
//
// The board itself is static once built. The only state mutated after
// construction is the Destroyed/DestroyCost pair of destructible obstacles,
// which search algorithms write and solvers reset between attempts.
// Per-search bookkeeping (costs, predecessors) is intentionally not stored on
// tiles; see package astar.
//
// A Grid is not safe for concurrent mutation. Use Clone to hand an
// independent copy to each worker.
package grid
