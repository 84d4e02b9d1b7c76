// Package astar computes a single-pair route across a Bomberbot board with a
// heuristic-guided best-first search whose edge costs depend on the agent's
// facing and on whether obstacles may be smashed.
//
// Overview:
//
//   - Four-directional moves only; each ordinary step costs StepCost (10).
//   - With destruction enabled, an intact destructible neighbour costs
//     SmashAheadCost (20) when the agent already faces it and SmashTurnCost (30)
//     when it must turn first. The smash is replayed during reconstruction as
//     one (ahead) or two (turn) extra copies of the waypoint in front of the
//     obstacle, and the facing at that point is recorded as a rotation.
//   - The heuristic is 10·√(dx²+dy²) minus 2.5·|cross(start→end, tile→end)|.
//     The cross-product term breaks ties towards the straight line between
//     start and goal. It can overestimate, so routes are biased towards direct
//     lines and are not guaranteed globally cost-optimal.
//
// Bookkeeping:
//
//   - The open set is a binary heap ordered by f with ties broken by insertion
//     order; a decrease-key keeps the original insertion rank.
//   - The closed set holds finalized tile indices and is never re-expanded.
//   - g, h, f, predecessor and tentative smash cost live in a side table
//     allocated per call, so repeated calls never see each other's state.
//   - Only obstacles on the returned route are marked Destroyed, with their
//     DestroyCost set to the replayed count.
//
// Complexity:
//
//   - Time:  O(V log V) with V = W·H tiles.
//   - Space: O(V) for the side table, heap and closed set.
//
// Errors (sentinel):
//
//   - ErrNoPath   if the open set empties before the goal is finalized.
//   - ErrNilGrid  if the board pointer is nil.
//
// Start or goal coordinates outside the board are a programming error and panic.
//
// Thread safety:
//
//   - Find writes obstacle state on the board. Calls over the same board must
//     not overlap; give each goroutine its own grid.Clone.
package astar
