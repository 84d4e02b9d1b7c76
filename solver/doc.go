// Package solver finds a visiting order over all goals of a Bomberbot level.
//
// Solve enumerates every permutation of the goal list (see package permute)
// and walks each one leg by leg with astar.Find, concatenating the per-leg
// paths. A permutation is finished as soon as every goal is completed:
//
//   - a Ruby goal is completed once its obstacle has been destroyed;
//   - a Star or Hammer goal is completed once its tile appears on the path.
//
// The first completed tour whose length does not exceed the known best move
// count (WithBound) ends the whole search with StatusMatched. Otherwise all
// n! orders are tried and the shortest completed tour is returned with
// StatusBestEffort, or StatusNoSolution if no order completes.
//
// Obstacle state is shared by the legs of one permutation and reset before
// the next one, so every order starts from the same board.
//
// Complexity: O(n!·n·A) where A is the cost of one astar.Find call. Goal
// counts above MaxGoals (default 9) are rejected with ErrTooManyGoals.
package solver
