// Package hint compares a player's recorded attempt with the solved route
// and produces one piece of advice.
//
// The verdict is Optimal when every goal was collected within the best
// move count, NotShortest when every goal was collected with more moves,
// and Incomplete otherwise. Non-optimal attempts get advice:
//
//   - levels with several goals are checked against the solved visiting
//     order, pointing at the first goal collected out of order (or the first
//     goal when none was collected yet);
//   - single-goal levels, and attempts whose goal order already matches,
//     are checked move by move against the solved commands.
package hint
