package grid

// Reachable floods the board from `from` and reports, per tile index, whether
// the agent can get there. Walkable tiles are always entered; intact
// destructible obstacles are entered only when smash is true. A tile that can
// only be smashed (a Ruby, for instance) counts as reached.
//
// Time:   O(W·H).
// Memory: O(W·H) for the seen flags and queue.
func (g *Grid) Reachable(from Point, smash bool) []bool {
	seen := make([]bool, len(g.tiles))
	start := g.IndexOf(from)
	seen[start] = true
	queue := []int{start}
	var nbrs []int

	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		nbrs = g.Neighbors(nbrs[:0], u)
		for _, v := range nbrs {
			if seen[v] {
				continue
			}
			t := &g.tiles[v]
			if !t.Walkable() && !(smash && t.Obstacle.Destructible()) {
				continue
			}
			seen[v] = true
			queue = append(queue, v)
		}
	}
	return seen
}

// Unreachable returns the goals that Reachable cannot get to from `from`.
func (g *Grid) Unreachable(from Point, smash bool, goals []Goal) []Goal {
	seen := g.Reachable(from, smash)
	var out []Goal
	for _, goal := range goals {
		if !seen[goal.Index] {
			out = append(out, goal)
		}
	}
	return out
}
