package astar

// openItem is one entry of the open set.
type openItem struct {
	index int     // tile index
	f     float64 // score at the time of the last push or fix
	seq   uint64  // insertion rank, used to break ties in f
	pos   int     // position inside the heap slice
}

// openQueue is a min-heap of *openItem ordered by f, then by insertion rank.
type openQueue []*openItem

// Len returns the number of items in the heap.
func (q openQueue) Len() int { return len(q) }

// Less orders by ascending f; equal scores keep insertion order.
func (q openQueue) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}
	return q[i].seq < q[j].seq
}

// Swap swaps two elements and keeps their positions current.
func (q openQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].pos = i
	q[j].pos = j
}

// Push adds x, which must be an *openItem.
func (q *openQueue) Push(x interface{}) {
	item := x.(*openItem)
	item.pos = len(*q)
	*q = append(*q, item)
}

// Pop removes and returns the last element.
func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.pos = -1
	*q = old[:n-1]

	return item
}
