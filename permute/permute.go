package permute

import "iter"

// Generator yields every permutation of {0, …, n-1} exactly once.
type Generator struct {
	n       int
	cur     []int
	started bool
	done    bool
}

// New returns a generator over n indices. It panics if n is negative.
func New(n int) *Generator {
	if n < 0 {
		panic("permute: negative length")
	}
	g := &Generator{n: n, cur: make([]int, n)}
	g.Reset()
	return g
}

// Len returns the number of indices being permuted.
func (g *Generator) Len() int { return g.n }

// Reset rewinds the generator to the identity permutation.
func (g *Generator) Reset() {
	for i := range g.cur {
		g.cur[i] = i
	}
	g.started = false
	g.done = false
}

// Next returns a copy of the next permutation, or ok=false once all n! have
// been produced. For n == 0 the single empty permutation is produced once.
func (g *Generator) Next() (perm []int, ok bool) {
	if g.done {
		return nil, false
	}
	if g.started && !g.advance() {
		g.done = true
		return nil, false
	}
	g.started = true
	perm = make([]int, g.n)
	copy(perm, g.cur)
	return perm, true
}

// advance rearranges cur into its lexicographic successor.
// It returns false when cur is already the last permutation.
func (g *Generator) advance() bool {
	a := g.cur
	// 1) Find the rightmost ascent a[i] < a[i+1].
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	// 2) Swap a[i] with the rightmost element larger than it.
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	// 3) Reverse the descending suffix.
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
	return true
}

// All returns an iterator over the remaining permutations of g.
// Ranging over it twice without Reset yields nothing the second time.
func (g *Generator) All() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for p, ok := g.Next(); ok; p, ok = g.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Count returns n!, saturating at the maximum uint64.
func Count(n int) uint64 {
	var c uint64 = 1
	for k := 2; k <= n; k++ {
		next := c * uint64(k)
		if next/uint64(k) != c {
			return ^uint64(0)
		}
		c = next
	}
	return c
}
