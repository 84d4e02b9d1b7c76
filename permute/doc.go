// Package permute enumerates permutations of the index set {0, …, n-1}
// lazily, in lexicographic order, starting from the identity.
//
// A Generator holds only its own cursor, so it is cheap to create, finite,
// and restartable via Reset. It is the enumeration backbone of the
// multi-goal solver, which explicitly accepts factorial blow-up for the small
// goal counts found in puzzle levels.
//
// Complexity:
//
//   - Next: amortised O(1) index swaps, O(n) for the returned copy.
//   - Memory: O(n).
//
// Example:
//
//	gen := permute.New(3)
//	for p, ok := gen.Next(); ok; p, ok = gen.Next() {
//		fmt.Println(p)
//	}
package permute
