// Package omap provides an insertion-order-preserving map.
//
// This package implements an ordered map combining a native Go map for
// O(1) lookup with a doubly linked list tracking insertion order:
//
//   - Ordering: iteration replays the order keys were first inserted
//   - Updates: re-setting an existing key never moves it
//   - Deletion: O(1) unlink via a key -> node index, no list traversal
//   - Iteration: lazy forward/backward iterators over keys or pairs,
//     plus an eager ordered key snapshot
//
// Usage:
//
//	m := omap.New[string, int]()
//	m.Set("a", 1)
//	m.Set("b", 2)
//	for k, v := range m.Pairs() {
//		fmt.Println(k, v)
//	}
//
// Thread Safety:
//
// None. The map is for single-goroutine use; callers needing shared
// access must synchronize externally, the same as for a plain Go map.
//
// Mutation during iteration:
//
// Deleting the key an iterator currently rests on terminates that
// iterator early. Any other structural mutation while an iterator is
// running is unsupported and its effect on that iterator is undefined.
package omap
