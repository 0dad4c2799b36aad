// Package vector implements a growable array on top of a raw storage arena,
// with explicit control over when elements are constructed, copied, moved
// and destroyed.
//
// # Overview
//
// Two layers make up the package:
//
//   - Arena owns a fixed-capacity block of storage. It never runs element
//     hooks and has no notion of which slots are live.
//   - Vector owns exactly one Arena plus a logical size. Slots [0, Size())
//     hold live elements; the rest are raw. Vector alone constructs into and
//     destroys out of its arena.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	v.PushBack(1)
//	v.PushBack(2)
//	v.Insert(1, 9) // [1 9 2]
//	v.Erase(0)     // [9 2]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Element Lifecycle
//
// Go has no constructors or destructors, so element lifecycle is described
// by Traits:
//
//	v := vector.New(vector.WithTraits(vector.Traits[*Conn]{
//		Construct: func(slot **Conn) error { c, err := dial(); *slot = c; return err },
//		Destroy: func(slot **Conn) {
//			if *slot != nil { // moved-from slots hold nil
//				(*slot).Close()
//			}
//		},
//	}))
//
// Nil hooks fall back to plain value semantics: zero value construction,
// assignment for copy, assignment plus zeroing of the source for move.
//
// # Relocation and Failure Safety
//
// When the arena has to grow, live elements are relocated into a new arena.
// If Traits.Move is guaranteed not to fail (nil, or NoFailMove set) or the
// type is NotCopyable, elements are moved; otherwise they are copied, so a
// failing relocation never leaves the old storage half-moved. The decision is
// made once per relocation batch.
//
// Operations that reallocate (NewSized, Clone, Reserve, growing Resize,
// inserting into a full vector) build the new arena completely before
// adopting it. On failure the elements built so far are destroyed and the
// vector keeps its old storage. Insertion into spare capacity shifts
// elements in place; a failing hook there leaves a valid vector of the
// original size, and a raw slot that was never constructed is only cleared,
// never destroyed.
//
// # Growth
//
//   - Insert and PushBack into a full vector: capacity doubles (1 when empty)
//   - Resize beyond capacity: max(2*Capacity(), n)
//   - Reserve(n): exactly n
//
// Doubling keeps PushBack amortized O(1).
//
// # Errors
//
//   - ErrAllocation: an arena could not be allocated (limit from Config,
//     negative or overflowing capacity)
//   - *ElementError: a Traits hook failed; Unwrap returns the hook's error
//   - ErrNotCopyable: a copy was requested for a NotCopyable type
//
// Precondition violations (PopBack on an empty vector, out of range index or
// position) panic.
//
// # Metrics and Monitoring
//
//	s := v.Stats()
//	fmt.Printf("Utilization: %.2f%%\n", s.Utilization*100)
//
//	reg := prometheus.NewRegistry()
//	v := vector.New(vector.WithMetrics[int](reg, "requests"))
package vector
