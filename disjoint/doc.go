// Package disjoint provides a generic union-find (disjoint-set forest) that
// carries one payload per component.
//
// What
//
//   - Elements are opaque, stable integer handles handed out by Singleton in
//     allocation order (0, 1, 2, …).
//   - Every component owns exactly one payload, stored on its representative
//     (root) slot. Non-root slots hold nothing once merged.
//   - Union merges two components and folds their payloads with a caller
//     supplied combinator.
//
// Why
//
//   - Find with full path compression and Union by rank give near O(1)
//     amortized operations (inverse-Ackermann bound).
//   - Payload folding lets callers keep per-component aggregates (sizes,
//     labels, first member, …) without a second lookup table.
//
// Combinator contract
//
//	Union(combine, a, b) always calls combine(payloadOf(a), payloadOf(b)),
//	regardless of which root ends up as the parent. Non-commutative
//	combinators must be written with that argument order in mind.
//
// Failure semantics
//
//	The root-holds-payload invariant is maintained entirely inside this
//	package. Observing a root without payload, or passing a handle that was
//	never allocated, is a programming error and panics.
//
// Complexity (α = inverse Ackermann)
//
//   - Singleton:           O(1) amortized
//   - Find/FindRepr/Same:  O(α(n)) amortized
//   - Union:               O(α(n)) amortized + cost of combine
//   - Len/Size:            O(1)
//   - Partition:           O(n·α(n))
//
// Usage
//
//	set := disjoint.New[string]()
//	a := set.Singleton("a")
//	b := set.Singleton("b")
//	set.Union(disjoint.KeepLeft[string], a, b)
//	set.Len()   // 1
//	set.Find(b) // "a"
//
// The Set is not safe for concurrent use.
package disjoint
