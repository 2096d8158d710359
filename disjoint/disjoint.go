package disjoint

import (
	"fmt"
	"strings"
)

// New returns an empty Set.
func New[T any]() *Set[T] {
	return &Set[T]{}
}

// WithCapacity returns an empty Set with room for n singletons.
func WithCapacity[T any](n int) *Set[T] {
	if n < 0 {
		n = 0
	}
	return &Set[T]{slots: make([]slot[T], 0, n)}
}

// Singleton allocates a new one-element component holding data and returns
// its handle.
// Complexity: O(1) amortized.
func (s *Set[T]) Singleton(data T) Element {
	n := len(s.slots)
	s.slots = append(s.slots, slot[T]{data: data, present: true, parent: n})
	s.components++

	return Element(n)
}

// SingletonFunc allocates a new component whose payload is computed from the
// handle it is about to receive. Useful when the payload must refer back to
// its own element.
func (s *Set[T]) SingletonFunc(f func(Element) T) Element {
	e := Element(len(s.slots))

	return s.Singleton(f(e))
}

// findSet returns the root index of id and retargets every slot on the walked
// path directly to that root.
func (s *Set[T]) findSet(id int) int {
	// 1) locate the root
	root := id
	for root != s.slots[root].parent {
		root = s.slots[root].parent
	}
	if root == id {
		return id
	}

	// 2) full compression: point every visited slot at the root
	for id != root {
		next := s.slots[id].parent
		s.slots[id].parent = root
		id = next
	}

	return root
}

// checked panics with a descriptive message when e was never allocated.
func (s *Set[T]) checked(e Element) int {
	if e < 0 || int(e) >= len(s.slots) {
		panic(fmt.Sprintf("disjoint: element %d out of range [0,%d)", e, len(s.slots)))
	}
	return int(e)
}

// FindRepr returns the representative handle of the component containing e.
// Complexity: O(α(n)) amortized.
func (s *Set[T]) FindRepr(e Element) Element {
	return Element(s.findSet(s.checked(e)))
}

// Find returns the payload of the component containing e.
// Complexity: O(α(n)) amortized.
func (s *Set[T]) Find(e Element) T {
	root := &s.slots[s.findSet(s.checked(e))]
	if !root.present {
		panic(invariantViolated)
	}

	return root.data
}

// Data returns the payload stored directly at e. The second result is false
// when e is not (or no longer) a representative.
func (s *Set[T]) Data(e Element) (T, bool) {
	sl := &s.slots[s.checked(e)]
	if !sl.present {
		var zero T
		return zero, false
	}

	return sl.data, true
}

// Same reports whether a and b belong to the same component.
func (s *Set[T]) Same(a, b Element) bool {
	return s.FindRepr(a) == s.FindRepr(b)
}

// Union merges the components of a and b. It is a no-op when they already
// share a representative.
//
// Rank policy: the lower-rank root is attached under the higher-rank root;
// on a tie b's root goes under a's root and a's rank grows by one.
// The surviving root stores combine(payload(a), payload(b)).
//
// Complexity: O(α(n)) amortized plus the cost of combine.
func (s *Set[T]) Union(combine Combine[T], a, b Element) {
	pa := s.findSet(s.checked(a))
	pb := s.findSet(s.checked(b))
	if pa == pb {
		return
	}

	ra, rb := &s.slots[pa], &s.slots[pb]
	if !ra.present || !rb.present {
		panic(invariantViolated)
	}

	// move both payloads out before relinking
	aData, bData := ra.data, rb.data
	var zero T
	ra.data, ra.present = zero, false
	rb.data, rb.present = zero, false
	s.components--

	root := pa
	switch {
	case ra.rank < rb.rank:
		ra.parent = pb
		root = pb
	case ra.rank > rb.rank:
		rb.parent = pa
	default:
		rb.parent = pa
		ra.rank++
	}

	s.slots[root].data = combine(aData, bData)
	s.slots[root].present = true
}

// Len returns the number of distinct components.
func (s *Set[T]) Len() int { return s.components }

// Size returns the number of elements ever allocated.
func (s *Set[T]) Size() int { return len(s.slots) }

// Partition returns one payload per live component, ordered by representative
// handle.
// Complexity: O(n·α(n)).
func (s *Set[T]) Partition() []T {
	out := make([]T, 0, s.components)
	for i := range s.slots {
		// a slot is its own parent exactly when it is a representative
		if s.findSet(i) != i {
			continue
		}
		if !s.slots[i].present {
			panic(invariantViolated)
		}
		out = append(out, s.slots[i].data)
	}

	return out
}

// Members groups every element by its representative handle.
func (s *Set[T]) Members() map[Element][]Element {
	groups := make(map[Element][]Element, s.components)
	for i := range s.slots {
		root := Element(s.findSet(i))
		groups[root] = append(groups[root], Element(i))
	}

	return groups
}

// String renders one payload per line inside braces.
func (s *Set[T]) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, p := range s.Partition() {
		fmt.Fprintf(&sb, "\t%v\n", p)
	}
	sb.WriteString("}")

	return sb.String()
}
