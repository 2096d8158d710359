package mcode

import (
	"iter"
	"maps"
	"slices"

	"github.com/katalvlaran/mcode/disjoint"
)

// Network labels proteins by connected component. Each protein gets a
// sequential label on first sight and every Join keeps the left label.
// The zero value is ready to use.
type Network struct {
	set   disjoint.Set[int]
	index map[string]disjoint.Element
}

// Add registers id and returns its element; repeated calls return the same
// element.
func (n *Network) Add(id string) disjoint.Element {
	if e, ok := n.index[id]; ok {
		return e
	}
	if n.index == nil {
		n.index = make(map[string]disjoint.Element)
	}
	e := n.set.Singleton(n.set.Size())
	n.index[id] = e
	return e
}

// Join merges the components of a and b.
func (n *Network) Join(a, b disjoint.Element) {
	n.set.Union(disjoint.KeepLeft[int], a, b)
}

// Link registers both identifiers and joins them.
func (n *Network) Link(a, b string) {
	n.Join(n.Add(a), n.Add(b))
}

// Count returns the number of components.
func (n *Network) Count() int { return n.set.Len() }

// Each yields (identifier, component label) pairs in identifier order.
func (n *Network) Each() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for _, id := range slices.Sorted(maps.Keys(n.index)) {
			if !yield(id, n.set.Find(n.index[id])) {
				return
			}
		}
	}
}
