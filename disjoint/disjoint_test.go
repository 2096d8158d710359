package disjoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcode/disjoint"
)

// TestSingleton checks handle allocation order and component counting.
func TestSingleton(t *testing.T) {
	s := disjoint.New[string]()
	a := s.Singleton("a")
	b := s.Singleton("b")
	c := s.Singleton("c")

	assert.Equal(t, disjoint.Element(0), a)
	assert.Equal(t, disjoint.Element(1), b)
	assert.Equal(t, disjoint.Element(2), c)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Size())
	for _, e := range []disjoint.Element{a, b, c} {
		assert.Equal(t, e, s.FindRepr(e), "singletons are their own representative")
	}
}

// TestSingletonFunc verifies the payload can capture its own handle.
func TestSingletonFunc(t *testing.T) {
	s := disjoint.New[disjoint.Element]()
	s.Singleton(100)
	e := s.SingletonFunc(func(self disjoint.Element) disjoint.Element { return self })
	assert.Equal(t, disjoint.Element(1), e)
	assert.Equal(t, e, s.Find(e))
}

// TestUnion_Idempotent ensures repeated unions never decrement Len twice.
func TestUnion_Idempotent(t *testing.T) {
	s := disjoint.New[int]()
	a := s.Singleton(1)
	b := s.Singleton(2)

	s.Union(disjoint.KeepLeft[int], a, a)
	assert.Equal(t, 2, s.Len(), "self union is a no-op")

	s.Union(disjoint.KeepLeft[int], a, b)
	assert.Equal(t, 1, s.Len())
	s.Union(disjoint.KeepLeft[int], a, b)
	s.Union(disjoint.KeepLeft[int], b, a)
	assert.Equal(t, 1, s.Len(), "joined elements stay joined without further decrements")
	assert.True(t, s.Same(a, b))
}

// TestUnion_CombineOrder checks combine always receives (a, b) payloads,
// even when b's root becomes the parent.
func TestUnion_CombineOrder(t *testing.T) {
	s := disjoint.New[string]()
	concat := func(x, y string) string { return x + y }

	x := s.Singleton("x")
	y := s.Singleton("y")
	z := s.Singleton("z")

	// rank tie: y under x, x.rank = 1
	s.Union(concat, x, y)
	assert.Equal(t, x, s.FindRepr(y))
	assert.Equal(t, "xy", s.Find(y))

	// z has lower rank, so it is attached under x; payload order is still (z, xy)
	s.Union(concat, z, y)
	assert.Equal(t, x, s.FindRepr(z), "higher rank root survives")
	assert.Equal(t, "zxy", s.Find(x), "combine receives left operand first")
}

// TestUnion_RankTieAttachesRight verifies b's root goes under a's root on ties.
func TestUnion_RankTieAttachesRight(t *testing.T) {
	s := disjoint.New[int]()
	a := s.Singleton(0)
	b := s.Singleton(1)
	s.Union(disjoint.KeepRight[int], a, b)

	assert.Equal(t, a, s.FindRepr(b))
	assert.Equal(t, 1, s.Find(a))

	_, ok := s.Data(b)
	assert.False(t, ok, "merged child holds no payload")
	v, ok := s.Data(a)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}

// TestPathCompression builds a deep chain and checks every element resolves
// to the same root afterwards.
func TestPathCompression(t *testing.T) {
	const n = 64
	s := disjoint.WithCapacity[int](n)
	elems := make([]disjoint.Element, n)
	for i := range elems {
		elems[i] = s.Singleton(i)
	}
	// pairwise merges produce a balanced tree of height log n
	for step := 1; step < n; step *= 2 {
		for i := 0; i+step < n; i += 2 * step {
			s.Union(disjoint.KeepLeft[int], elems[i], elems[i+step])
		}
	}
	require.Equal(t, 1, s.Len())
	root := s.FindRepr(elems[n-1])
	for _, e := range elems {
		assert.Equal(t, root, s.FindRepr(e))
		assert.Equal(t, 0, s.Find(e))
	}
}

// TestPartition returns one payload per component.
func TestPartition(t *testing.T) {
	s := disjoint.New[string]()
	a := s.Singleton("a")
	b := s.Singleton("b")
	c := s.Singleton("c")
	d := s.Singleton("d")
	s.Union(disjoint.KeepLeft[string], a, b)
	s.Union(disjoint.KeepLeft[string], c, d)

	assert.ElementsMatch(t, []string{"a", "c"}, s.Partition())
	members := s.Members()
	assert.Len(t, members, 2)
	assert.ElementsMatch(t, []disjoint.Element{a, b}, members[s.FindRepr(a)])
	assert.Equal(t, "{\n\ta\n\tc\n}", s.String())
}

// TestOutOfRangePanics asserts invalid handles are programming errors.
func TestOutOfRangePanics(t *testing.T) {
	s := disjoint.New[int]()
	s.Singleton(1)
	assert.Panics(t, func() { s.Find(5) })
	assert.Panics(t, func() { s.FindRepr(-1) })
	assert.Panics(t, func() { s.Union(disjoint.KeepLeft[int], 0, 3) })
}

// TestZeroValue ensures the zero Set works without New.
func TestZeroValue(t *testing.T) {
	var s disjoint.Set[int]
	e := s.Singleton(7)
	assert.Equal(t, 7, s.Find(e))
	assert.Equal(t, 1, s.Len())
}
