package disjoint_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/mcode/disjoint"
)

// naiveComponents labels n elements after applying pairs with a quadratic
// relabelling; it serves as the reference partition.
func naiveComponents(n int, pairs [][2]int) []int {
	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	for _, p := range pairs {
		from, to := label[p[1]], label[p[0]]
		if from == to {
			continue
		}
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}
	return label
}

// TestUnionFindSoundness checks FindRepr equality against a naive reference
// and Len against the number of successful merges.
func TestUnionFindSoundness(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	const n = 24
	pairGen := gen.SliceOf(gen.SliceOfN(2, gen.IntRange(0, n-1)))

	properties.Property("same representative iff transitively joined", prop.ForAll(
		func(raw [][]int) bool {
			pairs := make([][2]int, 0, len(raw))
			for _, p := range raw {
				if len(p) != 2 {
					continue
				}
				pairs = append(pairs, [2]int{p[0], p[1]})
			}

			s := disjoint.WithCapacity[int](n)
			elems := make([]disjoint.Element, n)
			for i := range elems {
				elems[i] = s.Singleton(i)
			}

			merges := 0
			for _, p := range pairs {
				if !s.Same(elems[p[0]], elems[p[1]]) {
					merges++
				}
				s.Union(disjoint.KeepLeft[int], elems[p[0]], elems[p[1]])
			}
			if s.Len() != n-merges {
				return false
			}

			label := naiveComponents(n, pairs)
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					if (label[i] == label[j]) != s.Same(elems[i], elems[j]) {
						return false
					}
				}
			}
			return len(s.Partition()) == s.Len()
		},
		pairGen,
	))

	properties.Property("sum combinator preserves total mass", prop.ForAll(
		func(raw [][]int) bool {
			s := disjoint.New[int]()
			elems := make([]disjoint.Element, n)
			for i := range elems {
				elems[i] = s.Singleton(1)
			}
			for _, p := range raw {
				if len(p) != 2 {
					continue
				}
				s.Union(func(a, b int) int { return a + b }, elems[p[0]], elems[p[1]])
			}
			total := 0
			for _, size := range s.Partition() {
				total += size
			}
			return total == n
		},
		pairGen,
	))

	properties.TestingRun(t)
}
