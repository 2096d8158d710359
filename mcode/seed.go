package mcode

import (
	"maps"
	"math"
	"slices"
)

// PickSeed returns the identifier with the largest weight. Ties go to the
// lexicographically smallest identifier; NaN weights lose to every number.
func PickSeed(w Weights) (string, error) {
	if len(w) == 0 {
		return "", ErrEmptyWeights
	}

	ids := slices.Sorted(maps.Keys(w))
	best := ids[0]
	for _, id := range ids[1:] {
		v, b := w[id], w[best]
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(b) || v > b {
			best = id
		}
	}
	return best, nil
}
