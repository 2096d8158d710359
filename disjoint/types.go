package disjoint

// Element is a stable handle to a slot of a Set. Handles are assigned
// monotonically by Singleton and are never reused.
type Element int

// slot is one entry of the forest. Only representatives have present == true.
type slot[T any] struct {
	data    T      // payload, meaningful only when present
	present bool   // true iff this slot is a representative
	rank    uint32 // upper bound on the height of the subtree rooted here
	parent  int    // index of the parent slot; equal to own index on roots
}

// Set is a disjoint-set forest over handles with one payload per component.
// The zero value is ready to use.
type Set[T any] struct {
	slots      []slot[T]
	components int
}

// Combine folds the payloads of two components being merged.
// The first argument always belongs to the left operand of Union.
type Combine[T any] func(a, b T) T

// KeepLeft is a Combine that retains the payload of the left operand.
func KeepLeft[T any](a, _ T) T { return a }

// KeepRight is a Combine that retains the payload of the right operand.
func KeepRight[T any](_, b T) T { return b }

// invariantViolated is the panic message for a representative without payload.
const invariantViolated = "disjoint: invariant violated: representative holds no payload"
