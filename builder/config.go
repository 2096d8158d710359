package builder

import (
	"math/rand"
	"strconv"
)

// defaultSeed keeps fixtures reproducible when no seed is given.
const defaultSeed = 42

// builderConfig is the resolved, immutable view of all BuilderOptions.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn func(*rand.Rand) uint16
}

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// IDFn maps a constructor-local index to a vertex identifier.
type IDFn func(idx int) string

// DefaultIDFn names vertices by decimal index.
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// SymbolIDFn names vertices "A".."Z" and panics beyond 26 vertices.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic("builder: SymbolIDFn index out of [0,25]")
	}
	return string(rune('A' + idx))
}

// PrefixIDFn names vertices prefix+index, e.g. "P0", "P1".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx) }
}

// WithIDScheme sets the vertex naming function.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithSeed installs a seeded RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the edge score generator.
func WithWeightFn(fn func(*rand.Rand) uint16) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// newBuilderConfig applies opts over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      rand.New(rand.NewSource(defaultSeed)),
		weightFn: func(*rand.Rand) uint16 { return 1 },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
