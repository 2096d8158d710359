// Package builder assembles deterministic core.Graph fixtures: complete
// graphs, cycles, paths, stars, disjoint clique families and seeded random
// sparse graphs.
//
// One orchestrator, BuildGraph(bopts, cons...), creates the graph, resolves
// the options and applies constructors in order, so several topologies can be
// composed into one fixture (for example two cliques plus a bridge).
//
// Options:
//
//	WithIDScheme(fn)   vertex naming (default: decimal index)
//	WithSeed(seed)     seeded RNG for RandomSparse and weight draws
//	WithWeightFn(fn)   edge score generator (default: constant 1)
//
// Constructors validate their parameters and return sentinel errors
// (ErrTooFewVertices, ErrInvalidProbability); they never panic at runtime.
// Option constructors panic on nil arguments.
package builder
