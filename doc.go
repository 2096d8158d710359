// Package mcode discovers protein complexes in interaction networks by
// k-core scoring and weight-gated seed growth.
//
// What is in the module?
//
//	disjoint/    generic union-find with payloads and full path compression
//	core/        interned, index-based undirected multigraph
//	bfs/         depth-bounded breadth-first search and induced subgraphs
//	dfs/         explicit-stack depth-first forest walk with discovery hooks
//	kcore/       degree peeling, coreness and the K·density weight
//	mcode/       per-node scoring, seed selection and complex assignment
//	builder/     deterministic graph fixtures
//	converters/  export to gonum graphs
//	ingest/      delimited edge-list loader with sentinel and score filtering
//	weightcache/ text (optionally snappy-framed) weight persistence
//	export/      membership tables and Graphviz output
//	config/      YAML + environment configuration with validation
//	metrics/     prometheus registry for a pipeline run
//	pipeline/    load → score → assign → export
//	cmd/mcode/   command-line entry point
//
// Quick ASCII example:
//
//	A───B     D───E
//	 \ /
//	  C
//
// A triangle has k=2 and density 1, so each of its nodes weighs 2.0; the
// D–E edge weighs 1.0. With density 0.5 the two components become two
// complexes {A,B,C} and {D,E}.
//
//	go install github.com/katalvlaran/mcode/cmd/mcode@latest
package mcode
