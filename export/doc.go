// Package export writes clustering results.
//
//	WriteMembership(w, res, sep)   "id<sep>complex" rows sorted by id
//	WriteGraphviz(w, g, opts...)   "graph {", one "\tA -- B" line per edge, "}"
//
// Write dispatches on a Format parsed from configuration.
package export
