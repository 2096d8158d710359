// Package weightcache persists node weights between runs.
//
// The encoding is one "id<TAB>weight" line per node, sorted by identifier.
// Non-finite weights are written as the literal NaN and every non-finite
// value reads back as 0. Files whose name ends in ".sz" are wrapped in the
// snappy framing format.
package weightcache
