/*
Package rtree provides a dynamic, in-memory R-tree over axis-aligned
rectangles.

The tree supports insertion, intersection search and deletion. Nodes hold at
most MaxEntries entries; non-root nodes hold at least MinEntries. Overflowing
nodes are split with Guttman's quadratic-cost heuristic, underflowing nodes are
condensed by folding their entries into a neighbouring sibling.

Structure:
  - distinct `leafNode` and `innerNode` representations,
  - leaves store data rectangles, inner nodes store (bounding box, child) entries,
  - every inner entry's bounding box is the exact MBR of its child subtree,
  - all leaves are at the same depth; the tree only grows at the root.

A Tree is not safe for concurrent use. Clients needing concurrent access have
to serialize calls themselves.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package rtree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
