/*
Package html renders R-trees as SVG images embedded in an HTML page.

Every directory node of a tree is drawn as an outlined rectangle, styled by its
depth; stored rectangles are drawn filled. The page is assembled as a node tree
of package golang.org/x/net/html and serialized with html.Render, which takes
care of escaping.

The drawing is meant for debugging and for visualizing small trees.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package html

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
