/*
Package rectfile reads rectangle records from text files.

Every non-blank line holds one record: four coordinates, separated by white
space or commas, optionally followed by a label which extends to the end of the
line. A '#' starts a comment.

	# x1   y1   x2   y2   label
	0, 0, 10, 10   map extent
	5  5  6   6    a small one

Records are meant as input for building an index (package spatial) and as
query lists for the demo harness.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package rectfile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
