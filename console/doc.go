/*
Package console prints R-trees and query results to a terminal.

Trees are printed as an indented outline, one line per node and per stored
rectangle, with tree levels set apart by color. Result tables align their label
column by display width, which is measured in fixed-width ‘en’s according to
UAX#11 (East Asian Width), applied to the grapheme clusters (UAX#29) of a label.

Colors are switched off by package fatih/color whenever output does not go to a
terminal.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package console

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
