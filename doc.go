/*
Package spatial offers an in-memory spatial index for axis-aligned rectangles.

Index

The index is built on an R-tree (package rtree). Rectangles (package rect) are
inserted, searched by intersection and removed; the tree keeps itself balanced
by splitting overflowing nodes and condensing underflowing ones.

From Guttman, 1984:
An R-tree is a height-balanced tree similar to a B-tree with index records in
its leaf nodes containing pointers to data objects. […] Nodes correspond to disk
pages if the index is disk-resident, and the structure is designed so that a
spatial search requires visiting only a small number of nodes. The index is
completely dynamic; inserts and deletes can be intermixed with searches and no
periodic reorganization is required.

This package keeps the index in memory and adds change notifications:
subscribers receive an Event for every successful insertion or removal.

Index is not safe for concurrent use. Event delivery happens on channels, but
calls to the index itself have to be serialized by clients.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package spatial

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// SpatialError is an error type for the spatial module.
type SpatialError string

func (e SpatialError) Error() string {
	return string(e)
}

// ErrIndexClosed is flagged when subscribing to an index which has been closed.
const ErrIndexClosed = SpatialError("index has been closed")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = SpatialError("illegal arguments")
