package rtree

import "github.com/npillmayer/spatial/rect"

// treeNode is either a *leafNode or an *innerNode.
type treeNode interface {
	isLeaf() bool
	// Len returns the number of entries of the node.
	Len() int
	// rectAt returns the rectangle of entry i.
	rectAt(i int) rect.Rect
	// MBR returns the minimum bounding rectangle over all entries, or
	// rect.Zero for an empty node. The zero rectangle of an empty node
	// does not cover anything.
	MBR() rect.Rect
	// removeEntryAt drops entry i. For inner nodes the child subtree goes
	// with it, so callers must have relinked anything they want to keep.
	removeEntryAt(i int)
}

// leafNode stores data rectangles.
type leafNode struct {
	items []rect.Rect
}

// entry pairs a bounding box with exactly one child node. The box is always
// the MBR of everything reachable under child.
type entry struct {
	bbox  rect.Rect
	child treeNode
}

// innerNode stores entries leading to child nodes.
type innerNode struct {
	entries []entry
}

func (l *leafNode) isLeaf() bool           { return true }
func (l *leafNode) Len() int               { return len(l.items) }
func (l *leafNode) rectAt(i int) rect.Rect { return l.items[i] }

func (l *leafNode) MBR() rect.Rect {
	return rect.Union(l.items...)
}

func (l *leafNode) removeEntryAt(i int) {
	l.items = removeAt(l.items, i)
}

func (n *innerNode) isLeaf() bool           { return false }
func (n *innerNode) Len() int               { return len(n.entries) }
func (n *innerNode) rectAt(i int) rect.Rect { return n.entries[i].bbox }

func (n *innerNode) MBR() rect.Rect {
	if len(n.entries) == 0 {
		return rect.Zero
	}
	mbr := n.entries[0].bbox
	for _, e := range n.entries[1:] {
		mbr = mbr.ExpandToInclude(e.bbox)
	}
	return mbr
}

func (n *innerNode) removeEntryAt(i int) {
	n.entries[i].child = nil
	n.entries = removeAt(n.entries, i)
}
