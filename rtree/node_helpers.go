package rtree

import "github.com/npillmayer/spatial/rect"

// makeLeaf materializes a new leaf owning a private copy of items.
func (t *Tree) makeLeaf(items []rect.Rect) *leafNode {
	leaf := &leafNode{
		items: make([]rect.Rect, len(items), t.cfg.MaxEntries+1),
	}
	copy(leaf.items, items)
	return leaf
}

// makeInternal materializes a new inner node with one entry per child, the
// entries' boxes computed from the children's MBRs.
func (t *Tree) makeInternal(children ...treeNode) *innerNode {
	inner := &innerNode{
		entries: make([]entry, 0, t.cfg.MaxEntries+1),
	}
	for _, child := range children {
		assert(child != nil, "makeInternal called with nil child")
		inner.entries = append(inner.entries, entry{bbox: child.MBR(), child: child})
	}
	return inner
}

func (t *Tree) overflows(n treeNode) bool {
	return n.Len() > t.cfg.MaxEntries
}

func (t *Tree) underflows(n treeNode) bool {
	return n.Len() < t.cfg.MinEntries
}

// refreshEntry recomputes the bounding box stored for the child at slot.
func refreshEntry(parent *innerNode, slot int) {
	parent.entries[slot].bbox = parent.entries[slot].child.MBR()
}
