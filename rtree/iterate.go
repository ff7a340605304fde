package rtree

import "github.com/npillmayer/spatial/rect"

// ForEach walks all stored rectangles, leaf by leaf.
//
// Iteration stops early if fn returns false.
func (t *Tree) ForEach(fn func(r rect.Rect) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.forEachNode(t.root, fn)
}

func (t *Tree) forEachNode(n treeNode, fn func(r rect.Rect) bool) bool {
	if n.isLeaf() {
		for _, item := range n.(*leafNode).items {
			if !fn(item) {
				return false
			}
		}
		return true
	}
	for _, e := range n.(*innerNode).entries {
		if !t.forEachNode(e.child, fn) {
			return false
		}
	}
	return true
}

// Items returns all stored rectangles.
func (t *Tree) Items() []rect.Rect {
	items := make([]rect.Rect, 0, t.Len())
	t.ForEach(func(r rect.Rect) bool {
		items = append(items, r)
		return true
	})
	return items
}

// NodeInfo describes a tree node visited by Walk.
type NodeInfo struct {
	Depth   int       // 0 for the root
	Leaf    bool      // true for leaf nodes
	MBR     rect.Rect // bounding box of the node's entries
	Entries int       // number of entries
	Items   []rect.Rect
}

// Walk visits all nodes in depth-first pre-order. For leaves, NodeInfo.Items
// holds a copy of the leaf's rectangles.
//
// Walk does not descend into a node's children if fn returns false for it.
func (t *Tree) Walk(fn func(n NodeInfo) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.walkNode(t.root, 0, fn)
}

func (t *Tree) walkNode(n treeNode, depth int, fn func(n NodeInfo) bool) {
	info := NodeInfo{
		Depth:   depth,
		Leaf:    n.isLeaf(),
		MBR:     n.MBR(),
		Entries: n.Len(),
	}
	if info.Leaf {
		info.Items = append([]rect.Rect(nil), n.(*leafNode).items...)
	}
	if !fn(info) || info.Leaf {
		return
	}
	for _, e := range n.(*innerNode).entries {
		t.walkNode(e.child, depth+1, fn)
	}
}
