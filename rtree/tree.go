package rtree

import (
	"fmt"

	"github.com/npillmayer/spatial/rect"
)

// Tree is an in-memory R-tree of rectangles.
//
// The tree exclusively owns its root node; every node exclusively owns its
// children. A Tree is created empty and nodes appear on first insertion.
type Tree struct {
	cfg    Config
	root   treeNode
	height int // 0 means empty tree
	size   int // number of stored rectangles
}

// New creates an empty tree with validated configuration.
func New(cfg Config) (*Tree, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	tracer().Debugf("rtree: new tree with max=%d, min=%d", cfg.MaxEntries, cfg.MinEntries)
	return &Tree{cfg: cfg}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree) Config() Config {
	return t.cfg
}

// IsEmpty reports whether the tree stores no rectangles.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Len returns the number of stored rectangles.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Height returns the tree height, where 0 means empty and 1 means a leaf root.
func (t *Tree) Height() int {
	if t == nil {
		return 0
	}
	return t.height
}

// Bounds returns the MBR of all stored rectangles. ok is false for an empty tree.
func (t *Tree) Bounds() (mbr rect.Rect, ok bool) {
	if t.IsEmpty() {
		return rect.Zero, false
	}
	return t.root.MBR(), true
}

// Clear drops all nodes.
func (t *Tree) Clear() {
	t.root = nil
	t.height = 0
	t.size = 0
}

// --- Insertion -------------------------------------------------------------

// pathStep records one step of a root-to-leaf descent: the inner node passed
// and the slot of the child taken.
type pathStep struct {
	inner *innerNode
	slot  int
}

// Insert adds a rectangle to the tree.
func (t *Tree) Insert(r rect.Rect) {
	assert(t != nil, "Insert called on nil tree")
	t.size++
	if t.root == nil {
		t.root = t.makeLeaf([]rect.Rect{r})
		t.height = 1
		return
	}
	leaf, path := t.chooseLeaf(r)
	leaf.items = append(leaf.items, r)
	var sibling treeNode
	if t.overflows(leaf) {
		sibling = t.splitLeaf(leaf)
	}
	t.adjustTree(path, sibling)
}

// chooseLeaf descends from the root to the leaf best suited to receive r and
// returns it, together with the descent path.
func (t *Tree) chooseLeaf(r rect.Rect) (*leafNode, []pathStep) {
	path := make([]pathStep, 0, t.height)
	n := t.root
	for !n.isLeaf() {
		inner := n.(*innerNode)
		slot := chooseSubtree(inner, r)
		path = append(path, pathStep{inner: inner, slot: slot})
		n = inner.entries[slot].child
	}
	return n.(*leafNode), path
}

// chooseSubtree selects the entry needing least area enlargement to include r.
// Ties are resolved by the smaller resulting area, then by position.
func chooseSubtree(inner *innerNode, r rect.Rect) int {
	assert(len(inner.entries) > 0, "chooseSubtree called with empty inner node")
	best := 0
	bestDelta := inner.entries[0].bbox.Enlargement(r)
	bestArea := inner.entries[0].bbox.ExpandToInclude(r).Area()
	for i := 1; i < len(inner.entries); i++ {
		bbox := inner.entries[i].bbox
		delta := bbox.Enlargement(r)
		area := bbox.ExpandToInclude(r).Area()
		if delta < bestDelta || (delta == bestDelta && area < bestArea) {
			best, bestDelta, bestArea = i, delta, area
		}
	}
	return best
}

// adjustTree walks path bottom-up, refreshing the bounding box of each child
// just modified. A non-nil sibling is the result of a split one level below
// and is added to the parent, possibly splitting the parent in turn. A split
// propagating past the root grows the tree by one level.
func (t *Tree) adjustTree(path []pathStep, sibling treeNode) {
	for i := len(path) - 1; i >= 0; i-- {
		step := path[i]
		refreshEntry(step.inner, step.slot)
		if sibling == nil {
			continue
		}
		step.inner.entries = append(step.inner.entries, entry{bbox: sibling.MBR(), child: sibling})
		sibling = nil
		if t.overflows(step.inner) {
			sibling = t.splitInner(step.inner)
		}
	}
	if sibling != nil {
		t.root = t.makeInternal(t.root, sibling)
		t.height++
		tracer().Debugf("rtree: root split, height is now %d", t.height)
	}
}

// --- Search ----------------------------------------------------------------

// Search returns all stored rectangles intersecting query, in no particular
// order. Rectangles touching query at the boundary are included.
func (t *Tree) Search(query rect.Rect) []rect.Rect {
	var result []rect.Rect
	t.SearchFunc(query, func(r rect.Rect) bool {
		result = append(result, r)
		return true
	})
	return result
}

// SearchFunc calls fn for every stored rectangle intersecting query.
// Iteration stops early if fn returns false.
func (t *Tree) SearchFunc(query rect.Rect, fn func(r rect.Rect) bool) {
	if t.IsEmpty() || fn == nil {
		return
	}
	t.searchNode(t.root, query, fn)
}

func (t *Tree) searchNode(n treeNode, query rect.Rect, fn func(r rect.Rect) bool) bool {
	if n.isLeaf() {
		for _, item := range n.(*leafNode).items {
			if item.Intersects(query) && !fn(item) {
				return false
			}
		}
		return true
	}
	for _, e := range n.(*innerNode).entries {
		if !e.bbox.Intersects(query) {
			continue
		}
		if !t.searchNode(e.child, query, fn) {
			return false
		}
	}
	return true
}

// String returns a short description of the tree's shape.
func (t *Tree) String() string {
	if t == nil {
		return "rtree<nil>"
	}
	return fmt.Sprintf("rtree<len=%d height=%d max=%d min=%d>",
		t.size, t.height, t.cfg.MaxEntries, t.cfg.MinEntries)
}
