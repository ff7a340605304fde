package rtree

import (
	"math"

	"github.com/npillmayer/spatial/rect"
)

// Remove deletes one stored rectangle matching r and reports whether one was
// found. Matching uses the tree's configured tolerance (see Config.Tolerance);
// with the default of 0 only an exactly equal rectangle matches.
func (t *Tree) Remove(r rect.Rect) bool {
	return t.RemoveWithin(r, t.cfg.Tolerance)
}

// RemoveWithin deletes the first stored rectangle whose four coordinates each
// differ from r by less than tol, and reports whether one was found.
// A tolerance ≤ 0 asks for an exact match.
//
// Not finding a rectangle is a regular outcome, not an error.
func (t *Tree) RemoveWithin(r rect.Rect, tol float64) bool {
	if t.IsEmpty() {
		return false
	}
	if math.IsNaN(tol) || tol < 0 {
		tol = 0
	}
	if !t.removeRecursive(t.root, r, tol) {
		return false
	}
	t.size--
	t.normalizeRoot()
	return true
}

// removeRecursive removes the first rectangle matching r from subtree n.
//
// The descent only enters children whose box intersects r, grown by tol, and
// tries them in order until one reports success. On the way back up, an
// underflowing child is condensed right away; every other child on the path
// gets its box refreshed.
func (t *Tree) removeRecursive(n treeNode, r rect.Rect, tol float64) bool {
	if n.isLeaf() {
		leaf := n.(*leafNode)
		for i, item := range leaf.items {
			if item.ApproxEqual(r, tol) {
				leaf.removeEntryAt(i)
				return true
			}
		}
		return false
	}
	inner := n.(*innerNode)
	probe := r.Buffer(tol)
	for slot := 0; slot < len(inner.entries); slot++ {
		e := inner.entries[slot]
		if !e.bbox.Intersects(probe) {
			continue
		}
		if !t.removeRecursive(e.child, r, tol) {
			continue
		}
		if t.underflows(e.child) {
			t.condense(inner, slot)
		} else {
			refreshEntry(inner, slot)
		}
		return true
	}
	return false
}

// condense repairs the underflowing child at slot of parent. The child's
// remaining entries (with their subtrees, for inner nodes) are folded into a
// sibling and the child's slot is dropped from parent. The sibling is the
// node taking over the child's position, i.e. the next slot, or the previous
// slot if the child is the last one. Should the sibling overflow, it is split
// and the new node is added to parent right after it, so parent's entry count
// never grows.
func (t *Tree) condense(parent *innerNode, slot int) {
	child := parent.entries[slot].child
	target := slot + 1
	if target == len(parent.entries) {
		target = slot - 1
	}
	if target < 0 {
		// only child: can only underflow by running empty
		assert(child.Len() == 0, "condense: lone child with entries left")
		parent.removeEntryAt(slot)
		tracer().Debugf("rtree: condense dropped empty only child")
		return
	}
	sibling := parent.entries[target].child
	tracer().Debugf("rtree: condense folds %d entries into sibling with %d entries",
		child.Len(), sibling.Len())
	split := t.fold(child, sibling)
	refreshEntry(parent, target)
	parent.removeEntryAt(slot)
	if target > slot {
		target--
	}
	if split != nil {
		parent.entries = insertAt(parent.entries, target+1, entry{bbox: split.MBR(), child: split})
	}
}

// fold moves all entries of src to dst. src and dst must be on the same level.
// If dst overflows, it is split and the new sibling is returned.
func (t *Tree) fold(src, dst treeNode) treeNode {
	assert(src.isLeaf() == dst.isLeaf(), "fold called for nodes of different levels")
	if dst.isLeaf() {
		from, to := src.(*leafNode), dst.(*leafNode)
		to.items = append(to.items, from.items...)
		from.items = nil
		if t.overflows(to) {
			return t.splitLeaf(to)
		}
		return nil
	}
	from, to := src.(*innerNode), dst.(*innerNode)
	to.entries = append(to.entries, from.entries...)
	from.entries = nil
	if t.overflows(to) {
		return t.splitInner(to)
	}
	return nil
}

// normalizeRoot canonicalizes the root after a deletion:
//   - empty leaf root => empty tree (height 0)
//   - internal root with a single child => collapse repeatedly.
func (t *Tree) normalizeRoot() {
	for {
		switch root := t.root.(type) {
		case nil:
			t.height = 0
			return
		case *leafNode:
			if len(root.items) == 0 {
				t.root = nil
				t.height = 0
			}
			return
		case *innerNode:
			switch len(root.entries) {
			case 0:
				t.root = nil
				t.height = 0
				return
			case 1:
				t.root = root.entries[0].child
				root.entries = nil
				t.height--
				tracer().Debugf("rtree: root collapsed, height is now %d", t.height)
			default:
				return
			}
		}
	}
}
