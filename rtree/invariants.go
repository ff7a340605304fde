package rtree

import (
	"fmt"

	"github.com/npillmayer/spatial/rect"
)

// Check validates structural tree invariants:
//
//   - every non-root node holds between MinEntries and MaxEntries entries,
//   - an inner root holds at least 2 entries, a leaf root at least 1,
//   - every inner entry's box equals the MBR of the rectangles stored below
//     it, recomputed from the leaves,
//   - all leaves are at the same depth, matching Height,
//   - Len matches the number of stored rectangles.
//
// Check is intended for tests; violations indicate bugs in the tree code.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if t.root == nil {
		if t.height != 0 || t.size != 0 {
			return fmt.Errorf("%w: empty tree must have height=0 and len=0, has %d/%d",
				ErrInvariant, t.height, t.size)
		}
		return nil
	}
	if t.height <= 0 {
		return fmt.Errorf("%w: non-empty tree must have height > 0", ErrInvariant)
	}
	items, _, height, err := t.checkNode(t.root, true)
	if err != nil {
		return err
	}
	if height != t.height {
		return fmt.Errorf("%w: height mismatch (%d != %d)", ErrInvariant, height, t.height)
	}
	if items != t.size {
		return fmt.Errorf("%w: size mismatch (%d != %d)", ErrInvariant, items, t.size)
	}
	return nil
}

// checkNode returns the number of stored rectangles under n, their MBR as
// computed from the leaves, and the height of n.
func (t *Tree) checkNode(n treeNode, isRoot bool) (items int, mbr rect.Rect, height int, err error) {
	if n == nil {
		return 0, mbr, 0, fmt.Errorf("%w: nil node", ErrInvariant)
	}
	count := n.Len()
	if count > t.cfg.MaxEntries {
		return 0, mbr, 0, fmt.Errorf("%w: entry count %d exceeds max %d", ErrInvariant, count, t.cfg.MaxEntries)
	}
	switch {
	case isRoot && n.isLeaf() && count == 0:
		return 0, mbr, 0, fmt.Errorf("%w: empty leaf root", ErrInvariant)
	case isRoot && !n.isLeaf() && count < 2:
		return 0, mbr, 0, fmt.Errorf("%w: inner root with %d entries", ErrInvariant, count)
	case !isRoot && count < t.cfg.MinEntries:
		return 0, mbr, 0, fmt.Errorf("%w: entry count %d below min %d", ErrInvariant, count, t.cfg.MinEntries)
	}
	if n.isLeaf() {
		leaf := n.(*leafNode)
		return len(leaf.items), rect.Union(leaf.items...), 1, nil
	}
	inner := n.(*innerNode)
	var childHeight int
	for i, e := range inner.entries {
		cItems, cMBR, cHeight, cErr := t.checkNode(e.child, false)
		if cErr != nil {
			return 0, mbr, 0, cErr
		}
		if e.bbox != cMBR {
			return 0, mbr, 0, fmt.Errorf("%w: entry %d has box %v, child MBR is %v",
				ErrInvariant, i, e.bbox, cMBR)
		}
		if i == 0 {
			childHeight = cHeight
			mbr = cMBR
		} else {
			if cHeight != childHeight {
				return 0, mbr, 0, fmt.Errorf("%w: non-uniform subtree heights", ErrInvariant)
			}
			mbr = mbr.ExpandToInclude(cMBR)
		}
		items += cItems
	}
	return items, mbr, childHeight + 1, nil
}
