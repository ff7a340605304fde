package rtree

import (
	"math"
	"slices"

	"github.com/npillmayer/spatial/rect"
)

// splitLeaf splits an overflowing leaf. The leaf keeps the first group of
// items, the returned new leaf carries the second group.
func (t *Tree) splitLeaf(leaf *leafNode) *leafNode {
	g1, g2 := quadraticSplit(leaf.items, t.cfg.MinEntries)
	items1, items2 := pick(leaf.items, g1), pick(leaf.items, g2)
	leaf.items = append(leaf.items[:0], items1...)
	tracer().Debugf("rtree: split leaf into %d + %d items", len(items1), len(items2))
	return t.makeLeaf(items2)
}

// splitInner splits an overflowing inner node. Children move together with
// their entries; no subtree is copied.
func (t *Tree) splitInner(inner *innerNode) *innerNode {
	boxes := make([]rect.Rect, len(inner.entries))
	for i, e := range inner.entries {
		boxes[i] = e.bbox
	}
	g1, g2 := quadraticSplit(boxes, t.cfg.MinEntries)
	entries1, entries2 := pick(inner.entries, g1), pick(inner.entries, g2)
	clear(inner.entries)
	inner.entries = append(inner.entries[:0], entries1...)
	sibling := &innerNode{entries: make([]entry, 0, t.cfg.MaxEntries+1)}
	sibling.entries = append(sibling.entries, entries2...)
	tracer().Debugf("rtree: split inner node into %d + %d entries", len(entries1), len(entries2))
	return sibling
}

// quadraticSplit partitions rects into two groups, returned as ascending index
// lists. Each group receives at least minEntries elements, provided
// len(rects) >= 2*minEntries.
//
// This is Guttman's quadratic split: the seeds are the pair wasting the most
// area when combined; then, one at a time, the entry with the strongest
// preference for one of the groups is assigned to the group it enlarges less.
func quadraticSplit(rects []rect.Rect, minEntries int) (group1, group2 []int) {
	n := len(rects)
	assert(n >= 2, "quadraticSplit needs at least two rectangles")
	assert(n >= 2*minEntries, "quadraticSplit cannot satisfy minimum occupancy")
	s1, s2 := pickSeeds(rects)
	assigned := make([]bool, n)
	assigned[s1], assigned[s2] = true, true
	group1, group2 = []int{s1}, []int{s2}
	mbr1, mbr2 := rects[s1], rects[s2]
	remaining := n - 2
	for remaining > 0 {
		// If one group needs all the rest to reach the minimum, hand it over.
		if len(group1)+remaining <= minEntries || len(group2)+remaining <= minEntries {
			target := &group1
			if len(group2)+remaining <= minEntries {
				target = &group2
			}
			for i := range rects {
				if !assigned[i] {
					assigned[i] = true
					*target = append(*target, i)
				}
			}
			break
		}
		next, d1, d2 := pickNext(rects, assigned, mbr1, mbr2)
		assigned[next] = true
		remaining--
		if preferFirst(d1, d2, mbr1, mbr2, len(group1), len(group2)) {
			group1 = append(group1, next)
			mbr1 = mbr1.ExpandToInclude(rects[next])
		} else {
			group2 = append(group2, next)
			mbr2 = mbr2.ExpandToInclude(rects[next])
		}
	}
	slices.Sort(group1)
	slices.Sort(group2)
	return group1, group2
}

// pickSeeds selects the pair of rectangles maximizing
// area(combined) - area(a) - area(b). The first such pair wins ties.
func pickSeeds(rects []rect.Rect) (int, int) {
	s1, s2 := 0, 1
	maxWaste := math.Inf(-1)
	for i := 0; i < len(rects); i++ {
		for j := i + 1; j < len(rects); j++ {
			waste := rects[i].ExpandToInclude(rects[j]).Area() - rects[i].Area() - rects[j].Area()
			if waste > maxWaste {
				maxWaste = waste
				s1, s2 = i, j
			}
		}
	}
	return s1, s2
}

// pickNext selects the unassigned rectangle with the largest difference
// between the enlargements of the two groups, and returns these enlargements.
func pickNext(rects []rect.Rect, assigned []bool, mbr1, mbr2 rect.Rect) (next int, d1, d2 float64) {
	next = -1
	maxDiff := -1.0
	for i, r := range rects {
		if assigned[i] {
			continue
		}
		e1, e2 := mbr1.Enlargement(r), mbr2.Enlargement(r)
		if diff := math.Abs(e1 - e2); diff > maxDiff || next < 0 {
			maxDiff = diff
			next, d1, d2 = i, e1, e2
		}
	}
	assert(next >= 0, "pickNext found no unassigned rectangle")
	return next, d1, d2
}

// preferFirst decides group membership from the enlargements d1, d2. Ties go
// to the group with smaller area, then to the group with fewer entries, then
// to group 1.
func preferFirst(d1, d2 float64, mbr1, mbr2 rect.Rect, n1, n2 int) bool {
	switch {
	case d1 < d2:
		return true
	case d2 < d1:
		return false
	}
	a1, a2 := mbr1.Area(), mbr2.Area()
	switch {
	case a1 < a2:
		return true
	case a2 < a1:
		return false
	}
	return n1 <= n2
}
