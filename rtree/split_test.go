package rtree

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/spatial/rect"
)

func TestPickSeedsMaximizesWaste(t *testing.T) {
	rects := []rect.Rect{
		rect.New(0, 0, 1, 1),
		rect.New(0.5, 0.5, 1.5, 1.5),
		rect.New(10, 10, 11, 11),
		rect.New(1, 0, 2, 1),
	}
	s1, s2 := pickSeeds(rects)
	if s1 != 0 || s2 != 2 {
		t.Fatalf("expected seeds (0,2), got (%d,%d)", s1, s2)
	}
}

func TestQuadraticSplitSeparatesClusters(t *testing.T) {
	rects := []rect.Rect{
		rect.New(0, 0, 1, 1),
		rect.New(10, 10, 11, 11),
		rect.New(0.5, 0, 1.5, 1),
		rect.New(10.5, 10, 11.5, 11),
		rect.New(0, 0.5, 1, 1.5),
	}
	g1, g2 := quadraticSplit(rects, 2)
	if len(g1)+len(g2) != len(rects) {
		t.Fatalf("split lost entries: %v / %v", g1, g2)
	}
	want1, want2 := []int{0, 2, 4}, []int{1, 3}
	if !equalInts(g1, want1) || !equalInts(g2, want2) {
		t.Fatalf("expected clusters %v / %v, got %v / %v", want1, want2, g1, g2)
	}
}

func TestQuadraticSplitHonoursMinimum(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for minEntries := 1; minEntries <= 5; minEntries++ {
		for n := 2 * minEntries; n <= 2*minEntries+6; n++ {
			rects := make([]rect.Rect, n)
			for i := range rects {
				rects[i] = randomBox(rnd, 1, 0.2)
			}
			// one far-away outlier forces lopsided preferences
			rects[n-1] = rect.New(50, 50, 51, 51)
			g1, g2 := quadraticSplit(rects, minEntries)
			if len(g1) < minEntries || len(g2) < minEntries {
				t.Fatalf("min=%d n=%d: groups too small %v / %v", minEntries, n, g1, g2)
			}
			seen := make(map[int]bool)
			for _, g := range [][]int{g1, g2} {
				for k, i := range g {
					if seen[i] {
						t.Fatalf("index %d assigned twice", i)
					}
					seen[i] = true
					if k > 0 && g[k-1] >= i {
						t.Fatalf("group not in original order: %v", g)
					}
				}
			}
			if len(seen) != n {
				t.Fatalf("min=%d n=%d: %d of %d entries assigned", minEntries, n, len(seen), n)
			}
		}
	}
}

func TestSplitInnerMovesChildren(t *testing.T) {
	tree := newTestTree(t, 4, 2)
	var children []treeNode
	for i := 0; i < 5; i++ {
		x := float64(i * 10)
		children = append(children, tree.makeLeaf([]rect.Rect{rect.New(x, 0, x+1, 1), rect.New(x, 2, x+1, 3)}))
	}
	inner := tree.makeInternal(children...)
	sibling := tree.splitInner(inner)
	if inner.Len()+sibling.Len() != 5 {
		t.Fatalf("expected 5 entries after split, have %d + %d", inner.Len(), sibling.Len())
	}
	found := make(map[treeNode]int)
	for _, n := range []*innerNode{inner, sibling} {
		for _, e := range n.entries {
			found[e.child]++
			if e.bbox != e.child.MBR() {
				t.Errorf("entry box %v does not match child MBR %v", e.bbox, e.child.MBR())
			}
		}
	}
	for _, c := range children {
		if found[c] != 1 {
			t.Fatalf("child referenced %d times after split", found[c])
		}
	}
}

func TestSliceHelpers(t *testing.T) {
	s := []int{1, 2, 4}
	s = insertAt(s, 2, 3)
	s = insertAt(s, 0, 0)
	s = insertAt(s, len(s), 5, 6)
	if !equalInts(s, []int{0, 1, 2, 3, 4, 5, 6}) {
		t.Fatalf("unexpected insertAt result %v", s)
	}
	s = removeAt(s, 0)
	s = removeAt(s, 3)
	s = removeAt(s, len(s)-1)
	if !equalInts(s, []int{1, 2, 3, 5}) {
		t.Fatalf("unexpected removeAt result %v", s)
	}
	if p := pick(s, []int{1, 3}); !equalInts(p, []int{2, 5}) {
		t.Fatalf("unexpected pick result %v", p)
	}
}

func TestNodeMBR(t *testing.T) {
	tree := newTestTree(t, 4, 2)
	empty := tree.makeLeaf(nil)
	if empty.MBR() != rect.Zero {
		t.Fatalf("expected zero MBR for empty leaf")
	}
	leaf := tree.makeLeaf([]rect.Rect{rect.New(0, 0, 1, 1), rect.New(2, 2, 3, 4)})
	if leaf.MBR() != rect.New(0, 0, 3, 4) {
		t.Fatalf("unexpected leaf MBR %v", leaf.MBR())
	}
	inner := tree.makeInternal(leaf, tree.makeLeaf([]rect.Rect{rect.New(-1, -1, 0, 0)}))
	if inner.MBR() != rect.New(-1, -1, 3, 4) {
		t.Fatalf("unexpected inner MBR %v", inner.MBR())
	}
	inner.removeEntryAt(1)
	if inner.Len() != 1 || inner.MBR() != rect.New(0, 0, 3, 4) {
		t.Fatalf("unexpected state after removeEntryAt: len=%d mbr=%v", inner.Len(), inner.MBR())
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
