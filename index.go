package spatial

import (
	"context"
	"fmt"

	"github.com/guiguan/caster"
	"github.com/npillmayer/spatial/rect"
	"github.com/npillmayer/spatial/rtree"
)

// Op is the kind of change an Event reports.
type Op int

const (
	// OpInsert reports an inserted rectangle.
	OpInsert Op = iota + 1
	// OpRemove reports a removed rectangle.
	OpRemove
)

func (op Op) String() string {
	switch op {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	}
	return fmt.Sprintf("Op(%d)", int(op))
}

// Event is published to subscribers after every successful mutation of an Index.
type Event struct {
	Op   Op
	Rect rect.Rect
}

// Index is a spatial index of rectangles. It wraps an R-tree and broadcasts
// changes to subscribers.
type Index struct {
	tree   *rtree.Tree
	cast   *caster.Caster // broadcaster for change events
	closed bool
}

// NewIndex creates an empty index. cfg configures the underlying R-tree; the
// zero Config selects the defaults (fan-out 4, minimum occupancy 2, exact
// matching on removal).
func NewIndex(cfg rtree.Config) (*Index, error) {
	tree, err := rtree.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Index{
		tree: tree,
		cast: caster.New(context.Background()),
	}, nil
}

// Tree returns the underlying R-tree.
func (idx *Index) Tree() *rtree.Tree {
	return idx.tree
}

// Len returns the number of rectangles in the index.
func (idx *Index) Len() int {
	return idx.tree.Len()
}

// Height returns the height of the underlying R-tree.
func (idx *Index) Height() int {
	return idx.tree.Height()
}

// Insert adds r to the index.
func (idx *Index) Insert(r rect.Rect) {
	idx.tree.Insert(r)
	T().Debugf("index: inserted %v, len=%d", r, idx.tree.Len())
	idx.publish(Event{Op: OpInsert, Rect: r})
}

// Remove deletes a rectangle matching r, using the configured tolerance of the
// tree. It reports whether a rectangle has been found.
func (idx *Index) Remove(r rect.Rect) bool {
	return idx.RemoveWithin(r, idx.tree.Config().Tolerance)
}

// RemoveWithin deletes a rectangle whose coordinates differ from r by less
// than tol. It reports whether a rectangle has been found.
func (idx *Index) RemoveWithin(r rect.Rect, tol float64) bool {
	if !idx.tree.RemoveWithin(r, tol) {
		T().Debugf("index: %v not found for removal", r)
		return false
	}
	T().Debugf("index: removed %v, len=%d", r, idx.tree.Len())
	idx.publish(Event{Op: OpRemove, Rect: r})
	return true
}

// Search returns all rectangles of the index intersecting query.
func (idx *Index) Search(query rect.Rect) []rect.Rect {
	return idx.tree.Search(query)
}

// Subscribe registers a listener for change events. The returned channel is
// closed when ctx is done or the index is closed. Subscribers which stop
// reading should cancel ctx; events not yet received are dropped then.
func (idx *Index) Subscribe(ctx context.Context, capacity uint) (<-chan Event, error) {
	if idx.closed {
		return nil, ErrIndexClosed
	}
	if ctx == nil {
		return nil, ErrIllegalArguments
	}
	sub, ok := idx.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrIndexClosed
	}
	events := make(chan Event, capacity)
	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub:
				if !ok {
					return
				}
				e, isEvent := msg.(Event)
				if !isEvent {
					continue
				}
				select {
				case events <- e:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}

// Close stops broadcasting events and closes all subscriber channels. The
// index stays usable, but further changes are not published.
//
// Like every other method of Index, Close must not be called concurrently
// with mutations of the index.
func (idx *Index) Close() {
	if idx.closed {
		return
	}
	idx.closed = true
	idx.cast.Close()
}

func (idx *Index) publish(e Event) {
	if idx.closed {
		return
	}
	idx.cast.Pub(e)
}
