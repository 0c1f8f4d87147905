package rangebst

import (
	"github.com/pkg/errors"

	"github.com/ajwerner/spatial/avl"
	"github.com/ajwerner/spatial/index"
	"github.com/ajwerner/spatial/point"
)

// Index is a range-search index. Duplicate points are stored once.
type Index[T point.Coordinate] struct {
	t     *avl.Tree[point.Point[T]]
	arity index.Arity
}

var _ index.Index[float64] = (*Index[float64])(nil)

// New returns an empty index.
func New[T point.Coordinate]() *Index[T] {
	return &Index[T]{t: avl.New(point.Point[T].Compare)}
}

// Insert adds p. Inserting a point that is already present is a no-op.
func (x *Index[T]) Insert(p point.Point[T]) error {
	if err := x.arity.Bind(p.Dim()); err != nil {
		return errors.Wrap(err, "rangebst: insert")
	}
	x.t.Insert(p)
	return nil
}

// Remove deletes p.
func (x *Index[T]) Remove(p point.Point[T]) error {
	if !x.t.Remove(p) {
		return errors.Wrapf(index.ErrNotFound, "rangebst: remove %v", p)
	}
	return nil
}

// Contains returns whether p is indexed.
func (x *Index[T]) Contains(p point.Point[T]) bool {
	return x.t.Contains(p)
}

// Range returns the points in [min, max] in ascending order.
func (x *Index[T]) Range(min, max point.Point[T]) ([]point.Point[T], error) {
	if err := x.checkBounds(min, max); err != nil {
		return nil, errors.Wrap(err, "rangebst: range")
	}
	var out []point.Point[T]
	x.t.RangeSearch(min, max, func(p point.Point[T]) bool {
		out = append(out, p)
		return true
	})
	return out, nil
}

// Count returns the number of points in [min, max] without visiting them.
func (x *Index[T]) Count(min, max point.Point[T]) (int, error) {
	if err := x.checkBounds(min, max); err != nil {
		return 0, errors.Wrap(err, "rangebst: count")
	}
	if min.Compare(max) > 0 {
		return 0, nil
	}
	n := x.t.Rank(max) - x.t.Rank(min)
	if x.t.Contains(max) {
		n++
	}
	return n, nil
}

func (x *Index[T]) checkBounds(min, max point.Point[T]) error {
	if err := x.arity.Check(min.Dim()); err != nil {
		return err
	}
	return x.arity.Check(max.Dim())
}

// NearestNeighbor returns the indexed point closest to ref.
//
// The search descends from the root, visiting the child on ref's side of
// each key first. Points ordered before a key never exceed it on the first
// axis and points ordered after it never fall below, so the other child is
// skipped when the first-axis gap alone is no closer than the best
// candidate.
func (x *Index[T]) NearestNeighbor(ref point.Point[T]) (point.Point[T], error) {
	if x.t.Len() == 0 {
		return point.Point[T]{}, index.ErrEmpty
	}
	if err := x.arity.Check(ref.Dim()); err != nil {
		return point.Point[T]{}, errors.Wrap(err, "rangebst: nearest neighbor")
	}
	n := index.MakeNearest(ref)
	nearest(x.t.Root(), &n)
	return n.Result()
}

func nearest[T point.Coordinate](c avl.Cursor[point.Point[T]], n *index.Nearest[T]) {
	for c.Valid() {
		k := c.Key()
		n.Offer(k)
		before, after := n.SplitBounds(k)
		near, far, bound := c.Left(), c.Right(), after
		if after < before {
			near, far, bound = c.Right(), c.Left(), before
		}
		nearest(near, n)
		if bound >= n.Distance {
			return
		}
		c = far
	}
}

// Len returns the number of distinct indexed points.
func (x *Index[T]) Len() int {
	return x.t.Len()
}

// Height returns the height of the underlying tree.
func (x *Index[T]) Height() int {
	return x.t.Height()
}

// Verify checks the invariants of the underlying tree.
func (x *Index[T]) Verify() error {
	return x.t.Verify()
}
