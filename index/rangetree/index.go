package rangetree

import (
	"github.com/pkg/errors"

	"github.com/ajwerner/spatial/index"
	"github.com/ajwerner/spatial/internal/abstract"
	"github.com/ajwerner/spatial/point"
)

// Index is a spatial index over a range tree of points ordered
// lexicographically. Duplicate points are stored once.
type Index[T point.Coordinate] struct {
	t     *Tree[point.Point[T]]
	arity index.Arity
}

var _ index.Index[float64] = (*Index[float64])(nil)

// New returns an empty index.
func New[T point.Coordinate]() *Index[T] {
	return &Index[T]{t: NewTree(point.Point[T].Compare)}
}

// Insert adds p. Inserting a point that is already present is a no-op.
func (x *Index[T]) Insert(p point.Point[T]) error {
	if err := x.arity.Bind(p.Dim()); err != nil {
		return errors.Wrap(err, "rangetree: insert")
	}
	x.t.Insert(p)
	return nil
}

// Remove deletes p.
func (x *Index[T]) Remove(p point.Point[T]) error {
	if !x.t.Remove(p) {
		return errors.Wrapf(index.ErrNotFound, "rangetree: remove %v", p)
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
		return nil, errors.Wrap(err, "rangetree: range")
	}
	var out []point.Point[T]
	x.t.Range(min, max, func(p point.Point[T]) bool {
		out = append(out, p)
		return true
	})
	return out, nil
}

// Count returns the number of points in [min, max].
func (x *Index[T]) Count(min, max point.Point[T]) (int, error) {
	if err := x.checkBounds(min, max); err != nil {
		return 0, errors.Wrap(err, "rangetree: count")
	}
	return x.t.Count(min, max), nil
}

func (x *Index[T]) checkBounds(min, max point.Point[T]) error {
	if err := x.arity.Check(min.Dim()); err != nil {
		return err
	}
	return x.arity.Check(max.Dim())
}

// NearestNeighbor returns the indexed point closest to ref.
//
// Only leaves are candidates; a routing key may name a point that has since
// been removed. Routing keys still bound the first axis of the leaves on
// either side, which lets the search skip the farther subtree.
func (x *Index[T]) NearestNeighbor(ref point.Point[T]) (point.Point[T], error) {
	if x.t.Len() == 0 {
		return point.Point[T]{}, index.ErrEmpty
	}
	if err := x.arity.Check(ref.Dim()); err != nil {
		return point.Point[T]{}, errors.Wrap(err, "rangetree: nearest neighbor")
	}
	n := index.MakeNearest(ref)
	x.nearest(x.t.t.Root(), &n)
	return n.Result()
}

func (x *Index[T]) nearest(id abstract.NodeID, n *index.Nearest[T]) {
	t := &x.t.t
	for !t.Aug(id).leaf {
		before, after := n.SplitBounds(t.Key(id))
		near, far, bound := t.Left(id), t.Right(id), after
		if after < before {
			near, far, bound = t.Right(id), t.Left(id), before
		}
		x.nearest(near, n)
		if bound >= n.Distance {
			return
		}
		id = far
	}
	n.Offer(t.Key(id))
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
