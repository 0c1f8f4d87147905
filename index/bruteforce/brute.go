package bruteforce

import (
	"github.com/pkg/errors"

	"github.com/ajwerner/spatial/index"
	"github.com/ajwerner/spatial/point"
)

// Index is a brute-force spatial index. Unlike the tree variants it keeps
// duplicate points.
type Index[T point.Coordinate] struct {
	points []point.Point[T]
	arity  index.Arity
}

var _ index.Index[float64] = (*Index[float64])(nil)

// New returns an empty index.
func New[T point.Coordinate]() *Index[T] {
	return &Index[T]{}
}

// Insert appends p.
func (i *Index[T]) Insert(p point.Point[T]) error {
	if err := i.arity.Bind(p.Dim()); err != nil {
		return errors.Wrap(err, "bruteforce: insert")
	}
	i.points = append(i.points, p)
	return nil
}

// Remove deletes the earliest inserted point equal to p.
func (i *Index[T]) Remove(p point.Point[T]) error {
	for j := range i.points {
		if i.points[j].Equal(p) {
			i.points = append(i.points[:j], i.points[j+1:]...)
			return nil
		}
	}
	return errors.Wrapf(index.ErrNotFound, "bruteforce: remove %v", p)
}

// NearestNeighbor scans every point. Ties go to the earliest inserted point.
func (i *Index[T]) NearestNeighbor(ref point.Point[T]) (point.Point[T], error) {
	if len(i.points) == 0 {
		return point.Point[T]{}, index.ErrEmpty
	}
	if err := i.arity.Check(ref.Dim()); err != nil {
		return point.Point[T]{}, errors.Wrap(err, "bruteforce: nearest neighbor")
	}
	n := index.MakeNearest(ref)
	for _, p := range i.points {
		n.Offer(p)
	}
	return n.Result()
}

// Range filters every point against [min, max] and returns the matches in
// insertion order.
func (i *Index[T]) Range(min, max point.Point[T]) ([]point.Point[T], error) {
	if len(i.points) == 0 {
		return nil, nil
	}
	if err := i.checkBounds(min, max); err != nil {
		return nil, errors.Wrap(err, "bruteforce: range")
	}
	var out []point.Point[T]
	for _, p := range i.points {
		if min.Compare(p) <= 0 && p.Compare(max) <= 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

func (i *Index[T]) checkBounds(min, max point.Point[T]) error {
	if err := i.arity.Check(min.Dim()); err != nil {
		return err
	}
	return i.arity.Check(max.Dim())
}

// Len returns the number of points, counting duplicates.
func (i *Index[T]) Len() int {
	return len(i.points)
}

// Points returns the points in insertion order. The slice must not be
// modified.
func (i *Index[T]) Points() []point.Point[T] {
	return i.points
}
