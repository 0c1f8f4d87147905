package grid

import (
	"math"

	"github.com/pkg/errors"

	"github.com/ajwerner/spatial/index"
	"github.com/ajwerner/spatial/point"
)

// Index is a uniform grid of buckets over two-dimensional points.
type Index[T point.Coordinate] struct {
	max     float64
	m       int
	width   float64
	buckets [][]point.Point[T]
	len     int
}

var _ index.Index[float64] = (*Index[float64])(nil)

// New returns an empty grid covering [0, max) on both axes, split into
// m partitions per axis.
func New[T point.Coordinate](max float64, m int) (*Index[T], error) {
	if !(max > 0) || math.IsInf(max, 1) {
		return nil, errors.Errorf("grid: bound must be positive and finite, got %v", max)
	}
	if m < 1 {
		return nil, errors.Errorf("grid: partitions must be at least 1, got %d", m)
	}
	return &Index[T]{
		max:     max,
		m:       m,
		width:   max / float64(m),
		buckets: make([][]point.Point[T], m*m),
	}, nil
}

// cell returns the column or row holding coordinate v, clamped into the
// grid.
func (g *Index[T]) cell(v float64) int {
	c := int(math.Floor(v / g.width))
	return min(max(c, 0), g.m-1)
}

// Bucket returns the id of the bucket p maps to: row*m + col. Coordinates
// outside the grid are clamped to the nearest border bucket.
func (g *Index[T]) Bucket(p point.Point[T]) int {
	return g.cell(float64(p.Get(1)))*g.m + g.cell(float64(p.Get(0)))
}

func (g *Index[T]) inBounds(p point.Point[T]) bool {
	for axis := 0; axis < 2; axis++ {
		if v := float64(p.Get(axis)); !(v >= 0 && v < g.max) {
			return false
		}
	}
	return true
}

// Insert places p in its bucket. Points outside [0, max) on either axis
// are rejected with ErrOutOfBounds.
func (g *Index[T]) Insert(p point.Point[T]) error {
	if p.Dim() != 2 {
		return errors.Wrapf(index.ErrDimension, "grid: insert %v: got %d axes, want 2", p, p.Dim())
	}
	if !g.inBounds(p) {
		return errors.Wrapf(index.ErrOutOfBounds, "grid: insert %v outside [0, %v)", p, g.max)
	}
	b := g.Bucket(p)
	g.buckets[b] = append(g.buckets[b], p)
	g.len++
	return nil
}

// Remove deletes one point equal to p from its bucket.
func (g *Index[T]) Remove(p point.Point[T]) error {
	if p.Dim() == 2 && g.inBounds(p) {
		b := g.Bucket(p)
		for j, q := range g.buckets[b] {
			if q.Equal(p) {
				g.buckets[b] = append(g.buckets[b][:j], g.buckets[b][j+1:]...)
				g.len--
				return nil
			}
		}
	}
	return errors.Wrapf(index.ErrNotFound, "grid: remove %v", p)
}

// NearestNeighbor returns the closest point among the reference's bucket
// and its neighbours. Buckets are scanned row by row from the lower-left
// neighbour, and ties go to the first point scanned.
func (g *Index[T]) NearestNeighbor(ref point.Point[T]) (point.Point[T], error) {
	if g.len == 0 {
		return point.Point[T]{}, index.ErrEmpty
	}
	if ref.Dim() != 2 {
		return point.Point[T]{}, errors.Wrapf(index.ErrDimension,
			"grid: nearest neighbor of %v: got %d axes, want 2", ref, ref.Dim())
	}
	col, row := g.cell(float64(ref.Get(0))), g.cell(float64(ref.Get(1)))
	n := index.MakeNearest(ref)
	for r := max(row-1, 0); r <= min(row+1, g.m-1); r++ {
		for c := max(col-1, 0); c <= min(col+1, g.m-1); c++ {
			for _, p := range g.buckets[r*g.m+c] {
				n.Offer(p)
			}
		}
	}
	if !n.Found {
		return point.Point[T]{}, errors.Wrapf(index.ErrNoCandidate, "grid: nearest neighbor of %v", ref)
	}
	return n.Result()
}

// Range is not supported by the grid.
func (g *Index[T]) Range(_, _ point.Point[T]) ([]point.Point[T], error) {
	return nil, errors.Wrap(index.ErrUnsupported, "grid: range")
}

// Len returns the number of points in the grid.
func (g *Index[T]) Len() int {
	return g.len
}
