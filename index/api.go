package index

import "github.com/ajwerner/spatial/point"

// Index is a spatial index over points with coordinates of type T.
type Index[T point.Coordinate] interface {
	// Insert adds p to the index. Tree-based variants silently ignore a
	// point that is already present.
	Insert(p point.Point[T]) error

	// Remove deletes one point equal to p. It returns ErrNotFound if there
	// is none.
	Remove(p point.Point[T]) error

	// NearestNeighbor returns the indexed point closest to ref, which need
	// not be indexed itself. Among points at the same distance, the first
	// one encountered in the variant's traversal order wins, so variants may
	// disagree on which point is returned but not on its distance. It
	// returns ErrEmpty on an empty index.
	NearestNeighbor(ref point.Point[T]) (point.Point[T], error)

	// Range returns every indexed point p with min <= p <= max under the
	// lexicographic point order. An empty result is not an error.
	Range(min, max point.Point[T]) ([]point.Point[T], error)

	// Len returns the number of indexed points.
	Len() int
}
