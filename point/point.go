// Package point provides the fixed-arity coordinate tuple indexed by the
// spatial indexes in this module.
package point

import (
	"cmp"
	"fmt"
	"math"
	"strings"

	"github.com/viant/vec/search"
	"golang.org/x/exp/constraints"
)

// Coordinate is the numeric type of a point's coordinates.
type Coordinate interface {
	constraints.Integer | constraints.Float
}

// Point is an immutable tuple of coordinates. Points are ordered
// lexicographically over their axes; the order is what the tree-based
// indexes key on.
type Point[T Coordinate] struct {
	coords []T
}

// New returns a point with the given coordinates. The slice is copied.
func New[T Coordinate](coords ...T) Point[T] {
	return Point[T]{coords: append([]T(nil), coords...)}
}

// Dim returns the number of axes.
func (p Point[T]) Dim() int { return len(p.coords) }

// Get returns the coordinate on the given axis.
func (p Point[T]) Get(axis int) T { return p.coords[axis] }

// Coords returns a copy of the coordinates.
func (p Point[T]) Coords() []T { return append([]T(nil), p.coords...) }

// Compare orders points lexicographically by coordinate. A point that is a
// prefix of another sorts first.
func (p Point[T]) Compare(o Point[T]) int {
	n := min(len(p.coords), len(o.coords))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(p.coords[i], o.coords[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(p.coords), len(o.coords))
}

func (p Point[T]) Less(o Point[T]) bool { return p.Compare(o) < 0 }

func (p Point[T]) Equal(o Point[T]) bool { return p.Compare(o) == 0 }

// Distance returns the Euclidean distance between p and o, which must have
// the same arity.
func (p Point[T]) Distance(o Point[T]) float64 {
	if a, ok := any(p.coords).([]float32); ok {
		return float64(search.Float32s(a).EuclideanDistance(any(o.coords).([]float32)))
	}
	var sum float64
	for i := range p.coords {
		d := float64(p.coords[i]) - float64(o.coords[i])
		sum += d * d
	}
	return math.Sqrt(sum)
}

func (p Point[T]) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, c := range p.coords {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, c)
	}
	b.WriteByte(')')
	return b.String()
}
