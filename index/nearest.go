package index

import (
	"math"

	"github.com/ajwerner/spatial/point"
)

// Nearest tracks the best candidate of a nearest-neighbour search. The first
// candidate at the minimum distance is kept.
type Nearest[T point.Coordinate] struct {
	Ref      point.Point[T]
	Point    point.Point[T]
	Distance float64
	Found    bool
}

// MakeNearest starts a search around ref.
func MakeNearest[T point.Coordinate](ref point.Point[T]) Nearest[T] {
	return Nearest[T]{Ref: ref, Distance: math.Inf(1)}
}

// Offer considers p as a candidate.
func (n *Nearest[T]) Offer(p point.Point[T]) {
	if d := n.Ref.Distance(p); d < n.Distance {
		n.Point, n.Distance, n.Found = p, d, true
	}
}

// Result returns the best candidate, or ErrEmpty if none was offered.
func (n *Nearest[T]) Result() (point.Point[T], error) {
	if !n.Found {
		return point.Point[T]{}, ErrEmpty
	}
	return n.Point, nil
}

// SplitBounds returns lower bounds on the distance from the reference to any
// point ordered before and after key. Points ordered before key cannot
// exceed it on the first axis and points ordered after cannot fall below it,
// so the gap on that axis bounds the Euclidean distance from below.
func (n *Nearest[T]) SplitBounds(key point.Point[T]) (before, after float64) {
	gap := float64(key.Get(0)) - float64(n.Ref.Get(0))
	if gap < 0 {
		return -gap, 0
	}
	return 0, gap
}
