package index

import "github.com/pkg/errors"

var (
	// ErrEmpty is returned by queries that need at least one point.
	ErrEmpty = errors.New("index is empty")

	// ErrNotFound is returned when removing a point that is not indexed.
	ErrNotFound = errors.New("point not found")

	// ErrOutOfBounds is returned when a point lies outside the coordinate
	// space an index was configured for.
	ErrOutOfBounds = errors.New("point out of configured bounds")

	// ErrDimension is returned when a point's arity differs from the arity
	// of the index.
	ErrDimension = errors.New("point arity mismatch")

	// ErrUnsupported is returned by variants that do not implement an
	// operation.
	ErrUnsupported = errors.New("operation not supported")

	// ErrNoCandidate is returned by approximate variants whose bounded
	// search found no point, even though the index is not empty.
	ErrNoCandidate = errors.New("no point within search radius")
)

// Arity tracks the arity of the points held by an index. The zero value is
// unbound and binds to the arity of the first point passed to Bind.
type Arity int

// Bind checks dim against the arity, binding it first if unbound.
func (a *Arity) Bind(dim int) error {
	if *a == 0 && dim > 0 {
		*a = Arity(dim)
	}
	return a.Check(dim)
}

// Check returns ErrDimension if dim differs from the bound arity. An unbound
// arity accepts any positive dim.
func (a Arity) Check(dim int) error {
	if dim <= 0 || (a != 0 && int(a) != dim) {
		return errors.Wrapf(ErrDimension, "got %d axes, want %d", dim, int(a))
	}
	return nil
}
