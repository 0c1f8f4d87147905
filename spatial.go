// Package spatial constructs the spatial index variants in this module
// behind the common index.Index contract.
//
// Four variants are available:
//
//   - BruteForce scans every point and serves as the correctness oracle.
//   - Grid buckets two-dimensional points in a bounded square and answers
//     nearest-neighbour queries approximately; it does not support Range.
//   - RangeSearchTree keeps points in an AVL tree and answers range queries
//     by a pruned in-order walk.
//   - RangeTree keeps points in the leaves of a balanced routing tree and
//     answers range queries through the split node.
//
// Both tree variants answer nearest-neighbour queries exactly.
package spatial

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ajwerner/spatial/index"
	"github.com/ajwerner/spatial/index/bruteforce"
	"github.com/ajwerner/spatial/index/grid"
	"github.com/ajwerner/spatial/index/rangebst"
	"github.com/ajwerner/spatial/index/rangetree"
	"github.com/ajwerner/spatial/point"
)

// Kind identifies an index variant.
type Kind int

const (
	BruteForce Kind = iota
	Grid
	RangeSearchTree
	RangeTree
)

var kindNames = [...]string{
	BruteForce:      "bruteforce",
	Grid:            "grid",
	RangeSearchTree: "rangebst",
	RangeTree:       "rangetree",
}

// Kinds returns every variant.
func Kinds() []Kind {
	return []Kind{BruteForce, Grid, RangeSearchTree, RangeTree}
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Exact returns whether the variant's nearest-neighbour results are always
// exact.
func (k Kind) Exact() bool {
	return k != Grid
}

// ParseKind returns the variant named s, ignoring case.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, errors.Errorf("spatial: unknown index kind %q", s)
}

// Options configures the variants that need parameters.
type Options struct {
	// Max bounds the coordinates of a Grid to [0, Max).
	Max float64
	// Partitions is the number of Grid buckets per axis.
	Partitions int
}

// New returns an empty index of the given kind.
func New[T point.Coordinate](k Kind, opts Options) (index.Index[T], error) {
	switch k {
	case BruteForce:
		return bruteforce.New[T](), nil
	case Grid:
		g, err := grid.New[T](opts.Max, opts.Partitions)
		if err != nil {
			return nil, err
		}
		return g, nil
	case RangeSearchTree:
		return rangebst.New[T](), nil
	case RangeTree:
		return rangetree.New[T](), nil
	default:
		return nil, errors.Errorf("spatial: unknown index kind %d", int(k))
	}
}
