package rangetree

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajwerner/spatial/index"
	"github.com/ajwerner/spatial/index/bruteforce"
	"github.com/ajwerner/spatial/point"
)

func diagonal(t *testing.T) *Index[int] {
	x := New[int]()
	for i := 0; i < 5; i++ {
		require.NoError(t, x.Insert(point.New(i, i)))
	}
	require.NoError(t, x.Verify())
	return x
}

func TestIndexRange(t *testing.T) {
	x := diagonal(t)
	got, err := x.Range(point.New(1, 1), point.New(3, 3))
	require.NoError(t, err)
	require.Equal(t, []point.Point[int]{point.New(1, 1), point.New(2, 2), point.New(3, 3)}, got)
	n, err := x.Count(point.New(1, 1), point.New(3, 3))
	require.NoError(t, err)
	require.Equal(t, 3, n)

	got, err = x.Range(point.New(5, 0), point.New(9, 9))
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = x.Range(point.New(1, 1), point.New(3))
	require.True(t, errors.Is(err, index.ErrDimension))
	_, err = x.Count(point.New(1), point.New(3, 3))
	require.True(t, errors.Is(err, index.ErrDimension))
}

func TestIndexInsertRemove(t *testing.T) {
	x := diagonal(t)
	require.NoError(t, x.Insert(point.New(2, 2)))
	require.Equal(t, 5, x.Len())
	require.True(t, errors.Is(x.Insert(point.New(2)), index.ErrDimension))
	require.NoError(t, x.Remove(point.New(0, 0)))
	require.False(t, x.Contains(point.New(0, 0)))
	require.True(t, errors.Is(x.Remove(point.New(0, 0)), index.ErrNotFound))
	require.NoError(t, x.Verify())
	require.Equal(t, 4, x.Len())
}

func TestIndexNearestNeighbor(t *testing.T) {
	_, err := New[float64]().NearestNeighbor(point.New(0.0, 0.0))
	require.True(t, errors.Is(err, index.ErrEmpty))

	x := diagonal(t)
	nn, err := x.NearestNeighbor(point.New(2, 3))
	require.NoError(t, err)
	require.Equal(t, 1.0, nn.Distance(point.New(2, 3)))
	_, err = x.NearestNeighbor(point.New(2, 3, 4))
	require.True(t, errors.Is(err, index.ErrDimension))

	// A removed point may survive as a routing key but is never returned.
	require.NoError(t, x.Remove(point.New(1, 1)))
	nn, err = x.NearestNeighbor(point.New(1, 1))
	require.NoError(t, err)
	require.NotEqual(t, point.New(1, 1), nn)
	require.InDelta(t, 1.4142135, nn.Distance(point.New(1, 1)), 1e-6)
}

func TestIndexAgainstBruteForce(t *testing.T) {
	t.Parallel()
	const N, bound = 2000, 300.0
	x, bf := New[float64](), bruteforce.New[float64]()
	for i := 0; i < N; i++ {
		p := point.New(rand.Float64()*bound, rand.Float64()*bound)
		require.NoError(t, x.Insert(p))
		require.NoError(t, bf.Insert(p))
	}
	for _, p := range bf.Points()[:N/4] {
		require.NoError(t, x.Remove(p))
	}
	for _, p := range append([]point.Point[float64](nil), bf.Points()[:N/4]...) {
		require.NoError(t, bf.Remove(p))
	}
	require.NoError(t, x.Verify())
	require.Equal(t, bf.Len(), x.Len())

	for i := 0; i < 200; i++ {
		ref := point.New(rand.Float64()*bound, rand.Float64()*bound)
		exp, err := bf.NearestNeighbor(ref)
		require.NoError(t, err)
		got, err := x.NearestNeighbor(ref)
		require.NoError(t, err)
		require.Equal(t, exp.Distance(ref), got.Distance(ref), "nearest to %v", ref)

		lo, hi := point.New(rand.Float64()*bound, 0), point.New(rand.Float64()*bound, bound)
		want, err := bf.Range(lo, hi)
		require.NoError(t, err)
		have, err := x.Range(lo, hi)
		require.NoError(t, err)
		require.Len(t, have, len(want))
		n, err := x.Count(lo, hi)
		require.NoError(t, err)
		require.Equal(t, len(want), n)
	}
}
