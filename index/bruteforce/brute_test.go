package bruteforce

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajwerner/spatial/index"
	"github.com/ajwerner/spatial/point"
)

func TestBruteForce(t *testing.T) {
	idx := New[int]()
	_, err := idx.NearestNeighbor(point.New(0, 0))
	require.True(t, errors.Is(err, index.ErrEmpty))

	for _, p := range [][]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}, {2, 2}} {
		require.NoError(t, idx.Insert(point.New(p...)))
	}
	require.Equal(t, 6, idx.Len())

	nn, err := idx.NearestNeighbor(point.New(2, 3))
	require.NoError(t, err)
	require.Equal(t, "(2, 2)", nn.String())

	got, err := idx.Range(point.New(1, 1), point.New(3, 3))
	require.NoError(t, err)
	require.Len(t, got, 4)

	got, err = idx.Range(point.New(3, 3), point.New(1, 1))
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, idx.Remove(point.New(2, 2)))
	require.Equal(t, 5, idx.Len())
	require.NoError(t, idx.Remove(point.New(2, 2)))
	err = idx.Remove(point.New(2, 2))
	require.True(t, errors.Is(err, index.ErrNotFound))

	err = idx.Insert(point.New(1, 2, 3))
	require.True(t, errors.Is(err, index.ErrDimension))
	_, err = idx.NearestNeighbor(point.New(1))
	require.True(t, errors.Is(err, index.ErrDimension))
}
