package rangebst

import (
	"errors"
	"math/rand"
	"sort"
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
	return x
}

func TestRange(t *testing.T) {
	x := diagonal(t)
	got, err := x.Range(point.New(1, 1), point.New(3, 3))
	require.NoError(t, err)
	require.Equal(t, []point.Point[int]{point.New(1, 1), point.New(2, 2), point.New(3, 3)}, got)

	n, err := x.Count(point.New(1, 1), point.New(3, 3))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	n, err = x.Count(point.New(1, 2), point.New(3, 2))
	require.NoError(t, err)
	require.Equal(t, 1, n)

	got, err = x.Range(point.New(3, 3), point.New(1, 1))
	require.NoError(t, err)
	require.Empty(t, got)
	n, err = x.Count(point.New(3, 3), point.New(1, 1))
	require.NoError(t, err)
	require.Zero(t, n)

	got, err = x.Range(point.New(7, 0), point.New(9, 0))
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = x.Range(point.New(1), point.New(3, 3))
	require.True(t, errors.Is(err, index.ErrDimension))
}

func TestDuplicatesAndRemove(t *testing.T) {
	x := diagonal(t)
	require.NoError(t, x.Insert(point.New(2, 2)))
	require.Equal(t, 5, x.Len())
	require.NoError(t, x.Remove(point.New(2, 2)))
	require.False(t, x.Contains(point.New(2, 2)))
	require.True(t, errors.Is(x.Remove(point.New(2, 2)), index.ErrNotFound))
	require.NoError(t, x.Verify())
	require.True(t, errors.Is(x.Insert(point.New(1, 2, 3)), index.ErrDimension))
}

func TestNearestNeighbor(t *testing.T) {
	x := New[int]()
	_, err := x.NearestNeighbor(point.New(0, 0))
	require.True(t, errors.Is(err, index.ErrEmpty))

	x = diagonal(t)
	nn, err := x.NearestNeighbor(point.New(2, 3))
	require.NoError(t, err)
	require.Equal(t, 1.0, nn.Distance(point.New(2, 3)))
	nn, err = x.NearestNeighbor(point.New(4, 4))
	require.NoError(t, err)
	require.Equal(t, point.New(4, 4), nn)
	_, err = x.NearestNeighbor(point.New(1, 1, 1))
	require.True(t, errors.Is(err, index.ErrDimension))
}

func TestAgainstBruteForce(t *testing.T) {
	t.Parallel()
	const N, bound = 2000, 500
	x, bf := New[int](), bruteforce.New[int]()
	seen := map[[2]int]bool{}
	for len(seen) < N {
		c := [2]int{rand.Intn(bound), rand.Intn(bound)}
		if seen[c] {
			continue
		}
		seen[c] = true
		p := point.New(c[0], c[1])
		require.NoError(t, x.Insert(p))
		require.NoError(t, bf.Insert(p))
	}
	require.NoError(t, x.Verify())

	for i := 0; i < 200; i++ {
		ref := point.New(rand.Intn(bound+100)-50, rand.Intn(bound+100)-50)
		exp, err := bf.NearestNeighbor(ref)
		require.NoError(t, err)
		got, err := x.NearestNeighbor(ref)
		require.NoError(t, err)
		require.Equal(t, exp.Distance(ref), got.Distance(ref), "nearest to %v", ref)

		lo := point.New(rand.Intn(bound), rand.Intn(bound))
		hi := point.New(rand.Intn(bound), rand.Intn(bound))
		if hi.Less(lo) {
			lo, hi = hi, lo
		}
		want, err := bf.Range(lo, hi)
		require.NoError(t, err)
		sort.Slice(want, func(i, j int) bool { return want[i].Less(want[j]) })
		have, err := x.Range(lo, hi)
		require.NoError(t, err)
		require.Equal(t, len(want), len(have))
		for j := range want {
			require.True(t, want[j].Equal(have[j]))
		}
		n, err := x.Count(lo, hi)
		require.NoError(t, err)
		require.Equal(t, len(want), n)
	}
}
