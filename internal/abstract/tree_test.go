// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package abstract

import (
	"cmp"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// sizeAug counts the nodes in a subtree.
type sizeAug struct {
	size int
}

func (a *sizeAug) Update(n Node[int, *sizeAug]) {
	a.size = 1
	for d := Left; d <= Right; d++ {
		if c := n.Child(d); c != nil {
			a.size += c.size
		}
	}
}

type intTree = Tree[int, sizeAug, *sizeAug]

func makeIntTree() intTree {
	return MakeTree[int, sizeAug](cmp.Compare[int])
}

func checkSizes(t *testing.T, tr *intTree, id NodeID) int {
	t.Helper()
	if id == None {
		return 0
	}
	got := 1 + checkSizes(t, tr, tr.Left(id)) + checkSizes(t, tr, tr.Right(id))
	require.Equal(t, got, tr.Aug(id).size, "size of subtree at %v", tr.Key(id))
	return got
}

func TestAscendingInsertIsPerfect(t *testing.T) {
	tr := makeIntTree()
	for i := 1; i <= 7; i++ {
		_, inserted := tr.Insert(i)
		require.True(t, inserted)
		require.NoError(t, tr.Verify())
	}
	require.Equal(t, "((1,3)2,(5,7)6)4", tr.String())
	require.Equal(t, 2, tr.Height(tr.Root()))
	require.Equal(t, 7, tr.Aug(tr.Root()).size)
}

func TestDoubleRotation(t *testing.T) {
	tr := makeIntTree()
	for _, k := range []int{3, 1, 2} {
		tr.Insert(k)
	}
	require.Equal(t, "(1,3)2", tr.String())

	tr = makeIntTree()
	for _, k := range []int{1, 3, 2} {
		tr.Insert(k)
	}
	require.Equal(t, "(1,3)2", tr.String())
}

func TestDuplicateInsert(t *testing.T) {
	tr := makeIntTree()
	for _, k := range []int{5, 2, 8} {
		tr.Insert(k)
	}
	before := tr.String()
	id, inserted := tr.Insert(2)
	require.False(t, inserted)
	require.Equal(t, 2, tr.Key(id))
	require.Equal(t, before, tr.String())
	require.Equal(t, 3, tr.Live())
}

func TestRandomInsertDelete(t *testing.T) {
	t.Parallel()
	const N = 500
	tr := makeIntTree()
	for _, k := range rand.Perm(N) {
		_, inserted := tr.Insert(k)
		require.True(t, inserted)
		require.NoError(t, tr.Verify())
	}
	require.Equal(t, N, tr.Live())
	checkSizes(t, &tr, tr.Root())
	// An AVL tree with n nodes has height below 1.45 log2(n+2).
	require.Less(t, tr.Height(tr.Root()), 14)
	require.Equal(t, tr.SubtreeHeight(tr.Root()), tr.Height(tr.Root()))

	for i, k := range rand.Perm(N) {
		removed, found := tr.Delete(k)
		require.True(t, found)
		require.Equal(t, k, removed)
		_, found = tr.Delete(k)
		require.False(t, found)
		require.NoError(t, tr.Verify())
		require.Equal(t, N-i-1, tr.Live())
		if i%50 == 0 {
			checkSizes(t, &tr, tr.Root())
		}
	}
	require.Equal(t, None, tr.Root())
	require.Equal(t, ";", tr.String())
}

func TestFreeListReuse(t *testing.T) {
	tr := makeIntTree()
	for i := 0; i < 10; i++ {
		tr.Insert(i)
	}
	slots := len(tr.np.nodes)
	for i := 0; i < 5; i++ {
		tr.Delete(i)
	}
	require.Len(t, tr.np.free, 5)
	for i := 100; i < 105; i++ {
		tr.Insert(i)
	}
	require.Len(t, tr.np.free, 0)
	require.Equal(t, slots, len(tr.np.nodes))
	require.NoError(t, tr.Verify())
}

func TestReleaseTwicePanics(t *testing.T) {
	tr := makeIntTree()
	id, _ := tr.Insert(1)
	tr.np.put(id)
	require.Panics(t, func() { tr.np.put(id) })
}

func TestSpliceTwoChildrenPanics(t *testing.T) {
	tr := makeIntTree()
	for _, k := range []int{2, 1, 3} {
		tr.Insert(k)
	}
	require.Panics(t, func() { tr.Splice(tr.Root()) })
}

func TestClone(t *testing.T) {
	tr := makeIntTree()
	for _, k := range rand.Perm(100) {
		tr.Insert(k)
	}
	c := tr.Clone()
	for i := 0; i < 50; i++ {
		c.Delete(i)
	}
	require.NoError(t, tr.Verify())
	require.NoError(t, c.Verify())
	require.Equal(t, 100, tr.Live())
	require.Equal(t, 50, c.Live())

	tr.Reset()
	require.Equal(t, 0, tr.Live())
	require.NoError(t, tr.Verify())
	require.Equal(t, 50, c.Live())
}

func TestIterator(t *testing.T) {
	tr := makeIntTree()
	for _, k := range rand.Perm(50) {
		tr.Insert(k * 2)
	}
	it := tr.MakeIter()
	var got []int
	for it.First(); it.Valid(); it.Next() {
		got = append(got, it.Cur())
	}
	require.Len(t, got, 50)
	for i, k := range got {
		require.Equal(t, i*2, k)
	}

	it.SeekGE(31)
	require.True(t, it.Valid())
	require.Equal(t, 32, it.Cur())
	it.Prev()
	require.Equal(t, 30, it.Cur())
	it.SeekGE(32)
	require.Equal(t, 32, it.Cur())
	it.SeekGE(99)
	require.False(t, it.Valid())

	it.SeekLT(31)
	require.Equal(t, 30, it.Cur())
	it.SeekLT(0)
	require.False(t, it.Valid())

	it.Last()
	for k := 98; k >= 0; k -= 2 {
		require.True(t, it.Valid())
		require.Equal(t, k, it.Cur())
		it.Prev()
	}
	require.False(t, it.Valid())
}
