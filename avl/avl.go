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

// Package avl implements a self-balancing binary search tree with
// rotation-based rebalancing, bounded range search and order statistics.
package avl

import (
	"github.com/ajwerner/spatial/internal/abstract"
	"github.com/pkg/errors"
)

// Tree is a set of unique keys kept in an AVL tree.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, and neither are reads concurrent with writes.
type Tree[K any] struct {
	t abstract.Tree[K, aug[K], *aug[K]]
}

// New returns an empty tree ordered by cmp.
func New[K any](cmp func(K, K) int) *Tree[K] {
	return &Tree[K]{
		t: abstract.MakeTree[K, aug[K]](cmp),
	}
}

// Insert adds k to the tree. It returns false, leaving the tree untouched,
// if an equal key is already present.
func (t *Tree[K]) Insert(k K) (inserted bool) {
	_, inserted = t.t.Insert(k)
	return inserted
}

// Search returns the stored key equal to k.
func (t *Tree[K]) Search(k K) (_ K, found bool) {
	id, found := t.t.Find(k)
	if !found {
		var zero K
		return zero, false
	}
	return t.t.Key(id), true
}

// Contains returns whether a key equal to k is present.
func (t *Tree[K]) Contains(k K) bool {
	_, found := t.t.Find(k)
	return found
}

// Remove removes the key equal to k. It returns false if there is none.
func (t *Tree[K]) Remove(k K) (removed bool) {
	_, removed = t.t.Delete(k)
	return removed
}

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int {
	return t.t.Live()
}

// Height returns the height of the tree: -1 when empty, 0 for a single key.
func (t *Tree[K]) Height() int {
	return t.t.Height(t.t.Root())
}

// RecursiveHeight computes the height by visiting every node rather than
// reading the heights cached by rebalancing. It always equals Height.
func (t *Tree[K]) RecursiveHeight() int {
	return t.t.SubtreeHeight(t.t.Root())
}

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, bool) {
	it := t.MakeIter()
	it.First()
	return it.cur()
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, bool) {
	it := t.MakeIter()
	it.Last()
	return it.cur()
}

// Reset removes all keys from the tree.
func (t *Tree[K]) Reset() {
	t.t.Reset()
}

// Clone returns an independent copy of the tree.
func (t *Tree[K]) Clone() *Tree[K] {
	return &Tree[K]{t: t.t.Clone()}
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[K]) String() string {
	return t.t.String()
}

// Verify checks the invariants of the tree: parent links, cached heights,
// balance factors in {-1, 0, 1}, strictly ascending keys and subtree sizes.
func (t *Tree[K]) Verify() error {
	if err := t.t.Verify(); err != nil {
		return err
	}
	it := t.t.MakeIter()
	it.First()
	for prev := it.Node(); it.Valid(); prev = it.Node() {
		if it.Next(); it.Valid() && t.t.Compare(t.t.Key(prev), it.Cur()) >= 0 {
			return errors.Errorf("avl: duplicate or misordered key %v after %v", it.Cur(), t.t.Key(prev))
		}
	}
	_, err := t.verifySize(t.t.Root())
	return err
}

func (t *Tree[K]) verifySize(id abstract.NodeID) (int, error) {
	if id == abstract.None {
		return 0, nil
	}
	l, err := t.verifySize(t.t.Left(id))
	if err != nil {
		return 0, err
	}
	r, err := t.verifySize(t.t.Right(id))
	if err != nil {
		return 0, err
	}
	if got := t.t.Aug(id).size; got != l+r+1 {
		return 0, errors.Errorf("avl: node %v records size %d, want %d", t.t.Key(id), got, l+r+1)
	}
	return l + r + 1, nil
}
