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

package avl

import "github.com/ajwerner/spatial/internal/abstract"

// RangeSearch calls fn, in ascending order, for every key k with
// start <= k <= end. Subtrees that cannot hold such a key are not visited.
// Iteration stops early if fn returns false.
func (t *Tree[K]) RangeSearch(start, end K, fn func(K) bool) {
	if t.t.Compare(start, end) > 0 {
		return
	}
	t.rangeSearch(t.t.Root(), start, end, fn)
}

func (t *Tree[K]) rangeSearch(id abstract.NodeID, start, end K, fn func(K) bool) bool {
	if id == abstract.None {
		return true
	}
	k := t.t.Key(id)
	lo, hi := t.t.Compare(k, start), t.t.Compare(k, end)
	if lo > 0 && !t.rangeSearch(t.t.Left(id), start, end, fn) {
		return false
	}
	if lo >= 0 && hi <= 0 && !fn(k) {
		return false
	}
	if hi < 0 {
		return t.rangeSearch(t.t.Right(id), start, end, fn)
	}
	return true
}

// Cursor is a position in a Tree used to drive custom pruned descents.
// The zero Cursor is invalid.
type Cursor[K any] struct {
	t  *Tree[K]
	id abstract.NodeID
}

// Root returns a cursor at the root of the tree. It is invalid if the tree
// is empty.
func (t *Tree[K]) Root() Cursor[K] {
	return Cursor[K]{t: t, id: t.t.Root()}
}

// Valid returns whether the cursor refers to a node.
func (c Cursor[K]) Valid() bool { return c.t != nil && c.id != abstract.None }

// Key returns the key at the cursor.
func (c Cursor[K]) Key() K { return c.t.t.Key(c.id) }

// Left returns the cursor's left child.
func (c Cursor[K]) Left() Cursor[K] { return Cursor[K]{t: c.t, id: c.t.t.Left(c.id)} }

// Right returns the cursor's right child.
func (c Cursor[K]) Right() Cursor[K] { return Cursor[K]{t: c.t, id: c.t.t.Right(c.id)} }

// Size returns the number of keys in the subtree rooted at the cursor.
func (c Cursor[K]) Size() int {
	if !c.Valid() {
		return 0
	}
	return c.t.size(c.id)
}
