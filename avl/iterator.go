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

// Iterator walks the keys of a Tree in ascending order.
//
// It is not safe to continue using an Iterator after modifications are made
// to the tree. If modifications are made, create a new Iterator.
type Iterator[K any] struct {
	t  *Tree[K]
	it abstract.Iterator[K, aug[K], *aug[K]]
}

// MakeIter returns a new, unpositioned Iterator.
func (t *Tree[K]) MakeIter() Iterator[K] {
	return Iterator[K]{t: t, it: t.t.MakeIter()}
}

// Nth positions the iterator at the key with in-order position i. The
// iterator is invalid if i is out of range.
func (it *Iterator[K]) Nth(i int) { it.it.SetNode(it.t.nth(i)) }

func (it *Iterator[K]) First()      { it.it.First() }
func (it *Iterator[K]) Last()       { it.it.Last() }
func (it *Iterator[K]) SeekGE(k K)  { it.it.SeekGE(k) }
func (it *Iterator[K]) SeekLT(k K)  { it.it.SeekLT(k) }
func (it *Iterator[K]) Next()       { it.it.Next() }
func (it *Iterator[K]) Prev()       { it.it.Prev() }
func (it *Iterator[K]) Valid() bool { return it.it.Valid() }
func (it *Iterator[K]) Cur() K      { return it.it.Cur() }

func (it *Iterator[K]) cur() (_ K, ok bool) {
	if !it.Valid() {
		var zero K
		return zero, false
	}
	return it.Cur(), true
}
