// Copyright 2018 The Cockroach Authors.
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

// Iterator is responsible for in-order traversal within a Tree. It walks
// parent links, so it needs no stack of its own.
//
// It is not safe to continue using an Iterator after modifications are made
// to the tree. If modifications are made, create a new Iterator.
type Iterator[K, A any, AP Aug[K, A]] struct {
	t  *Tree[K, A, AP]
	id NodeID
}

// MakeIter returns a new, unpositioned Iterator.
func (t *Tree[K, A, AP]) MakeIter() Iterator[K, A, AP] {
	return Iterator[K, A, AP]{t: t}
}

// Reset invalidates the iterator.
func (i *Iterator[K, A, AP]) Reset() {
	i.id = None
}

// First seeks to the first key in the Tree.
func (i *Iterator[K, A, AP]) First() {
	i.id = i.extreme(i.t.root, Left)
}

// Last seeks to the last key in the Tree.
func (i *Iterator[K, A, AP]) Last() {
	i.id = i.extreme(i.t.root, Right)
}

// SeekGE seeks to the first key greater-than or equal to the provided key.
// The in-order sequence of keys must be non-decreasing.
func (i *Iterator[K, A, AP]) SeekGE(key K) {
	i.id = None
	for cur := i.t.root; cur != None; {
		if i.t.cfg.cmp(key, i.t.n(cur).key) <= 0 {
			i.id = cur
			cur = i.t.n(cur).child[Left]
		} else {
			cur = i.t.n(cur).child[Right]
		}
	}
}

// SeekLT seeks to the last key less-than the provided key.
func (i *Iterator[K, A, AP]) SeekLT(key K) {
	i.id = None
	for cur := i.t.root; cur != None; {
		if i.t.cfg.cmp(i.t.n(cur).key, key) < 0 {
			i.id = cur
			cur = i.t.n(cur).child[Right]
		} else {
			cur = i.t.n(cur).child[Left]
		}
	}
}

// Next positions the Iterator to the key immediately following
// its current position.
func (i *Iterator[K, A, AP]) Next() {
	i.step(Right)
}

// Prev positions the Iterator to the key immediately preceding
// its current position.
func (i *Iterator[K, A, AP]) Prev() {
	i.step(Left)
}

func (i *Iterator[K, A, AP]) step(d Dir) {
	if i.id == None {
		return
	}
	if c := i.t.n(i.id).child[d]; c != None {
		i.id = i.extreme(c, d.Opposite())
		return
	}
	// Ascend until we arrive from the side opposite to d.
	cur := i.id
	p := i.t.n(cur).parent
	for p != None && i.t.n(p).child[d] == cur {
		cur, p = p, i.t.n(p).parent
	}
	i.id = p
}

func (i *Iterator[K, A, AP]) extreme(id NodeID, d Dir) NodeID {
	if id == None {
		return None
	}
	for c := i.t.n(id).child[d]; c != None; c = i.t.n(id).child[d] {
		id = c
	}
	return id
}

// Valid returns whether the Iterator is positioned at a valid position.
func (i *Iterator[K, A, AP]) Valid() bool {
	return i.id != None
}

// Cur returns the key at the Iterator's current position. It is illegal
// to call Cur if the Iterator is not valid.
func (i *Iterator[K, A, AP]) Cur() K {
	return i.t.n(i.id).key
}

// Node returns the node at the Iterator's current position.
func (i *Iterator[K, A, AP]) Node() NodeID {
	return i.id
}

// SetNode positions the Iterator at id, which must be None or a live node
// of the tree.
func (i *Iterator[K, A, AP]) SetNode(id NodeID) {
	i.id = id
}
