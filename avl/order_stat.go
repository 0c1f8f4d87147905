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

type aug[K any] struct {
	// size is the number of keys rooted at the current subtree.
	size int
}

// Update will update the count for the current node.
func (a *aug[K]) Update(n abstract.Node[K, *aug[K]]) {
	a.size = 1
	for d := abstract.Left; d <= abstract.Right; d++ {
		if c := n.Child(d); c != nil {
			a.size += c.size
		}
	}
}

func (t *Tree[K]) size(id abstract.NodeID) int {
	if id == abstract.None {
		return 0
	}
	return t.t.Aug(id).size
}

// Rank returns the number of keys strictly less than k.
func (t *Tree[K]) Rank(k K) int {
	var rank int
	for id := t.t.Root(); id != abstract.None; {
		c := t.t.Compare(k, t.t.Key(id))
		switch {
		case c < 0:
			id = t.t.Left(id)
		case c == 0:
			return rank + t.size(t.t.Left(id))
		default:
			rank += t.size(t.t.Left(id)) + 1
			id = t.t.Right(id)
		}
	}
	return rank
}

// Nth returns the key at in-order position i, counting from zero.
func (t *Tree[K]) Nth(i int) (_ K, ok bool) {
	id := t.nth(i)
	if id == abstract.None {
		var zero K
		return zero, false
	}
	return t.t.Key(id), true
}

func (t *Tree[K]) nth(i int) abstract.NodeID {
	if i < 0 || i >= t.Len() {
		return abstract.None
	}
	id := t.t.Root()
	for {
		l := t.size(t.t.Left(id))
		switch {
		case i < l:
			id = t.t.Left(id)
		case i == l:
			return id
		default:
			i -= l + 1
			id = t.t.Right(id)
		}
	}
}
