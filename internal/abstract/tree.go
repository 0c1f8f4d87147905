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

// Package abstract implements a height-balanced binary search tree whose
// nodes live in an arena and carry a parent link. It is the substrate shared
// by the balanced search tree and the range tree: both use its rotations and
// its bottom-up rebalancing, and differ in how keys are placed and in the
// augmentation they maintain.
package abstract

import (
	"fmt"
	"strings"
)

// Tree is an augmented AVL tree.
//
// The tree is not safe for concurrent use. Parent links are observation only:
// a node is owned by the child slot of its parent (or by the root pointer)
// and every structural change keeps both directions in sync.
type Tree[K, A any, AP Aug[K, A]] struct {
	cfg  Config[K]
	np   nodePool[K, A]
	root NodeID
}

// MakeTree constructs an empty tree ordered by cmp.
func MakeTree[K, A any, AP Aug[K, A]](cmp func(K, K) int) Tree[K, A, AP] {
	return Tree[K, A, AP]{cfg: makeConfig(cmp)}
}

func (t *Tree[K, A, AP]) n(id NodeID) *node[K, A] {
	return &t.np.nodes[id]
}

// Reset releases every node in the tree.
func (t *Tree[K, A, AP]) Reset() {
	t.np.reset()
	t.root = None
}

// Clone returns a deep copy of the tree. NodeIDs are preserved, so a NodeID
// obtained from the receiver addresses the same key in the clone.
func (t *Tree[K, A, AP]) Clone() Tree[K, A, AP] {
	return Tree[K, A, AP]{
		cfg:  t.cfg,
		np:   t.np.clone(),
		root: t.root,
	}
}

// Live returns the number of nodes currently allocated.
func (t *Tree[K, A, AP]) Live() int {
	return t.np.live
}

// Find descends from the root looking for k. If k is not present, it
// returns the last node visited, which is the parent a new node holding k
// would be attached to (None if the tree is empty).
func (t *Tree[K, A, AP]) Find(k K) (id NodeID, found bool) {
	for cur := t.root; cur != None; {
		id = cur
		c := t.cfg.cmp(k, t.n(cur).key)
		if c == 0 {
			return cur, true
		}
		cur = t.n(cur).child[dirOf(c)]
	}
	return id, false
}

// Insert adds k to the tree if no equal key is present. Equal keys are not
// re-inserted and the tree is left untouched.
func (t *Tree[K, A, AP]) Insert(k K) (id NodeID, inserted bool) {
	parent, found := t.Find(k)
	if found {
		return parent, false
	}
	if parent == None {
		return t.NewRoot(k), true
	}
	id = t.NewChild(parent, dirOf(t.cfg.cmp(k, t.n(parent).key)), k)
	t.Rebalance(parent)
	return id, true
}

// Delete removes the key equal to k, returning the removed key.
func (t *Tree[K, A, AP]) Delete(k K) (removed K, found bool) {
	id, found := t.Find(k)
	if !found {
		return removed, false
	}
	removed = t.n(id).key
	t.Remove(id)
	return removed, true
}

// Remove unlinks the key held at id and rebalances.
//
// A node with two children takes over the key of its in-order successor
// (the leftmost node of its right subtree) and the successor, which has at
// most one child, is spliced out instead. The NodeID of a node is therefore
// not guaranteed to be released by this call; id may survive holding a
// different key.
func (t *Tree[K, A, AP]) Remove(id NodeID) {
	n := t.n(id)
	if n.child[Left] != None && n.child[Right] != None {
		s := n.child[Right]
		for t.n(s).child[Left] != None {
			s = t.n(s).child[Left]
		}
		n.key = t.n(s).key
		id = s
	}
	t.Rebalance(t.Splice(id))
}

// Height returns the cached height of the subtree rooted at id. An absent
// node has height -1 and a leaf has height 0.
func (t *Tree[K, A, AP]) Height(id NodeID) int {
	if id == None {
		return -1
	}
	return int(t.n(id).height)
}

// SubtreeHeight computes the height of the subtree rooted at id recursively
// without consulting the cached heights.
func (t *Tree[K, A, AP]) SubtreeHeight(id NodeID) int {
	if id == None {
		return -1
	}
	n := t.n(id)
	return 1 + max(t.SubtreeHeight(n.child[Left]), t.SubtreeHeight(n.child[Right]))
}

// Balance returns the balance factor of id: the height of its right subtree
// minus the height of its left subtree.
func (t *Tree[K, A, AP]) Balance(id NodeID) int {
	if id == None {
		return 0
	}
	n := t.n(id)
	return t.Height(n.child[Right]) - t.Height(n.child[Left])
}

// String returns a string description of the tree. The format is
// similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[K, A, AP]) String() string {
	if t.root == None {
		return ";"
	}
	var b strings.Builder
	t.writeString(&b, t.root)
	return b.String()
}

func (t *Tree[K, A, AP]) writeString(b *strings.Builder, id NodeID) {
	n := t.n(id)
	if n.child[Left] == None && n.child[Right] == None {
		fmt.Fprintf(b, "%v", n.key)
		return
	}
	b.WriteString("(")
	if c := n.child[Left]; c != None {
		t.writeString(b, c)
	}
	b.WriteString(",")
	if c := n.child[Right]; c != None {
		t.writeString(b, c)
	}
	fmt.Fprintf(b, ")%v", n.key)
}

func dirOf(c int) Dir {
	if c < 0 {
		return Left
	}
	return Right
}
