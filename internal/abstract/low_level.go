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

// The methods in this file are exposed to developers within this module for
// use in implementing trees whose key placement differs from plain BST
// insertion, and augmented searches. Given this package is internal, callers
// outside of this module cannot reach them.

// Config returns the Tree's config.
func (t *Tree[K, A, AP]) Config() *Config[K] {
	return &t.cfg
}

// Compare compares two keys with the tree's comparison function.
func (t *Tree[K, A, AP]) Compare(a, b K) int {
	return t.cfg.cmp(a, b)
}

// Root returns the root node, or None if the tree is empty.
func (t *Tree[K, A, AP]) Root() NodeID {
	return t.root
}

// Key returns the key stored at id.
func (t *Tree[K, A, AP]) Key(id NodeID) K {
	return t.n(id).key
}

// SetKey overwrites the key stored at id. The caller is responsible for
// preserving the ordering invariants of the tree.
func (t *Tree[K, A, AP]) SetKey(id NodeID, k K) {
	t.n(id).key = k
}

// Child returns the child of id in direction d, or None.
func (t *Tree[K, A, AP]) Child(id NodeID, d Dir) NodeID {
	return t.n(id).child[d]
}

// Left returns the left child of id, or None.
func (t *Tree[K, A, AP]) Left(id NodeID) NodeID {
	return t.n(id).child[Left]
}

// Right returns the right child of id, or None.
func (t *Tree[K, A, AP]) Right(id NodeID) NodeID {
	return t.n(id).child[Right]
}

// Parent returns the parent of id, or None if id is the root.
func (t *Tree[K, A, AP]) Parent(id NodeID) NodeID {
	return t.n(id).parent
}

// IsLeaf returns whether id has no children.
func (t *Tree[K, A, AP]) IsLeaf(id NodeID) bool {
	n := t.n(id)
	return n.child[Left] == None && n.child[Right] == None
}

// Aug returns the augmentation of id. It is illegal to call with None.
func (t *Tree[K, A, AP]) Aug(id NodeID) AP {
	return &t.n(id).aug
}

// NewRoot allocates the root of an empty tree.
func (t *Tree[K, A, AP]) NewRoot(k K) NodeID {
	if t.root != None {
		panic("abstract: tree already has a root")
	}
	t.root = t.np.get(k)
	t.update(t.root)
	return t.root
}

// NewChild allocates a node holding k and attaches it as the child of parent
// in direction d, which must be empty. The new node's augmentation is
// initialized; the caller is responsible for calling Rebalance on parent.
func (t *Tree[K, A, AP]) NewChild(parent NodeID, d Dir, k K) NodeID {
	if t.n(parent).child[d] != None {
		panic("abstract: child slot is occupied")
	}
	// get may grow the arena, so no node pointer is held across it.
	id := t.np.get(k)
	t.n(id).parent = parent
	t.n(parent).child[d] = id
	t.update(id)
	return id
}

// Splice unlinks id, which must have at most one child, by moving its child
// (if any) into the slot id occupied, and releases id. It returns the former
// parent of id, which is where rebalancing must start; None means id was the
// root.
func (t *Tree[K, A, AP]) Splice(id NodeID) (parent NodeID) {
	n := t.n(id)
	c := n.child[Left]
	if c == None {
		c = n.child[Right]
	} else if n.child[Right] != None {
		panic("abstract: cannot splice a node with two children")
	}
	parent = n.parent
	if c != None {
		t.n(c).parent = parent
	}
	t.replaceChild(parent, id, c)
	t.np.put(id)
	return parent
}
