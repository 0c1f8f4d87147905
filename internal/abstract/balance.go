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

// Rebalance walks from id up to the root. At each node it recomputes the
// cached height and the augmentation and, if the balance factor has reached
// ±2, performs exactly one (single or double) rotation there before
// continuing from the parent of the rotated subtree.
//
// Nodes off the walked path are never modified by a mutation, so their
// cached heights are current and the balance of any child can be read
// directly.
func (t *Tree[K, A, AP]) Rebalance(id NodeID) {
	for id != None {
		t.update(id)
		if b := t.Balance(id); b < -1 || b > 1 {
			id = t.rotate(id)
		}
		id = t.n(id).parent
	}
}

// update recomputes the height and augmentation of id from its children.
func (t *Tree[K, A, AP]) update(id NodeID) {
	n := t.n(id)
	n.height = int32(1 + max(t.Height(n.child[Left]), t.Height(n.child[Right])))
	AP(&n.aug).Update(nodeRef[K, A, AP]{t: t, id: id})
}

// rotate restores the balance at id and returns the root of the rotated
// subtree.
//
// A left-heavy node whose left child leans right needs a double rotation
// (left at the child, then right at id); otherwise a single right rotation
// suffices. A child with balance 0, which only happens after a removal, is
// handled by the single rotation. Right-heavy nodes are symmetric.
func (t *Tree[K, A, AP]) rotate(id NodeID) NodeID {
	heavy, inner := Left, 1
	if t.Balance(id) > 0 {
		heavy, inner = Right, -1
	}
	if c := t.n(id).child[heavy]; t.Balance(c) == inner {
		t.rotateAt(c, heavy)
	}
	return t.rotateAt(id, heavy.Opposite())
}

// rotateAt rotates the subtree rooted at p in direction d and returns its new
// root. Exactly three links are re-parented: p, the child c that rises, and
// the inner grandchild y that changes sides.
//
// A right rotation (d == Right):
//
//	    p               c
//	   / \             / \
//	  c   z    ==>    x   p
//	 / \                 / \
//	x   y               y   z
//
// A left rotation is the mirror image.
func (t *Tree[K, A, AP]) rotateAt(p NodeID, d Dir) NodeID {
	o := d.Opposite()
	pn := t.n(p)
	c := pn.child[o]
	cn := t.n(c)
	g := pn.parent
	y := cn.child[d]

	pn.child[o] = y
	if y != None {
		t.n(y).parent = p
	}
	cn.child[d] = p
	pn.parent = c
	cn.parent = g
	t.replaceChild(g, p, c)

	t.update(p)
	t.update(c)
	return c
}

// replaceChild points the slot of parent that held old at repl. A parent of
// None stands for the root pointer.
func (t *Tree[K, A, AP]) replaceChild(parent, old, repl NodeID) {
	if parent == None {
		t.root = repl
		return
	}
	pn := t.n(parent)
	if pn.child[Left] == old {
		pn.child[Left] = repl
	} else {
		pn.child[Right] = repl
	}
}
