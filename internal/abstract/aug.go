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

// Node represents an abstraction of a node exposed to the augmentation
// primitives.
type Node[K, A any] interface {

	// Key returns the key stored at this node.
	Key() K

	// IsLeaf returns whether this node has no children.
	IsLeaf() bool

	// Child returns the augmentation of the child in the given direction,
	// or nil if there is no such child.
	Child(d Dir) A
}

// Aug is a data structure which augments a node of the tree. It is updated
// when the structure of the subtree rooted at the current node changes.
//
// Update is called bottom-up: by the time a node is updated, the
// augmentations of both of its children are current. It is called for a
// freshly attached node, for both nodes involved in every rotation, and for
// every node on the path walked by Rebalance.
type Aug[K, A any] interface {
	*A
	Update(n Node[K, *A])
}

// Dir selects a child of a node.
type Dir int8

const (
	Left Dir = iota
	Right
)

// Opposite returns the other direction.
func (d Dir) Opposite() Dir { return 1 - d }

func (d Dir) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

type nodeRef[K, A any, AP Aug[K, A]] struct {
	t  *Tree[K, A, AP]
	id NodeID
}

func (r nodeRef[K, A, AP]) Key() K { return r.t.n(r.id).key }

func (r nodeRef[K, A, AP]) IsLeaf() bool { return r.t.IsLeaf(r.id) }

func (r nodeRef[K, A, AP]) Child(d Dir) *A {
	c := r.t.n(r.id).child[d]
	if c == None {
		return nil
	}
	return &r.t.n(c).aug
}
