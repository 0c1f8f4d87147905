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

// NodeID addresses a node in the tree's arena. Child links and parent links
// are NodeIDs; only the child links own the node.
type NodeID int32

// None is the NodeID of an absent node.
const None NodeID = 0

// freed marks a released slot. Live nodes have height >= 0.
const freed = -1

type node[K, A any] struct {
	key    K
	parent NodeID
	child  [2]NodeID
	height int32
	aug    A
}

// nodePool is an arena of nodes with a free list. Slot 0 is never handed
// out so that the zero NodeID can stand for "no node".
type nodePool[K, A any] struct {
	nodes []node[K, A]
	free  []NodeID
	live  int
}

func (np *nodePool[K, A]) get(k K) NodeID {
	if len(np.nodes) == 0 {
		np.nodes = make([]node[K, A], 1, 16)
		np.nodes[None].height = freed
	}
	np.live++
	if n := len(np.free); n > 0 {
		id := np.free[n-1]
		np.free = np.free[:n-1]
		np.nodes[id] = node[K, A]{key: k}
		return id
	}
	np.nodes = append(np.nodes, node[K, A]{key: k})
	return NodeID(len(np.nodes) - 1)
}

// put releases a node. Every node must be released exactly once.
func (np *nodePool[K, A]) put(id NodeID) {
	if id == None || np.nodes[id].height == freed {
		panic("abstract: node released twice")
	}
	// Drop the key and augmentation so that they can be collected.
	np.nodes[id] = node[K, A]{height: freed}
	np.free = append(np.free, id)
	np.live--
}

func (np *nodePool[K, A]) reset() {
	*np = nodePool[K, A]{}
}

func (np *nodePool[K, A]) clone() nodePool[K, A] {
	return nodePool[K, A]{
		nodes: append([]node[K, A](nil), np.nodes...),
		free:  append([]NodeID(nil), np.free...),
		live:  np.live,
	}
}
