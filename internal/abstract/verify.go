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

import "github.com/pkg/errors"

// Verify checks the structural invariants of the tree: parent links mirror
// child links, cached heights match the recursive definition, every balance
// factor is in {-1, 0, 1}, the in-order key sequence is non-decreasing, and
// every allocated node is reachable from the root.
func (t *Tree[K, A, AP]) Verify() error {
	if t.root == None {
		if t.np.live != 0 {
			return errors.Errorf("abstract: empty tree holds %d live nodes", t.np.live)
		}
		return nil
	}
	if p := t.n(t.root).parent; p != None {
		return errors.Errorf("abstract: root %d has parent %d", t.root, p)
	}
	reachable, _, err := t.verify(t.root)
	if err != nil {
		return err
	}
	if reachable != t.np.live {
		return errors.Errorf("abstract: %d nodes reachable, %d live", reachable, t.np.live)
	}
	var prev K
	it := t.MakeIter()
	it.First()
	first := it.Node()
	for ; it.Valid(); it.Next() {
		if it.Node() != first && t.cfg.cmp(prev, it.Cur()) > 0 {
			return errors.Errorf("abstract: keys out of order: %v before %v", prev, it.Cur())
		}
		prev = it.Cur()
	}
	// TODO(ajwerner): verify the augmentation once Aug grows a way to
	// compare two values.
	return nil
}

func (t *Tree[K, A, AP]) verify(id NodeID) (count, height int, err error) {
	n := t.n(id)
	if n.height == freed {
		return 0, 0, errors.Errorf("abstract: node %d is reachable after release", id)
	}
	heights := [2]int{-1, -1}
	for d := Left; d <= Right; d++ {
		c := n.child[d]
		if c == None {
			continue
		}
		if p := t.n(c).parent; p != id {
			return 0, 0, errors.Errorf("abstract: %s child %d of %d has parent %d", d, c, id, p)
		}
		cc, ch, err := t.verify(c)
		if err != nil {
			return 0, 0, err
		}
		count += cc
		heights[d] = ch
	}
	height = 1 + max(heights[Left], heights[Right])
	if int(n.height) != height {
		return 0, 0, errors.Errorf("abstract: node %d caches height %d, want %d", id, n.height, height)
	}
	if b := heights[Right] - heights[Left]; b < -1 || b > 1 {
		return 0, 0, errors.Errorf("abstract: node %d (%v) has balance factor %d", id, n.key, b)
	}
	return count + 1, height, nil
}
