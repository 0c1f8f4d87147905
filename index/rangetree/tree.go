package rangetree

import (
	"github.com/pkg/errors"

	"github.com/ajwerner/spatial/internal/abstract"
)

// Tree is a range tree over unique keys.
type Tree[K any] struct {
	t abstract.Tree[K, aug[K], *aug[K]]
}

// NewTree returns an empty tree ordered by cmp.
func NewTree[K any](cmp func(K, K) int) *Tree[K] {
	return &Tree[K]{t: abstract.MakeTree[K, aug[K]](cmp)}
}

// descend returns the leaf a search for k ends at, or None if the tree is
// empty.
func (t *Tree[K]) descend(k K) abstract.NodeID {
	id := t.t.Root()
	if id == abstract.None {
		return id
	}
	for !t.t.Aug(id).leaf {
		if t.t.Compare(k, t.t.Key(id)) <= 0 {
			id = t.t.Left(id)
		} else {
			id = t.t.Right(id)
		}
	}
	return id
}

// Insert adds k. It returns false, leaving the tree untouched, if k is
// already present.
//
// The leaf reached by the search becomes a routing node keyed by the
// smaller of the two keys, with both keys as its leaves.
func (t *Tree[K]) Insert(k K) bool {
	p := t.descend(k)
	if p == abstract.None {
		t.t.NewRoot(k)
		return true
	}
	pk := t.t.Key(p)
	c := t.t.Compare(k, pk)
	if c == 0 {
		return false
	}
	lo, hi := k, pk
	if c > 0 {
		lo, hi = pk, k
	}
	t.t.SetKey(p, lo)
	t.t.NewChild(p, abstract.Left, lo)
	t.t.NewChild(p, abstract.Right, hi)
	t.t.Rebalance(p)
	return true
}

// Remove deletes k. It returns false if k is not present.
//
// The leaf and its parent are unlinked and the sibling takes the parent's
// place. Routing keys above may still name the removed key, which keeps
// them valid separators.
func (t *Tree[K]) Remove(k K) bool {
	id := t.descend(k)
	if id == abstract.None || t.t.Compare(k, t.t.Key(id)) != 0 {
		return false
	}
	p := t.t.Splice(id)
	if p == abstract.None {
		return true
	}
	t.t.Rebalance(t.t.Splice(p))
	return true
}

// Contains returns whether k is present.
func (t *Tree[K]) Contains(k K) bool {
	id := t.descend(k)
	return id != abstract.None && t.t.Compare(k, t.t.Key(id)) == 0
}

// Len returns the number of keys, which is the number of leaves.
func (t *Tree[K]) Len() int {
	return t.leaves(t.t.Root())
}

func (t *Tree[K]) leaves(id abstract.NodeID) int {
	if id == abstract.None {
		return 0
	}
	return t.t.Aug(id).leaves
}

// Height returns the height of the tree: -1 when empty, 0 for a single key.
func (t *Tree[K]) Height() int {
	return t.t.Height(t.t.Root())
}

// Reset removes all keys.
func (t *Tree[K]) Reset() {
	t.t.Reset()
}

// String returns a string description of the tree including routing keys.
// The format is similar to the https://en.wikipedia.org/wiki/Newick_format.
func (t *Tree[K]) String() string {
	return t.t.String()
}

// Ascend calls fn for every key in ascending order until fn returns false.
func (t *Tree[K]) Ascend(fn func(K) bool) {
	it := t.t.MakeIter()
	for it.First(); it.Valid(); it.Next() {
		if t.t.Aug(it.Node()).leaf && !fn(it.Cur()) {
			return
		}
	}
}

// Verify checks the invariants of the tree: the engine's structural checks,
// every internal node has two children, leaf flags and counts are current,
// leaves ascend strictly and every routing key separates its subtrees.
func (t *Tree[K]) Verify() error {
	if err := t.t.Verify(); err != nil {
		return err
	}
	if root := t.t.Root(); root != abstract.None {
		if _, _, _, err := t.verify(root); err != nil {
			return err
		}
	}
	return nil
}

// verify returns the smallest and largest leaf keys and the leaf count of
// the subtree rooted at id.
func (t *Tree[K]) verify(id abstract.NodeID) (lo, hi K, leaves int, err error) {
	a, k := t.t.Aug(id), t.t.Key(id)
	l, r := t.t.Left(id), t.t.Right(id)
	if a.leaf != t.t.IsLeaf(id) {
		return lo, hi, 0, errors.Errorf("rangetree: node %v has leaf flag %t", k, a.leaf)
	}
	if a.leaf {
		if a.leaves != 1 {
			return lo, hi, 0, errors.Errorf("rangetree: leaf %v counts %d leaves", k, a.leaves)
		}
		return k, k, 1, nil
	}
	if l == abstract.None || r == abstract.None {
		return lo, hi, 0, errors.Errorf("rangetree: internal node %v has one child", k)
	}
	lo, lhi, ln, err := t.verify(l)
	if err != nil {
		return lo, hi, 0, err
	}
	rlo, hi, rn, err := t.verify(r)
	if err != nil {
		return lo, hi, 0, err
	}
	if t.t.Compare(lhi, k) > 0 || t.t.Compare(k, rlo) >= 0 {
		return lo, hi, 0, errors.Errorf(
			"rangetree: routing key %v does not separate %v from %v", k, lhi, rlo)
	}
	if a.leaves != ln+rn {
		return lo, hi, 0, errors.Errorf("rangetree: node %v counts %d leaves, want %d", k, a.leaves, ln+rn)
	}
	return lo, hi, ln + rn, nil
}
