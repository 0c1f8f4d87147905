package rangetree

import "github.com/ajwerner/spatial/internal/abstract"

// split returns the node where the search paths for lo and hi diverge:
// the first node, going down from the root, that is a leaf or whose
// routing key lies in [lo, hi).
func (t *Tree[K]) split(lo, hi K) abstract.NodeID {
	id := t.t.Root()
	for id != abstract.None && !t.t.Aug(id).leaf {
		k := t.t.Key(id)
		if t.t.Compare(hi, k) <= 0 {
			id = t.t.Left(id)
		} else if t.t.Compare(lo, k) > 0 {
			id = t.t.Right(id)
		} else {
			break
		}
	}
	return id
}

func (t *Tree[K]) inRange(id abstract.NodeID, lo, hi K) bool {
	k := t.t.Key(id)
	return t.t.Compare(lo, k) <= 0 && t.t.Compare(k, hi) <= 0
}

// canonical visits the subtrees that together hold exactly the keys in
// [lo, hi], in ascending order, along with the at most two boundary leaves
// that must be checked individually. Each subtree is passed as its root and
// whole reports whether every leaf below it is in range. It stops when
// visit returns false.
func (t *Tree[K]) canonical(lo, hi K, visit func(id abstract.NodeID, whole bool) bool) {
	if t.t.Compare(lo, hi) > 0 {
		return
	}
	s := t.split(lo, hi)
	if s == abstract.None {
		return
	}
	if t.t.Aug(s).leaf {
		visit(s, false)
		return
	}

	// Walking towards lo, right subtrees hang off the path in descending
	// order, so they are reported after the boundary leaf in reverse.
	var right []abstract.NodeID
	id := t.t.Left(s)
	for !t.t.Aug(id).leaf {
		if t.t.Compare(lo, t.t.Key(id)) <= 0 {
			right = append(right, t.t.Right(id))
			id = t.t.Left(id)
		} else {
			id = t.t.Right(id)
		}
	}
	if !visit(id, false) {
		return
	}
	for i := len(right) - 1; i >= 0; i-- {
		if !visit(right[i], true) {
			return
		}
	}

	id = t.t.Right(s)
	for !t.t.Aug(id).leaf {
		if t.t.Compare(hi, t.t.Key(id)) >= 0 {
			if !visit(t.t.Left(id), true) {
				return
			}
			id = t.t.Right(id)
		} else {
			id = t.t.Left(id)
		}
	}
	visit(id, false)
}

// Range calls fn, in ascending order, for every key k with lo <= k <= hi
// until fn returns false.
func (t *Tree[K]) Range(lo, hi K, fn func(K) bool) {
	t.canonical(lo, hi, func(id abstract.NodeID, whole bool) bool {
		if !whole {
			return !t.inRange(id, lo, hi) || fn(t.t.Key(id))
		}
		return t.report(id, fn)
	})
}

// report calls fn for every leaf below id in ascending order.
func (t *Tree[K]) report(id abstract.NodeID, fn func(K) bool) bool {
	if t.t.Aug(id).leaf {
		return fn(t.t.Key(id))
	}
	return t.report(t.t.Left(id), fn) && t.report(t.t.Right(id), fn)
}

// Count returns the number of keys k with lo <= k <= hi. It visits only the
// boundary paths.
func (t *Tree[K]) Count(lo, hi K) int {
	var n int
	t.canonical(lo, hi, func(id abstract.NodeID, whole bool) bool {
		if whole {
			n += t.leaves(id)
		} else if t.inRange(id, lo, hi) {
			n++
		}
		return true
	})
	return n
}
