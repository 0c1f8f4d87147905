package rangetree

import "github.com/ajwerner/spatial/internal/abstract"

type aug[K any] struct {
	// leaf is set on nodes without children. Rotations move nodes between
	// levels, so the flag is recomputed along with the counts.
	leaf bool
	// leaves is the number of leaves in the subtree.
	leaves int
}

// Update recomputes the leaf flag and count of the current node.
func (a *aug[K]) Update(n abstract.Node[K, *aug[K]]) {
	a.leaf = n.IsLeaf()
	if a.leaf {
		a.leaves = 1
		return
	}
	a.leaves = 0
	for d := abstract.Left; d <= abstract.Right; d++ {
		if c := n.Child(d); c != nil {
			a.leaves += c.leaves
		}
	}
}
