// Package rangebst provides a spatial index over an AVL tree of points
// ordered lexicographically. Range queries walk the tree in order and
// prune subtrees that fall outside the query bounds.
package rangebst
