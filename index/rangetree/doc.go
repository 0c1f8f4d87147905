// Package rangetree provides a one-dimensional range tree: a balanced
// binary tree in which every key is stored in a leaf and internal nodes
// only route searches.
//
// An internal node's routing key is greater than or equal to every leaf in
// its left subtree and less than every leaf in its right subtree. A range
// query descends to the split node, where the paths to the two bounds
// diverge, and then follows each bound down to a leaf, reporting whole
// subtrees that lie between the two paths.
package rangetree
