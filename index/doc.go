// Package index defines the contract shared by the spatial index variants
// in this module and the errors they report.
//
// Every variant accepts points of one arity, fixed by the first insertion.
// Tree-based variants key on the lexicographic order of points and answer
// both range and nearest-neighbour queries exactly. The grid variant only
// answers nearest-neighbour queries, and only within a fixed ring of
// buckets. The brute-force variant scans everything and serves as the
// reference the others are validated against.
//
// None of the implementations are safe for concurrent use.
package index
