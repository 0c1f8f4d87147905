// Package grid provides an approximate nearest-neighbour index over a
// bounded square of the plane.
//
// The square [0, max) x [0, max) is divided into m x m equal buckets. A
// nearest-neighbour query scans only the bucket containing the reference
// and the ring of up to eight buckets around it, so it is exact only when
// the true nearest point lies in that ring. When the ring is empty the
// query reports ErrNoCandidate rather than widening its search.
package grid
