// Package bruteforce provides a spatial index that answers every query by
// scanning all points. It is the correctness oracle the other variants are
// checked against.
package bruteforce
