// Package xcover implements Knuth's Algorithm X for the exact cover problem
// using dancing links (DLX), extended with secondary columns (the XCC
// variant, covered at most once rather than exactly once) and an iterated
// preprocessing pass (IDLX) that temporarily demotes long, expensive columns
// to secondary status to prune rows that can never participate in a
// solution.
//
// The matrix is represented as two arenas owned by a *Matrix: a fixed set
// of column headers, looked up by name, and a slice of nodes, one per 1-cell
// in the membership matrix, allocated once at Build time. Column headers double as the head sentinel of
// their own vertical list, following the pattern used throughout the
// dancing-links literature and in this repository's teacher implementation.
package xcover
