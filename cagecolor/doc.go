// Package cagecolor implements a constructive six-coloring of a planar
// graph: a greedy algorithm guaranteed to succeed on any planar input by the
// six-color theorem, which follows from Euler's formula (a planar graph
// always has some vertex of degree at most 5).
package cagecolor
