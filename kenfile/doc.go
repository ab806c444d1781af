// Package kenfile reads and writes the .ken puzzle file format: a
// grid dimension, a list of arithmetic cages over that grid, and a solved
// digit grid. It is deliberately thin -- enough to round-trip a puzzle and
// drive the cage colorer, not a general-purpose puzzle parser.
package kenfile
