package cagecolor

import "fmt"

// ErrMustBePlanar is returned when the input graph has no vertex of degree
// at most 5 -- the precondition the six-color theorem relies on.
var ErrMustBePlanar = fmt.Errorf("cagecolor: no vertex of degree <= 5 found")
