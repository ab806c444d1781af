package cagecolor

import (
	"fmt"
	"sort"

	"github.com/kdlx/xcover/internal/collections"
)

const numColors = 6

// removal records one vertex peeled off the working graph: its id and the
// neighbor list it had at the moment of removal, which is exactly the
// information needed to pick its color once the remainder is colored.
type removal struct {
	vertex    int
	neighbors []int
}

// SixColor assigns each vertex of graph a color in {0..5} such that no two
// adjacent vertices share a color. graph maps a vertex id to its list of
// adjacent vertex ids; it is not required to be symmetric (an edge need only
// be listed from one endpoint) and is never mutated.
//
// The naive formulation recurses once per vertex: remove a vertex of degree
// at most 5 (one always exists in a planar graph, by Euler's formula),
// recursively color what remains, then give the removed vertex the smallest
// color absent from its neighbors. That recursion depth equals the vertex
// count, so this implementation peels vertices onto an explicit stack
// instead of calling itself, and colors them back off the stack in reverse
// order -- coloring a graph with a very large vertex count never risks
// exhausting the goroutine stack.
func SixColor(graph map[int][]int) (map[int]int, error) {
	working := make(map[int]*collections.Set[int], len(graph))
	neighborSet := func(v int) *collections.Set[int] {
		if working[v] == nil {
			working[v] = collections.NewSet[int]()
		}
		return working[v]
	}
	for v, neighbors := range graph {
		neighborSet(v)
		for _, n := range neighbors {
			neighborSet(v).Add(n)
			neighborSet(n).Add(v)
		}
	}

	var removed []removal
	for len(working) > 1 {
		v, ok := lowestDegreeVertex(working)
		if !ok {
			return nil, fmt.Errorf("%w: %d vertices remain, all with degree > %d",
				ErrMustBePlanar, len(working), numColors-1)
		}

		neighbors := working[v].Values()
		sort.Ints(neighbors)
		removed = append(removed, removal{vertex: v, neighbors: neighbors})

		delete(working, v)
		for _, n := range neighbors {
			working[n].Remove(v)
		}
	}

	colors := make(map[int]int, len(graph))
	for v := range working {
		colors[v] = 0
	}

	for i := len(removed) - 1; i >= 0; i-- {
		r := removed[i]
		used := make([]bool, numColors)
		for _, n := range r.neighbors {
			used[colors[n]] = true
		}
		colors[r.vertex] = firstUnused(used)
	}

	return colors, nil
}

// lowestDegreeVertex returns the lowest-numbered vertex of degree at most 5,
// so that coloring the same graph always peels vertices in the same order.
func lowestDegreeVertex(working map[int]*collections.Set[int]) (int, bool) {
	candidate := 0
	found := false
	for v, neighbors := range working {
		if neighbors.Size() > numColors-1 {
			continue
		}
		if !found || v < candidate {
			candidate = v
			found = true
		}
	}
	return candidate, found
}

func firstUnused(used []bool) int {
	for c, u := range used {
		if !u {
			return c
		}
	}
	// Unreachable given the degree-<=5 invariant enforced by
	// lowestDegreeVertex: a removed vertex never has more than 5 neighbors,
	// so at least one of 6 colors is always free.
	panic("cagecolor: no color available for a degree-<=5 vertex")
}
