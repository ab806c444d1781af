package cagecolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridGraph builds the adjacency list of a w x h grid graph, vertex ids
// numbered in row-major order -- a small planar graph with maximum degree 4.
func gridGraph(w, h int) map[int][]int {
	id := func(r, c int) int { return r*w + c }
	graph := make(map[int][]int)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			v := id(r, c)
			var neighbors []int
			if c+1 < w {
				neighbors = append(neighbors, id(r, c+1))
			}
			if r+1 < h {
				neighbors = append(neighbors, id(r+1, c))
			}
			graph[v] = append(graph[v], neighbors...)
		}
	}
	return graph
}

// Scenario 6: six-coloring a 4x4 grid graph (16 vertices, each adjacent to
// up to 4 others). Every coloring must be valid using only colors 0..5.
func TestSixColorGridGraphIsValid(t *testing.T) {
	graph := gridGraph(4, 4)

	colors, err := SixColor(graph)
	require.NoError(t, err)
	require.Len(t, colors, 16)

	for v, neighbors := range graph {
		for _, n := range neighbors {
			assert.NotEqual(t, colors[v], colors[n], "vertices %d and %d share a color", v, n)
		}
	}
	for v, c := range colors {
		assert.True(t, c >= 0 && c <= 5, "vertex %d got out-of-range color %d", v, c)
	}
}

func TestSixColorSingleVertex(t *testing.T) {
	colors, err := SixColor(map[int][]int{0: nil})
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 0}, colors)
}

func TestSixColorEmptyGraph(t *testing.T) {
	colors, err := SixColor(map[int][]int{})
	require.NoError(t, err)
	assert.Empty(t, colors)
}

func TestSixColorIsDeterministic(t *testing.T) {
	graph := gridGraph(5, 5)

	first, err := SixColor(graph)
	require.NoError(t, err)
	second, err := SixColor(graph)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// A complete graph on 7 vertices has minimum degree 6 everywhere, violating
// the six-color theorem's precondition (it isn't planar).
func TestSixColorRejectsNonPlanarGraph(t *testing.T) {
	graph := make(map[int][]int)
	for i := 0; i < 7; i++ {
		for j := 0; j < 7; j++ {
			if i != j {
				graph[i] = append(graph[i], j)
			}
		}
	}

	_, err := SixColor(graph)
	assert.ErrorIs(t, err, ErrMustBePlanar)
}
