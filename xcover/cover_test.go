package xcover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkSnapshot captures every up/down/left/right pointer and column length
// in the matrix, so two snapshots can be compared for bit-identical
// equality -- the central dancing-links reversibility property.
type linkSnapshot struct {
	headerLinks map[string][4]*node
	headerLens  map[string]int
	nodeLinks   [][4]*node
}

func snapshot(m *Matrix) linkSnapshot {
	s := linkSnapshot{
		headerLinks: make(map[string][4]*node),
		headerLens:  make(map[string]int),
		nodeLinks:   make([][4]*node, len(m.arena)),
	}
	for name, col := range m.columns {
		s.headerLinks[name] = [4]*node{col.up, col.down, col.left, col.right}
		s.headerLens[name] = col.length
	}
	for i := range m.arena {
		n := &m.arena[i]
		s.nodeLinks[i] = [4]*node{n.up, n.down, n.left, n.right}
	}
	return s
}

func buildClassicMatrix(t *testing.T) *Matrix {
	t.Helper()
	m, err := Build(
		[]string{"A", "B", "C", "D", "E", "F", "G"},
		nil,
		[]Row{
			{Columns: []string{"C", "E", "F"}, Tag: "r1"},
			{Columns: []string{"A", "D", "G"}, Tag: "r2"},
			{Columns: []string{"B", "C", "F"}, Tag: "r3"},
			{Columns: []string{"A", "D"}, Tag: "r4"},
			{Columns: []string{"B", "G"}, Tag: "r5"},
			{Columns: []string{"D", "E", "G"}, Tag: "r6"},
		},
	)
	require.NoError(t, err)
	return m
}

func TestCoverUncoverIsIdentity(t *testing.T) {
	m := buildClassicMatrix(t)
	before := snapshot(m)

	col, ok := m.Column("C")
	require.True(t, ok)

	m.cover(col)
	m.uncover(col)

	after := snapshot(m)
	assert.Equal(t, before, after)
}

func TestNestedCoverUncoverIsIdentity(t *testing.T) {
	m := buildClassicMatrix(t)
	before := snapshot(m)

	names := []string{"A", "B", "C", "D"}
	var cols []*ColumnHeader
	for _, n := range names {
		col, _ := m.Column(n)
		cols = append(cols, col)
		m.cover(col)
	}
	for i := len(cols) - 1; i >= 0; i-- {
		m.uncover(cols[i])
	}

	after := snapshot(m)
	assert.Equal(t, before, after)
}

func TestUpdatesCounterIsMonotonic(t *testing.T) {
	m := buildClassicMatrix(t)
	col, _ := m.Column("C")

	m.cover(col)
	afterCover := m.Updates()
	assert.Positive(t, afterCover)

	m.uncover(col)
	assert.GreaterOrEqual(t, m.Updates(), afterCover)
}

func TestCover2Uncover2UnsecondRestoresLengths(t *testing.T) {
	m := buildClassicMatrix(t)
	lengthsBefore := make(map[string]int)
	for name, col := range m.columns {
		lengthsBefore[name] = col.length
	}

	col, _ := m.Column("D")
	m.idlxSeconded = nil
	m.idlxBlocked = nil
	m.cover2(col)

	// Only the columns cover2 was called on directly get a matching
	// uncover2; columns seconded only as a side effect of row-blocking are
	// restored to the active list by unsecond alone.
	m.uncover2(col)
	m.unsecond()

	for name, col := range m.columns {
		assert.Equal(t, lengthsBefore[name], col.length, "column %s length not restored", name)
	}
	for name, col := range m.columns {
		assert.False(t, col.seconded, "column %s still marked seconded", name)
	}
}
