package xcover

// secondedEntry records a column's position in the active-column list at
// the moment cover2 temporarily demoted it to secondary, so unsecond can
// restore it later. Owned transiently by the IDLX driver for the duration
// of one preprocessing pass.
type secondedEntry struct {
	col         *ColumnHeader
	left, right *node
}

// cover removes col from the active-column list and blocks every row that
// has a node in col, by detaching the rest of each such row's nodes from
// their own columns. col itself, and the row-representative nodes, are left
// in place so that uncover can retrace the same traversal in reverse.
func (m *Matrix) cover(col *ColumnHeader) {
	col.left.right = col.right
	col.right.left = col.left

	for r := col.down; r != &col.node; r = r.down {
		for n := r.right; n != r; n = n.right {
			n.up.down = n.down
			n.down.up = n.up
			n.column.length--
			m.updates++
		}
	}
}

// uncover is the strict inverse of cover: for any sequence of covers
// followed by the same columns uncovered in reverse order, the matrix is
// restored bit-identically.
func (m *Matrix) uncover(col *ColumnHeader) {
	for r := col.up; r != &col.node; r = r.up {
		for n := r.left; n != r; n = n.left {
			n.column.length++
			n.up.down = n
			n.down.up = n
		}
	}

	col.left.right = &col.node
	col.right.left = &col.node
}

// second removes col from whichever list it's currently threaded into (the
// active-column list, if it was primary and not yet seconded) and records
// its former neighbors so unsecond can restore it. Guarded so a column is
// never seconded twice in the same IDLX pass.
func (m *Matrix) second(col *ColumnHeader) {
	if col.seconded {
		return
	}
	left, right := col.left, col.right
	left.right = right
	right.left = left
	col.left = &col.node
	col.right = &col.node
	col.seconded = true
	m.idlxSeconded = append(m.idlxSeconded, secondedEntry{col, left, right})
}

// cover2 is the IDLX variant of cover for a long column. In addition to
// blocking each row the same way cover does, it seconds the owning column
// of every node it detaches -- temporarily removing that column from the
// active list, since (per the algorithm's contract) secondary columns need
// not be covered. Column lengths are not maintained for seconded columns;
// the ordinary cover/uncover bookkeeping never runs on them until unsecond
// restores their position, so a stale length is never observed. Each row
// visited is recorded on the blocked list.
func (m *Matrix) cover2(col *ColumnHeader) {
	m.second(col)

	for r := col.down; r != &col.node; r = r.down {
		m.idlxBlocked = append(m.idlxBlocked, r.row)

		for n := r.right; n != r; n = n.right {
			n.up.down = n.down
			n.down.up = n.up
			m.second(n.column)
			m.updates++
		}
	}
}

// uncover2 undoes only the node detachments cover2 performed, walking the
// column in the opposite direction so nodes are restored in LIFO order. It
// does not restore seconded columns to the active list -- that is
// unsecond's job, once every cover2 in the pass has been undone.
func (m *Matrix) uncover2(col *ColumnHeader) {
	for r := col.up; r != &col.node; r = r.up {
		for n := r.left; n != r; n = n.left {
			n.up.down = n
			n.down.up = n
		}
	}
}

// unsecond pops the seconded stack in LIFO order, restoring each column
// that any cover2 call in the current IDLX pass demoted to secondary.
func (m *Matrix) unsecond() {
	for i := len(m.idlxSeconded) - 1; i >= 0; i-- {
		e := m.idlxSeconded[i]
		e.col.seconded = false
		e.col.left = e.left
		e.col.right = e.right
		e.left.right = &e.col.node
		e.right.left = &e.col.node
	}
	m.idlxSeconded = nil
}
