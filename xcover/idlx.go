package xcover

import (
	"regexp"

	"github.com/kdlx/xcover/internal/collections"
)

// Options configures optional solver behavior: the iterated dancing-links
// (IDLX) preprocessing pass and a cancellation predicate.
type Options struct {
	// Predicate selects which columns are eligible to be treated as "long"
	// during the IDLX pre-pass, by name. A nil Predicate disables IDLX
	// entirely -- the solver degrades to plain Algorithm X with no
	// observable difference except timing.
	Predicate *regexp.Regexp

	// Bound is the minimum column length (exclusive) a Predicate-matching
	// column must exceed to be treated as long. Defaults to 42000 when zero.
	Bound int

	// Cancel, if non-nil, is checked at every backtrack decision point. If
	// it returns true, the search unwinds and Result.Status is
	// StatusCancelled.
	Cancel func() bool
}

const defaultIDLXBound = 42000

func (o *Options) predicate() *regexp.Regexp {
	if o == nil {
		return nil
	}
	return o.Predicate
}

func (o *Options) bound() int {
	if o == nil || o.Bound == 0 {
		return defaultIDLXBound
	}
	return o.Bound
}

func (o *Options) cancel() func() bool {
	if o == nil {
		return nil
	}
	return o.Cancel
}

// longColumns returns the columns matching the predicate whose current
// length exceeds bound, in active-list order.
func (m *Matrix) longColumns(predicate *regexp.Regexp, bound int) []*ColumnHeader {
	var long []*ColumnHeader
	for c := m.root.right; c != &m.root.node; c = c.right {
		if predicate.MatchString(c.column.name) && c.column.length > bound {
			long = append(long, c.column)
		}
	}
	return long
}

// runIDLX performs the iterated-dancing-links preprocessing pass described
// in the IDLX Driver component: it identifies long columns, solves the
// relaxed problem (those columns seconded) to find every row that can
// possibly participate in a solution, permanently deletes every row that
// neither appears in a partial solution nor was blocked while seconding,
// restores the matrix to its pre-pass state, and returns. It is advisory:
// if no columns qualify as long, it is a no-op. It never changes the set of
// solutions the subsequent ordinary search will report.
func (m *Matrix) runIDLX(opts *Options) {
	predicate := opts.predicate()
	if predicate == nil {
		return
	}

	long := m.longColumns(predicate, opts.bound())
	if len(long) == 0 {
		return
	}

	m.idlxSeconded = nil
	m.idlxBlocked = nil

	for _, col := range long {
		m.cover2(col)
	}

	relaxedSolutions, _ := m.backtrack(ModeAll, nil)

	good := collections.NewSet[int]()
	for _, solution := range relaxedSolutions {
		good.Add(solution...)
	}
	blocked := collections.NewSet(m.idlxBlocked...)
	keep := collections.Union(good, blocked)

	for i := len(long) - 1; i >= 0; i-- {
		m.uncover2(long[i])
	}
	m.unsecond()

	for rowID := 0; rowID < len(m.rowFirstNode); rowID++ {
		if !keep.Contains(rowID) {
			m.deleteRow(rowID)
		}
	}
}
