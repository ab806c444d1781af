package xcover

import "time"

// Solver is the public entry point: a Matrix plus the options that govern
// how Solve behaves (IDLX preprocessing, cancellation).
type Solver struct {
	matrix  *Matrix
	opts    *Options
	idlxRan bool
}

// NewSolver builds the exact-cover matrix and returns a Solver ready to
// run. opts may be nil, which disables both IDLX and cancellation.
func NewSolver(primary, secondary []string, rows []Row, opts *Options) (*Solver, error) {
	m, err := Build(primary, secondary, rows)
	if err != nil {
		return nil, err
	}
	return &Solver{matrix: m, opts: opts}, nil
}

// Matrix exposes the underlying matrix for callers that want direct access
// to column/row introspection (ActiveColumns, ColumnRows, Updates, ...).
func (s *Solver) Matrix() *Matrix { return s.matrix }

// Solve runs Algorithm X in the given Mode. If Options.Predicate is set,
// the IDLX preprocessing pass runs once, the first time Solve is called,
// before the real search begins -- IDLX's row deletions are permanent, so
// running it more than once on the same Solver would be a no-op at best
// and is guarded against here.
func (s *Solver) Solve(mode Mode) Result {
	start := time.Now()

	if !s.idlxRan {
		s.matrix.runIDLX(s.opts)
		s.idlxRan = true
	}

	solutions, cancelled := s.matrix.backtrack(mode, s.opts.cancel())

	status := StatusComplete
	if cancelled {
		status = StatusCancelled
	}

	return Result{
		Solutions: solutions,
		Count:     len(solutions),
		Elapsed:   time.Since(start),
		Updates:   s.matrix.Updates(),
		Status:    status,
	}
}

// SolutionNames substitutes each row id in solution with its caller-supplied
// tag, performing the symbolic-name lookup only at this reporting boundary
// so the search hot path never touches strings.
func (s *Solver) SolutionNames(solution []int) []string {
	names := make([]string, len(solution))
	for i, rowID := range solution {
		names[i] = s.matrix.RowTag(rowID)
	}
	return names
}
