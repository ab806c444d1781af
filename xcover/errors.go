package xcover

import "fmt"

// Sentinel construction errors, returned by Build/NewSolver. These never
// leave the solver in a partial state -- construction either succeeds
// completely or fails before any node is created.
var (
	// ErrEmptyPrimary is returned when no primary columns were supplied.
	ErrEmptyPrimary = fmt.Errorf("xcover: no primary columns")

	// ErrEmptyMatrix is returned when no rows were supplied.
	ErrEmptyMatrix = fmt.Errorf("xcover: no rows")

	// ErrCancelled is reported via Result.Status, not returned as an error,
	// but is exposed so callers can compare against it if they prefer the
	// error-value idiom.
	ErrCancelled = fmt.Errorf("xcover: search cancelled")
)

// UnknownColumnError is returned when a row references a column name that
// does not appear in either the primary or secondary column lists.
type UnknownColumnError struct {
	Name string
}

func (e *UnknownColumnError) Error() string {
	return fmt.Sprintf("xcover: unknown column %q", e.Name)
}

// linkInconsistencyError is not a recoverable condition: it indicates a bug
// in the cover/uncover bookkeeping rather than bad caller input. It is only
// ever raised via panic, and is intentionally unexported -- callers are not
// expected to catch it in normal operation.
type linkInconsistencyError struct {
	Row    int
	Column string
}

func (e *linkInconsistencyError) Error() string {
	return fmt.Sprintf("xcover: link inconsistency at row %d, column %q", e.Row, e.Column)
}

func assertLinked(ok bool, row int, column string) {
	if !ok {
		panic(&linkInconsistencyError{Row: row, Column: column})
	}
}
