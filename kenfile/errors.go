package kenfile

import "fmt"

var (
	// ErrMissingDim is returned when a .ken file has no "dim" line.
	ErrMissingDim = fmt.Errorf("kenfile: missing dim line")
	// ErrMissingSolution is returned when a .ken file has no "Solution" marker.
	ErrMissingSolution = fmt.Errorf("kenfile: missing Solution marker")
)

// SyntaxError reports a malformed line, carrying the 1-based line number for
// the caller to surface in a diagnostic.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("kenfile: line %d: %s", e.Line, e.Msg)
}
