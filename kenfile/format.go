package kenfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kdlx/xcover/cagecolor"
)

// CellPos is a 1-based (row, col) grid coordinate.
type CellPos struct {
	Row, Col int
}

// Cage is one arithmetic cage: an operator, its target value, and the cells
// it covers. Color is the trailing color Parse read from an already
// converted line, or -1 if the line had none, until ColorCages assigns it.
type Cage struct {
	Op    string
	Value int
	Cells []CellPos
	Color int
}

// Puzzle is a parsed .ken file: its grid dimension, cage list, and solved
// digit grid.
type Puzzle struct {
	Dim      int
	Cages    []Cage
	Solution map[CellPos]int
}

// Parse reads the .ken text format: a "dim N" line, one or more cage lines
// of the form "OP value [ cell... ]" (each cell a two-digit row/col code,
// optionally followed by a trailing color if the file was already
// converted), a "Solution" marker, and N lines of N right-justified
// two-column integers. Lines are trimmed of anything from the first '#'
// onward before parsing.
func Parse(r io.Reader) (*Puzzle, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	p := &Puzzle{Dim: -1, Solution: make(map[CellPos]int)}
	lineNum := 0
	sawSolutionMarker := false
	var solutionLines []string

	for scanner.Scan() {
		lineNum++
		line := stripComment(scanner.Text())
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if sawSolutionMarker {
			solutionLines = append(solutionLines, line)
			continue
		}

		switch {
		case fields[0] == "dim":
			if len(fields) < 2 {
				return nil, &SyntaxError{Line: lineNum, Msg: "dim line missing value"}
			}
			dim, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &SyntaxError{Line: lineNum, Msg: "dim value is not an integer"}
			}
			p.Dim = dim

		case fields[0] == "Solution":
			sawSolutionMarker = true

		default:
			cage, err := parseCageLine(fields, lineNum)
			if err != nil {
				return nil, err
			}
			p.Cages = append(p.Cages, cage)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("kenfile: reading input: %w", err)
	}

	if p.Dim < 0 {
		return nil, ErrMissingDim
	}
	if !sawSolutionMarker {
		return nil, ErrMissingSolution
	}

	if err := p.parseSolutionGrid(solutionLines); err != nil {
		return nil, err
	}
	return p, nil
}

func stripComment(line string) string {
	if idx := strings.IndexByte(line, '#'); idx >= 0 {
		return line[:idx]
	}
	return line
}

// parseCageLine parses "OP value [ cell... ] [color]". The cell tokens and
// the optional trailing color are whitespace-separated, matching how
// WriteConverted emits a cage line.
func parseCageLine(fields []string, lineNum int) (Cage, error) {
	if len(fields) < 4 || fields[2] != "[" {
		return Cage{}, &SyntaxError{Line: lineNum, Msg: "malformed cage line"}
	}

	value, err := strconv.Atoi(fields[1])
	if err != nil {
		return Cage{}, &SyntaxError{Line: lineNum, Msg: "cage value is not an integer"}
	}
	cage := Cage{Op: fields[0], Value: value, Color: -1}

	i := 3
	for ; i < len(fields) && fields[i] != "]"; i++ {
		cell, err := parseCellToken(fields[i])
		if err != nil {
			return Cage{}, &SyntaxError{Line: lineNum, Msg: err.Error()}
		}
		cage.Cells = append(cage.Cells, cell)
	}
	if i == len(fields) {
		return Cage{}, &SyntaxError{Line: lineNum, Msg: "cage line missing closing ]"}
	}

	if i+1 < len(fields) {
		color, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return Cage{}, &SyntaxError{Line: lineNum, Msg: "cage color is not an integer"}
		}
		cage.Color = color
	}

	return cage, nil
}

// parseCellToken decodes a two-digit "RC" cell code into its row and column.
func parseCellToken(tok string) (CellPos, error) {
	if len(tok) != 2 {
		return CellPos{}, fmt.Errorf("cell token %q is not a 2-digit code", tok)
	}
	row, err := strconv.Atoi(tok[0:1])
	if err != nil {
		return CellPos{}, fmt.Errorf("cell token %q has a non-digit row", tok)
	}
	col, err := strconv.Atoi(tok[1:2])
	if err != nil {
		return CellPos{}, fmt.Errorf("cell token %q has a non-digit column", tok)
	}
	return CellPos{Row: row, Col: col}, nil
}

// parseSolutionGrid reads p.Dim lines of p.Dim fixed-width two-character
// fields into p.Solution.
func (p *Puzzle) parseSolutionGrid(lines []string) error {
	if len(lines) < p.Dim {
		return fmt.Errorf("kenfile: solution grid has %d lines, want %d", len(lines), p.Dim)
	}
	for r := 0; r < p.Dim; r++ {
		line := lines[r]
		for c := 0; c < p.Dim; c++ {
			start := c * 2
			if start+2 > len(line) {
				return fmt.Errorf("kenfile: solution row %d is too short", r+1)
			}
			val, err := strconv.Atoi(strings.TrimSpace(line[start : start+2]))
			if err != nil {
				return fmt.Errorf("kenfile: solution row %d, col %d is not an integer: %w", r+1, c+1, err)
			}
			p.Solution[CellPos{Row: r + 1, Col: c + 1}] = val
		}
	}
	return nil
}

// AdjacencyFromCages builds the cage adjacency graph: two cages are
// adjacent iff some cell of one is orthogonally adjacent to some cell of
// the other.
func (p *Puzzle) AdjacencyFromCages() map[int][]int {
	owner := make(map[CellPos]int)
	for idx, cage := range p.Cages {
		for _, cell := range cage.Cells {
			owner[cell] = idx
		}
	}

	adjacency := make(map[int][]int, len(p.Cages))
	for idx := range p.Cages {
		adjacency[idx] = nil
	}

	seen := make(map[[2]int]bool)
	for cell, idx := range owner {
		for _, neighbor := range []CellPos{
			{Row: cell.Row + 1, Col: cell.Col},
			{Row: cell.Row - 1, Col: cell.Col},
			{Row: cell.Row, Col: cell.Col + 1},
			{Row: cell.Row, Col: cell.Col - 1},
		} {
			otherIdx, ok := owner[neighbor]
			if !ok || otherIdx == idx {
				continue
			}
			key := [2]int{idx, otherIdx}
			if seen[key] {
				continue
			}
			seen[key] = true
			adjacency[idx] = append(adjacency[idx], otherIdx)
		}
	}
	return adjacency
}

// ColorCages six-colors the cage adjacency graph and returns one color per
// cage, in cage order, additionally recording each color on its Cage.
func (p *Puzzle) ColorCages() ([]int, error) {
	colors, err := cagecolor.SixColor(p.AdjacencyFromCages())
	if err != nil {
		return nil, err
	}

	result := make([]int, len(p.Cages))
	for idx := range p.Cages {
		result[idx] = colors[idx]
		p.Cages[idx].Color = colors[idx]
	}
	return result, nil
}
