package kenfile

import (
	"fmt"
	"io"
	"time"
)

// timestampLayout renders "%A, %d %B %Y %H:%M:%S"-style headers as a fixed
// reference-time layout, which (unlike strftime) never consults the OS
// locale for month or weekday names, making the header inherently
// locale-independent.
const timestampLayout = "Monday, 02 January 2006 15:04:05"

// WriteConverted writes p in the converted .ken format: a filename comment,
// a locale-independent generation-timestamp comment, the dimension, one
// cage line per cage with its six-coloring color appended, and the solution
// grid. ColorCages is called as part of this, so an unplanar cage graph
// surfaces cagecolor.ErrMustBePlanar here.
func WriteConverted(w io.Writer, p *Puzzle, filename string, generatedAt time.Time) error {
	if _, err := fmt.Fprintf(w, "# %s\n", filename); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# %s\n", generatedAt.Format(timestampLayout)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "dim %d\n", p.Dim); err != nil {
		return err
	}

	colors, err := p.ColorCages()
	if err != nil {
		return err
	}

	for idx, cage := range p.Cages {
		if _, err := fmt.Fprintf(w, "%s %d [ ", cage.Op, cage.Value); err != nil {
			return err
		}
		for _, cell := range cage.Cells {
			if _, err := fmt.Fprintf(w, "%d%d ", cell.Row, cell.Col); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "] %d\n", colors[idx]); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "#\nSolution\n"); err != nil {
		return err
	}
	for r := 1; r <= p.Dim; r++ {
		for c := 1; c <= p.Dim; c++ {
			if _, err := fmt.Fprintf(w, "%2d", p.Solution[CellPos{Row: r, Col: c}]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
