// Command xcoversolve demonstrates the xcover exact-cover engine: a
// classic tiny instance, one with secondary columns, one tightened by the
// IDLX preprocessor, and a cancelled enumeration over a combinatorially
// large instance.
package main

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/kdlx/xcover/xcover"
)

func main() {
	if !isTerminal(os.Stdout) {
		color.NoColor = true
	}

	fmt.Println(color.HiCyanString("xcover Algorithm X / Dancing Links Demonstration"))
	fmt.Println(color.HiCyanString("================================================="))

	classicExactCover()
	secondaryColumns()
	idlxReduction()
	cancelledEnumeration()
}

func classicExactCover() {
	section("Classic tiny exact cover")

	s, err := xcover.NewSolver(
		[]string{"A", "B", "C", "D", "E", "F", "G"},
		nil,
		[]xcover.Row{
			{Columns: []string{"C", "E", "F"}, Tag: "r1"},
			{Columns: []string{"A", "D", "G"}, Tag: "r2"},
			{Columns: []string{"B", "C", "F"}, Tag: "r3"},
			{Columns: []string{"A", "D"}, Tag: "r4"},
			{Columns: []string{"B", "G"}, Tag: "r5"},
			{Columns: []string{"D", "E", "G"}, Tag: "r6"},
		},
		nil,
	)
	must(err)

	result := s.Solve(xcover.ModeAll)
	reportResult(s, result)
}

func secondaryColumns() {
	section("Secondary columns covered at most once")

	s, err := xcover.NewSolver(
		[]string{"A", "B"},
		[]string{"S"},
		[]xcover.Row{
			{Columns: []string{"A", "S"}, Tag: "r1"},
			{Columns: []string{"B"}, Tag: "r2"},
			{Columns: []string{"A"}, Tag: "r3"},
			{Columns: []string{"B", "S"}, Tag: "r4"},
		},
		nil,
	)
	must(err)

	result := s.Solve(xcover.ModeAll)
	reportResult(s, result)
}

func idlxReduction() {
	section("IDLX preprocessing over a long column")

	rows := []xcover.Row{
		{Columns: []string{"A", "long_0"}, Tag: "r1"},
		{Columns: []string{"B", "C"}, Tag: "r2"},
	}
	for i := 0; i < 400; i++ {
		rows = append(rows, xcover.Row{Columns: []string{"B"}, Tag: "junk"})
	}
	for i := 0; i < 999; i++ {
		rows = append(rows, xcover.Row{Columns: []string{"long_0"}, Tag: "padding"})
	}

	s, err := xcover.NewSolver(
		[]string{"A", "B", "C", "long_0"},
		nil,
		rows,
		&xcover.Options{Predicate: regexp.MustCompile(`^long_`), Bound: 50},
	)
	must(err)

	before := s.Matrix().NumRows()
	result := s.Solve(xcover.ModeAll)
	fmt.Printf("  rows before preprocessing: %s\n", color.HiYellowString("%d", before))
	reportResult(s, result)
}

func cancelledEnumeration() {
	section("Cancellation under a huge solution count")

	// 20 independent binary choices: 2^20 (over one million) solutions from
	// a matrix with only 20 columns and 40 rows.
	primary := make([]string, 20)
	var rows []xcover.Row
	for i := range primary {
		name := fmt.Sprintf("P%d", i)
		primary[i] = name
		rows = append(rows,
			xcover.Row{Columns: []string{name}, Tag: name + "_a"},
			xcover.Row{Columns: []string{name}, Tag: name + "_b"},
		)
	}

	// Cancel enforces a wall-clock budget, the use case the Cancel option
	// exists for -- checked at every backtrack decision point.
	deadline := time.Now().Add(5 * time.Millisecond)
	s, err := xcover.NewSolver(primary, nil, rows, &xcover.Options{
		Cancel: func() bool { return time.Now().After(deadline) },
	})
	must(err)

	result := s.Solve(xcover.ModeAll)
	reportResult(s, result)
}

func section(title string) {
	fmt.Printf("\n%s\n", color.HiBlueString(title))
	fmt.Println(color.HiBlackString("─────────────────────────────────────────────────"))
}

func reportResult(s *xcover.Solver, result xcover.Result) {
	status := color.HiGreenString("Complete")
	if result.Status == xcover.StatusCancelled {
		status = color.HiRedString("Cancelled")
	}
	fmt.Printf("  status: %s, solutions: %s, updates: %d, elapsed: %s\n",
		status, color.HiYellowString("%d", result.Count), result.Updates, result.Elapsed)

	if result.Count > 0 && result.Count <= 3 {
		for _, solution := range result.Solutions {
			fmt.Printf("  solution: %v\n", s.SolutionNames(solution))
		}
	}
}

func must(err error) {
	if err != nil {
		fmt.Println(color.HiRedString("error: %v", err))
		panic(err)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
