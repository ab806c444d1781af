// Command kenconvert converts every .ken puzzle file in a source directory
// to the colored, converted format in a destination directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/kdlx/xcover/kenfile"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <indir> <outdir>\n", os.Args[0])
		os.Exit(2)
	}
	indir, outdir := os.Args[1], os.Args[2]

	if err := convertAll(indir, outdir); err != nil {
		fmt.Println(color.HiRedString("error: %v", err))
		os.Exit(1)
	}
}

func convertAll(indir, outdir string) error {
	matches, err := filepath.Glob(filepath.Join(indir, "*.ken"))
	if err != nil {
		return fmt.Errorf("globbing %s: %w", indir, err)
	}

	for _, path := range matches {
		name := filepath.Base(path)
		if err := convertOne(path, filepath.Join(outdir, name), name); err != nil {
			fmt.Printf("%s %s: %v\n", color.HiRedString("✗"), name, err)
			continue
		}
		fmt.Printf("%s %s\n", color.HiGreenString("✓"), name)
	}
	return nil
}

func convertOne(inPath, outPath, name string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", inPath, err)
	}
	defer in.Close()

	p, err := kenfile.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer out.Close()

	if err := kenfile.WriteConverted(out, p, name, time.Now()); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}
