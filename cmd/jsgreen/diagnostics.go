package main

import (
	"fmt"
	"io"
	"strings"

	"jsgreen/internal/diag"
	"jsgreen/internal/diagfmt"
	"jsgreen/internal/source"
)

// printDiagnostics writes bag in the chosen format. --quiet keeps errors only.
func printDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, format string) error {
	if bag == nil || bag.Len() == 0 {
		return nil
	}
	if current.quiet {
		bag = bag.Filter(diag.SevError)
	}
	switch format {
	case "", "pretty":
		diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     current.color,
			Context:   1,
			ShowNotes: true,
			ShowFixes: true,
			PathMode:  current.pathMode,
			BaseDir:   current.baseDir,
		})
	case "short":
		if lines := diag.Lines(bag.Items(), fs, diag.LinesOptions{BaseDir: current.baseDir, Notes: true}); len(lines) > 0 {
			fmt.Fprintln(w, strings.Join(lines, "\n"))
		}
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			IncludeFixes:     true,
			PathMode:         current.pathMode,
			BaseDir:          current.baseDir,
		})
	default:
		return fmt.Errorf("unknown diagnostics format %q (expected pretty|short|json)", format)
	}
	if n := bag.Dropped(); n > 0 && !current.quiet {
		fmt.Fprintf(w, "... %d more diagnostics not shown (raise --max-diagnostics)\n", n)
	}
	return nil
}
