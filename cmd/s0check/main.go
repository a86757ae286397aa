// Command s0check takes one or more directory paths, walks each for
// `.yaml` fixtures, runs the S₀ loader against every
// `!swanson!*`-tagged test case they contain, and exits 0 iff every
// case conformed to its declared tag.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/swansonlang/s0/internal/testsuite"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: s0check <dir>...")
		os.Exit(1)
	}
	roots := os.Args[1:]

	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	reporter := testsuite.NewTAPReporter(os.Stdout, color)

	// The plan line needs the case count up front, so run everything
	// first and print from the buffered summary.
	summary, err := testsuite.RunDirectories(roots, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	reporter.Plan(len(summary.Results))
	var lastFile string
	for _, r := range summary.Results {
		if r.Case.FilePath != lastFile {
			reporter.File(r.Case.FilePath)
			lastFile = r.Case.FilePath
		}
		reporter.Case(r)
	}

	if !summary.Passed() {
		os.Exit(1)
	}
}
