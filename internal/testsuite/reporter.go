package testsuite

import (
	"fmt"
	"io"
)

// TAPReporter emits a TAP stream: a "1..N" plan line, one
// "ok"/"not ok" line per case, and "#"-prefixed diagnostic comments.
type TAPReporter struct {
	w     io.Writer
	count int
	color bool
}

// NewTAPReporter returns a reporter writing to w. When color is true,
// pass/fail lines are wrapped in ANSI color; callers should only set
// this when the destination is a terminal.
func NewTAPReporter(w io.Writer, color bool) *TAPReporter {
	return &TAPReporter{w: w, color: color}
}

// Plan writes the "1..N" test plan line.
func (r *TAPReporter) Plan(n int) {
	fmt.Fprintf(r.w, "1..%d\n", n)
}

// File writes a "# <path>" comment before a file's cases.
func (r *TAPReporter) File(path string) {
	fmt.Fprintf(r.w, "# %s\n", path)
}

func (r *TAPReporter) colorize(code, s string) string {
	if !r.color {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Case writes one case's result line(s).
func (r *TAPReporter) Case(result Result) {
	r.count++
	switch result.Outcome {
	case Pass:
		fmt.Fprintf(r.w, "%s %d - %s\n", r.colorize("32", "ok"), r.count, result.Case.Name)
	case NotImplemented:
		fmt.Fprintf(r.w, "%s %d - NIY %s\n", r.colorize("32", "ok"), r.count, result.Case.Name)
	case Fail:
		fmt.Fprintf(r.w, "%s %d - %s\n", r.colorize("31", "not ok"), r.count, result.Case.Name)
		if result.Diagnostic != "" {
			fmt.Fprintf(r.w, "# %s\n", result.Diagnostic)
		}
	}
}
