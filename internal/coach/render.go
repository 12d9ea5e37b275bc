package coach

import (
	"fmt"
	"io"
)

// WriteText renders a note as plain text.
func WriteText(w io.Writer, n *Note) error {
	ew := &errWriter{w: w}

	ew.printf("%s\n\n%s\n", n.Headline, n.Summary)
	ew.list("Strengths", n.Strengths, false)
	ew.list("Focus areas", n.FocusAreas, false)
	ew.list("First week", n.FirstWeekPlan, true)
	if n.Model != "" {
		ew.printf("\n(%s)\n", n.Model)
	}
	return ew.err
}

// errWriter keeps the first write error so rendering reads top to bottom.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) list(title string, items []string, numbered bool) {
	if len(items) == 0 {
		return
	}
	e.printf("\n%s:\n", title)
	for i, it := range items {
		if numbered {
			e.printf("  %d. %s\n", i+1, it)
		} else {
			e.printf("  - %s\n", it)
		}
	}
}
