package demo

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/intcalc/internal/arith"
	"github.com/roach88/intcalc/internal/canonical"
)

// Diagnostic returns the console message for a failed step.
func Diagnostic(err error) string {
	var ae *arith.Error
	if errors.As(err, &ae) && ae.Code == arith.ErrCodeDivisionByZero {
		if ae.Op == arith.OpModulo {
			return "Error: Division by zero in modulo operation!"
		}
		return "Error: Division by zero!"
	}
	return "Error: " + err.Error()
}

// RenderText writes the console transcript of r to w.
//
// Sections after the first are preceded by a blank line, and titled sections
// by "<title>:". A failed step prints its diagnostic, then its result line
// with the 0 placeholder.
func RenderText(w io.Writer, r *Report) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, r.Banner)

	section := -1
	for _, e := range r.Entries {
		if e.Section != section {
			if section >= 0 {
				buf.WriteByte('\n')
			}
			section = e.Section
			if e.Title != "" {
				fmt.Fprintf(&buf, "%s:\n", e.Title)
			}
		}
		if e.Failed() {
			fmt.Fprintln(&buf, Diagnostic(e.Err))
		}
		fmt.Fprintf(&buf, "%d %s %d = %d\n", e.A, e.Op.Symbol(), e.B, e.Result)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Canonical returns the report as canonical JSON.
func (r *Report) Canonical() ([]byte, error) {
	entries := make([]any, len(r.Entries))
	for i, e := range r.Entries {
		m := map[string]any{
			"seq":     e.Seq,
			"section": e.Section,
			"op":      string(e.Op),
			"symbol":  e.Op.Symbol(),
			"a":       e.A,
			"b":       e.B,
			"result":  e.Result,
		}
		if e.Title != "" {
			m["title"] = e.Title
		}
		if e.Failed() {
			m["error"] = errorCode(e.Err)
		}
		entries[i] = m
	}

	return canonical.Marshal(map[string]any{
		"run_id":  r.RunID,
		"banner":  r.Banner,
		"entries": entries,
	})
}

func errorCode(err error) string {
	var ae *arith.Error
	if errors.As(err, &ae) {
		return string(ae.Code)
	}
	return err.Error()
}
