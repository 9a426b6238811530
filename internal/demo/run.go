package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/roach88/intcalc/internal/arith"
)

// Report is the outcome of one demonstration run.
type Report struct {
	RunID   string
	Banner  string
	Entries []Entry
}

// Entry records one executed step.
type Entry struct {
	// Seq is the 1-based execution order across the whole run.
	Seq int64

	// Section is the index of the enclosing section; Title is its title.
	Section int
	Title   string

	Op     arith.Op
	A, B   int32
	Result int32

	// Err is the step's *arith.Error, or nil on success.
	// Result is 0 whenever Err is set.
	Err error
}

// Failed reports whether the step produced an error instead of a value.
func (e Entry) Failed() bool {
	return e.Err != nil
}

// Run executes every step of s in order.
//
// Arithmetic errors are recorded on the entry and do not stop the run.
// Run returns an error only for a malformed step or a cancelled context.
func Run(ctx context.Context, s *Script, gen TokenGenerator) (*Report, error) {
	if gen == nil {
		gen = UUIDv7Generator{}
	}

	report := &Report{
		RunID:  gen.Generate(),
		Banner: s.Banner,
	}
	slog.Debug("demonstration started", "run_id", report.RunID, "sections", len(s.Sections))

	var seq int64
	for i, sec := range s.Sections {
		for j, step := range sec.Steps {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			entry, err := runStep(s, step)
			if err != nil {
				return nil, fmt.Errorf("sections[%d].steps[%d]: %w", i, j, err)
			}
			seq++
			entry.Seq = seq
			entry.Section = i
			entry.Title = sec.Title

			if entry.Failed() {
				slog.Debug("step failed", "seq", entry.Seq, "op", entry.Op, "a", entry.A, "b", entry.B, "error", entry.Err)
			} else {
				slog.Debug("step", "seq", entry.Seq, "op", entry.Op, "a", entry.A, "b", entry.B, "result", entry.Result)
			}
			report.Entries = append(report.Entries, entry)
		}
	}

	slog.Debug("demonstration finished", "run_id", report.RunID, "steps", seq)
	return report, nil
}

func runStep(s *Script, step Step) (Entry, error) {
	op, err := arith.ParseOp(string(step.Op))
	if err != nil {
		return Entry{}, err
	}

	a, ok := s.Operands[step.LHS]
	if !ok {
		return Entry{}, fmt.Errorf("undefined operand %q", step.LHS)
	}
	b, ok := s.Operands[step.RHS]
	if !ok {
		return Entry{}, fmt.Errorf("undefined operand %q", step.RHS)
	}

	result, err := op.Apply(a, b)
	var ae *arith.Error
	if err != nil && !errors.As(err, &ae) {
		return Entry{}, err
	}
	return Entry{Op: op, A: a, B: b, Result: result, Err: err}, nil
}
