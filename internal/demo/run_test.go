package demo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/intcalc/internal/arith"
)

func runDefault(t *testing.T) *Report {
	t.Helper()

	s, err := DefaultScript()
	require.NoError(t, err)

	report, err := Run(context.Background(), s, NewFixedGenerator("run-test-001"))
	require.NoError(t, err)
	return report
}

func TestRun_Default(t *testing.T) {
	report := runDefault(t)

	assert.Equal(t, "run-test-001", report.RunID)
	assert.Equal(t, "Simple Calculator", report.Banner)
	require.Len(t, report.Entries, 7)

	want := []struct {
		op      arith.Op
		a, b    int32
		result  int32
		section int
		failed  bool
	}{
		{arith.OpAdd, 10, 5, 15, 0, false},
		{arith.OpSubtract, 10, 5, 5, 0, false},
		{arith.OpMultiply, 10, 5, 50, 0, false},
		{arith.OpDivide, 10, 5, 2, 0, false},
		{arith.OpModulo, 10, 5, 0, 0, false},
		{arith.OpDivide, 10, 0, 0, 1, true},
		{arith.OpModulo, 10, 0, 0, 1, true},
	}

	for i, w := range want {
		e := report.Entries[i]
		assert.Equal(t, int64(i+1), e.Seq, "entry %d seq", i)
		assert.Equal(t, w.op, e.Op, "entry %d op", i)
		assert.Equal(t, w.a, e.A, "entry %d a", i)
		assert.Equal(t, w.b, e.B, "entry %d b", i)
		assert.Equal(t, w.result, e.Result, "entry %d result", i)
		assert.Equal(t, w.section, e.Section, "entry %d section", i)
		assert.Equal(t, w.failed, e.Failed(), "entry %d failed", i)
	}
}

func TestRun_ZeroDivisorDetectableWithoutOutput(t *testing.T) {
	report := runDefault(t)

	// 10 % 5 and 10 / 0 both yield 0; only the error tells them apart.
	mod := report.Entries[4]
	div := report.Entries[5]
	assert.Equal(t, mod.Result, div.Result)
	assert.NoError(t, mod.Err)
	assert.True(t, arith.IsDivisionByZero(div.Err))
	assert.True(t, arith.IsDivisionByZero(report.Entries[6].Err))
}

func TestRun_DefaultGeneratorIsUUIDv7(t *testing.T) {
	s, err := DefaultScript()
	require.NoError(t, err)

	report, err := Run(context.Background(), s, nil)
	require.NoError(t, err)

	id, err := uuid.Parse(report.RunID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestRun_Cancelled(t *testing.T) {
	s, err := DefaultScript()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Run(ctx, s, NewFixedGenerator("run-cancelled"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_MalformedStep(t *testing.T) {
	// Scripts built in code skip LoadScript validation.
	s := &Script{
		Banner:   "x",
		Operands: map[string]int32{"a": 1},
		Sections: []Section{{Steps: []Step{{Op: "power", LHS: "a", RHS: "a"}}}},
	}
	_, err := Run(context.Background(), s, NewFixedGenerator("run-bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sections[0].steps[0]")
	assert.Contains(t, err.Error(), "unknown operation")

	s.Sections[0].Steps[0] = Step{Op: arith.OpAdd, LHS: "a", RHS: "missing"}
	_, err = Run(context.Background(), s, NewFixedGenerator("run-bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `undefined operand "missing"`)
}

func TestFixedGenerator(t *testing.T) {
	gen := NewFixedGenerator("one", "two")
	assert.Equal(t, "one", gen.Generate())
	assert.Equal(t, "two", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
