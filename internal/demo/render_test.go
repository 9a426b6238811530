package demo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/intcalc/internal/arith"
)

// The golden transcript lives in testdata/golden. Regenerate with:
//
//	go test ./internal/demo -run TestRenderText_Golden -update
func TestRenderText_Golden(t *testing.T) {
	report := runDefault(t)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, report))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "default_transcript", buf.Bytes())
}

func TestRenderText_Lines(t *testing.T) {
	report := runDefault(t)

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, report))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"Simple Calculator",
		"10 + 5 = 15",
		"10 - 5 = 5",
		"10 * 5 = 50",
		"10 / 5 = 2",
		"10 % 5 = 0",
		"",
		"Testing error cases:",
		"Error: Division by zero!",
		"10 / 0 = 0",
		"Error: Division by zero in modulo operation!",
		"10 % 0 = 0",
	}, lines)
}

func TestRenderText_TitledFirstSection(t *testing.T) {
	report := &Report{
		Banner: "B",
		Entries: []Entry{
			{Seq: 1, Section: 0, Title: "First", Op: arith.OpAdd, A: 1, B: 2, Result: 3},
			{Seq: 2, Section: 1, Op: arith.OpMultiply, A: -2, B: 3, Result: -6},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, RenderText(&buf, report))
	assert.Equal(t, "B\nFirst:\n1 + 2 = 3\n\n-2 * 3 = -6\n", buf.String())
}

func TestDiagnostic(t *testing.T) {
	_, divErr := arith.Divide(10, 0)
	_, modErr := arith.Modulo(10, 0)

	assert.Equal(t, "Error: Division by zero!", Diagnostic(divErr))
	assert.Equal(t, "Error: Division by zero in modulo operation!", Diagnostic(modErr))
	assert.Equal(t, "Error: boom", Diagnostic(errors.New("boom")))
}

func TestReport_Canonical(t *testing.T) {
	report := runDefault(t)

	got, err := report.Canonical()
	require.NoError(t, err)

	want := `{"banner":"Simple Calculator","entries":[` +
		`{"a":10,"b":5,"op":"add","result":15,"section":0,"seq":1,"symbol":"+"},` +
		`{"a":10,"b":5,"op":"subtract","result":5,"section":0,"seq":2,"symbol":"-"},` +
		`{"a":10,"b":5,"op":"multiply","result":50,"section":0,"seq":3,"symbol":"*"},` +
		`{"a":10,"b":5,"op":"divide","result":2,"section":0,"seq":4,"symbol":"/"},` +
		`{"a":10,"b":5,"op":"modulo","result":0,"section":0,"seq":5,"symbol":"%"},` +
		`{"a":10,"b":0,"error":"DIVISION_BY_ZERO","op":"divide","result":0,"section":1,"seq":6,"symbol":"/","title":"Testing error cases"},` +
		`{"a":10,"b":0,"error":"DIVISION_BY_ZERO","op":"modulo","result":0,"section":1,"seq":7,"symbol":"%","title":"Testing error cases"}` +
		`],"run_id":"run-test-001"}`
	assert.Equal(t, want, string(got))
}
