package demo

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	"gopkg.in/yaml.v3"

	"github.com/roach88/intcalc/internal/arith"
)

//go:embed demo.yaml
var defaultScript []byte

//go:embed schema.cue
var schemaCUE string

// Script describes a demonstration run.
// The json tags name the fields for CUE schema validation.
type Script struct {
	// Banner is printed as the first line of the transcript.
	Banner string `yaml:"banner" json:"banner"`

	// Operands maps operand names to values.
	Operands map[string]int32 `yaml:"operands" json:"operands"`

	// Sections are executed in order.
	Sections []Section `yaml:"sections" json:"sections"`
}

// Section groups steps under an optional title.
type Section struct {
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	Steps []Step `yaml:"steps" json:"steps"`
}

// Step applies Op to the operands named LHS and RHS.
type Step struct {
	Op  arith.Op `yaml:"op" json:"op"`
	LHS string   `yaml:"lhs" json:"lhs"`
	RHS string   `yaml:"rhs" json:"rhs"`
}

// ScriptError reports an invalid script.
type ScriptError struct {
	Field   string
	Message string
	Pos     token.Pos // schema position, if known
}

func (e *ScriptError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// DefaultScript returns the embedded demonstration script.
func DefaultScript() (*Script, error) {
	return LoadScript(defaultScript)
}

// LoadScript decodes and validates a YAML script.
// Unknown fields, schema violations and dangling operand references are errors.
func LoadScript(data []byte) (*Script, error) {
	var s Script
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, &ScriptError{Field: "yaml", Message: err.Error()}
	}

	if err := checkSchema(&s); err != nil {
		return nil, err
	}
	if err := checkReferences(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// checkSchema unifies the script with #Script from schema.cue.
func checkSchema(s *Script) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return formatCUEError(err)
	}

	def := schema.LookupPath(cue.ParsePath("#Script"))
	val := ctx.Encode(s)
	if err := val.Err(); err != nil {
		return formatCUEError(err)
	}

	if err := def.Unify(val).Validate(cue.Concrete(true)); err != nil {
		return formatCUEError(err)
	}
	return nil
}

func checkReferences(s *Script) error {
	for i, sec := range s.Sections {
		for j, step := range sec.Steps {
			for _, ref := range []struct{ field, name string }{
				{"lhs", step.LHS},
				{"rhs", step.RHS},
			} {
				if _, ok := s.Operands[ref.name]; !ok {
					return &ScriptError{
						Field:   fmt.Sprintf("sections[%d].steps[%d].%s", i, j, ref.field),
						Message: fmt.Sprintf("undefined operand %q", ref.name),
					}
				}
			}
		}
	}
	return nil
}

// formatCUEError keeps the first CUE error and its position.
func formatCUEError(err error) error {
	errs := errors.Errors(err)
	if len(errs) == 0 {
		return &ScriptError{Field: "schema", Message: err.Error()}
	}

	first := errs[0]
	field := "schema"
	if path := first.Path(); len(path) > 0 {
		field = strings.Join(path, ".")
	}

	se := &ScriptError{Field: field, Message: first.Error()}
	if positions := errors.Positions(first); len(positions) > 0 {
		se.Pos = positions[0]
	}
	return se
}
