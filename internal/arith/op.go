package arith

import "fmt"

// Op names one of the calculator's binary operations.
type Op string

const (
	OpAdd      Op = "add"
	OpSubtract Op = "subtract"
	OpMultiply Op = "multiply"
	OpDivide   Op = "divide"
	OpModulo   Op = "modulo"
)

// Ops lists every operation in declaration order.
var Ops = []Op{OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo}

var symbols = map[Op]string{
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
	OpModulo:   "%",
}

// ParseOp returns the Op with the given name.
func ParseOp(name string) (Op, error) {
	op := Op(name)
	if _, ok := symbols[op]; !ok {
		return "", fmt.Errorf("unknown operation %q: must be one of %v", name, Ops)
	}
	return op, nil
}

// Symbol returns the conventional infix symbol, or "?" for an unknown Op.
func (o Op) Symbol() string {
	if s, ok := symbols[o]; ok {
		return s
	}
	return "?"
}

func (o Op) String() string {
	return string(o)
}

// Apply runs the operation on a and b.
// Only OpDivide and OpModulo can fail, and only on a zero divisor.
func (o Op) Apply(a, b int32) (int32, error) {
	switch o {
	case OpAdd:
		return Add(a, b), nil
	case OpSubtract:
		return Subtract(a, b), nil
	case OpMultiply:
		return Multiply(a, b), nil
	case OpDivide:
		return Divide(a, b)
	case OpModulo:
		return Modulo(a, b)
	default:
		return 0, fmt.Errorf("unknown operation %q", string(o))
	}
}
