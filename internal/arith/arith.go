package arith

// Add returns a + b, wrapping on overflow.
func Add(a, b int32) int32 {
	return a + b
}

// Subtract returns a - b, wrapping on overflow.
func Subtract(a, b int32) int32 {
	return a - b
}

// Multiply returns a * b, wrapping on overflow.
func Multiply(a, b int32) int32 {
	return a * b
}

// Divide returns the quotient a / b truncated toward zero.
//
// A zero divisor yields (0, *Error) with code ErrCodeDivisionByZero.
// math.MinInt32 / -1 wraps to math.MinInt32.
func Divide(a, b int32) (int32, error) {
	if b == 0 {
		return 0, newDivisionByZero(OpDivide, a, b)
	}
	return a / b, nil
}

// Modulo returns the remainder of a / b. The sign follows the dividend.
//
// A zero divisor yields (0, *Error) with code ErrCodeDivisionByZero.
func Modulo(a, b int32) (int32, error) {
	if b == 0 {
		return 0, newDivisionByZero(OpModulo, a, b)
	}
	return a % b, nil
}
