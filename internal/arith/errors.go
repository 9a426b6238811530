package arith

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes arithmetic errors.
type ErrorCode string

const (
	// ErrCodeDivisionByZero indicates a divide or modulo with a zero divisor.
	ErrCodeDivisionByZero ErrorCode = "DIVISION_BY_ZERO"
)

// Error reports an operation that could not produce a result.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op is the operation that failed.
	Op Op

	// A and B are the operands as passed.
	A, B int32
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s(%d, %d)", e.Code, e.Op, e.A, e.B)
}

func newDivisionByZero(op Op, a, b int32) *Error {
	return &Error{Code: ErrCodeDivisionByZero, Op: op, A: a, B: b}
}

// IsDivisionByZero returns true if err is, or wraps, a division-by-zero Error.
func IsDivisionByZero(err error) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == ErrCodeDivisionByZero
	}
	return false
}
