// Package arith provides the calculator's integer operations.
//
// All operations take and return int32. Addition, subtraction and
// multiplication wrap on overflow using two's-complement arithmetic.
// Division and modulo truncate toward zero and report a zero divisor
// through a typed *Error instead of printing or panicking.
//
// The package performs no I/O; callers decide how to present errors.
package arith
