package calc

import (
	"errors"
	"fmt"
)

// Errors reported for committed lines. None of them is fatal.
var (
	// ErrSyntax indicates the line matches no statement form.
	ErrSyntax = errors.New("syntax error")

	// ErrFunctionNotFound indicates a call or solve names an undefined function.
	ErrFunctionNotFound = errors.New("function not found")

	// ErrSolve indicates the function is not linear or has no unique solution.
	ErrSolve = errors.New("cannot solve")

	// ErrParse indicates the body is not a well-formed arithmetic expression.
	ErrParse = errors.New("parse error")

	// ErrDivisionByZero indicates a division by zero during evaluation.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrNotFinite indicates the evaluation produced NaN or an infinity.
	ErrNotFinite = errors.New("result is not a finite number")
)

// LineError ties a failure to the function it concerns.
type LineError struct {
	// Name is the function name, empty for syntax errors.
	Name string
	// Err is one of the sentinel errors above, possibly wrapped with detail.
	Err error
}

func (e *LineError) Error() string {
	if e.Name == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
