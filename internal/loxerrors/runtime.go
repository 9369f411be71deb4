package loxerrors

import (
	"errors"
	"fmt"

	"github.com/lox-lang/lox/internal/token"
)

var (
	ErrRuntimeOperandMustBeNumber   = errors.New("Operand must be a number")
	ErrRuntimeOperandsMustBeNumbers = errors.New("Operands must be numbers")
	ErrRuntimeUndefinedVariable     = errors.New("Undefined variable")
)

func ErrRuntimeUndefinedVariableError(name string) error {
	return fmt.Errorf("%w '%s'", ErrRuntimeUndefinedVariable, name)
}

func NewRuntimeError(tok *token.Token, cause error) error {
	return &RuntimeError{tok: tok, cause: cause}
}

// RuntimeError is a diagnostic raised by the evaluator at the first
// offending expression. The token supplies the source coordinate.
type RuntimeError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (r *RuntimeError) Error() string {
	if r.tok == nil {
		return r.cause.Error()
	}
	return fmt.Sprintf("%v at %s", r.cause, r.tok.Coordinate)
}

func (r *RuntimeError) Unwrap() error {
	return r.cause
}

var _ error = (*RuntimeError)(nil)
var _ unwrapInterface = (*RuntimeError)(nil)
