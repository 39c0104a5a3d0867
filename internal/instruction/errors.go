package instruction

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperator is returned when a token does not start with one of `+ - * /`.
	ErrInvalidOperator = errors.New("not a valid operation (should start with + - * /)")
	// ErrInvalidOperand is returned when the text after the operator is not a finite number.
	ErrInvalidOperand = errors.New("unable to parse operation value")
)

// ParseError describes a token that could not be parsed. It unwraps to
// ErrInvalidOperator or ErrInvalidOperand.
type ParseError struct {
	Token string
	Err   error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid operation %q: %v", e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
