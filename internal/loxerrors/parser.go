package loxerrors

import (
	"errors"
	"fmt"

	"github.com/lox-lang/lox/internal/token"
)

var ErrParseUnexpectedEndOfInput = errors.New("Unexpected end of input")

func ErrParseExpectedTokenError(kind token.Type) error {
	return fmt.Errorf("Expected token: %s", kind)
}

func ErrParseUnexpectedTokenError(lexeme string) error {
	return fmt.Errorf("Unexpected token '%s'", lexeme)
}

func NewParseError(tok *token.Token, cause error) error {
	return &ParserError{tok: tok, cause: cause}
}

// ParserError is a compile-time diagnostic produced by the parser. The token
// is the one believed responsible, used for source coordinates.
type ParserError struct {
	tok   *token.Token
	cause error
}

// Error implements error.
func (p *ParserError) Error() string {
	if p.tok == nil {
		return p.cause.Error()
	}
	return fmt.Sprintf("%v at %s", p.cause, p.tok.Coordinate)
}

func (p *ParserError) Unwrap() error {
	return p.cause
}

var _ error = (*ParserError)(nil)
var _ unwrapInterface = (*ParserError)(nil)
