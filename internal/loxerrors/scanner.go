package loxerrors

import (
	"errors"
	"fmt"

	"github.com/lox-lang/lox/internal/token"
)

var (
	ErrScanUnexpectedCharacter = errors.New("Unexpected character")
	ErrScanUnterminatedString  = errors.New("Unterminated string")
)

func ErrScanUnexpectedCharacterError(c rune) error {
	return fmt.Errorf("%w '%c'", ErrScanUnexpectedCharacter, c)
}

func NewScanError(coordinate token.Coordinate, cause error) error {
	return &ScannerError{coordinate: coordinate, cause: cause}
}

// ScannerError is a compile-time diagnostic produced by the scanner. It
// carries the coordinate where scanning stopped.
type ScannerError struct {
	coordinate token.Coordinate
	cause      error
}

// Error implements error.
func (s *ScannerError) Error() string {
	return fmt.Sprintf("%v at %s", s.cause, s.coordinate)
}

func (s *ScannerError) Unwrap() error {
	return s.cause
}

var _ error = (*ScannerError)(nil)
var _ unwrapInterface = (*ScannerError)(nil)
