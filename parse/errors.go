// Package parse: sentinel error set.
// ParseError is the single error kind the lexer and parser surface.
// errors.Is(err, ErrParse) matches every parse failure; the fine-grained
// sentinels below are reachable through errors.Is as well, via Unwrap.

package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is the umbrella sentinel matched by every *ParseError.
	ErrParse = errors.New("parse: malformed unit expression")

	// ErrBadInteger marks a malformed integer or superscript run.
	ErrBadInteger = errors.New("parse: unexpected integer format")

	// ErrUnknownSymbol marks a symbol resolving to neither a unit nor a
	// prefix+unit decomposition.
	ErrUnknownSymbol = errors.New("parse: unknown unit symbol")

	// ErrUnexpectedToken marks a token that no grammar rule accepts at
	// its position.
	ErrUnexpectedToken = errors.New("parse: unexpected token")

	// ErrUnexpectedEnd marks input ending where a unit was required.
	ErrUnexpectedEnd = errors.New("parse: unexpected end of input")

	// ErrUnbalancedParen marks a group opened but never closed.
	ErrUnbalancedParen = errors.New("parse: unbalanced parenthesis")
)

// ParseError reports a malformed unit expression with a human-readable
// message naming the offending fragment.
type ParseError struct {
	Msg   string
	cause error
}

// Error implements error.
func (e *ParseError) Error() string { return "parse: " + e.Msg }

// Unwrap exposes the fine-grained sentinel.
func (e *ParseError) Unwrap() error { return e.cause }

// Is makes errors.Is(err, ErrParse) hold for every ParseError.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// failf builds a *ParseError around one of the sentinels above.
func failf(cause error, format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...), cause: cause}
}
