// Package parser provides a ulox recursive descent parser.
package parser

import (
	"fmt"

	"github.com/kolkov/ulox/internal/token"
)

// ParseError represents a syntax error encountered during parsing.
// Parsing stops at the first one.
type ParseError struct {
	Span    token.Span // Offending token or construct
	Message string     // Human-readable error message
}

// Error returns the message in the "[line N] Error: msg" diagnostic form.
func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line(), e.Message)
}

// Line returns the line reported for the error.
func (e *ParseError) Line() int {
	return e.Span.Line()
}

// errorf creates a ParseError covering span with a formatted message.
func errorf(span token.Span, format string, args ...any) *ParseError {
	return &ParseError{
		Span:    span,
		Message: fmt.Sprintf(format, args...),
	}
}
