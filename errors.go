package ulox

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kolkov/ulox/internal/interp"
	"github.com/kolkov/ulox/internal/lexer"
	"github.com/kolkov/ulox/internal/parser"
)

// Process exit codes used by the command-line driver.
const (
	ExitOK      = 0  // Success
	ExitFailure = 1  // Any other failure, such as an output error
	ExitUsage   = 64 // Bad command line
	ExitData    = 65 // Lexical or parse error in the source
	ExitNoInput = 66 // Source file could not be read
	ExitRuntime = 70 // Runtime error while executing
)

// LexError is a single lexical error: an unexpected character or an
// unterminated string.
type LexError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[line %d]: Error: %s", e.Line, e.Message)
}

// LexErrors lists every lexical error found in a source, in order.
// Scanning never stops at the first one.
type LexErrors struct {
	Errors []*LexError
}

// Error returns one line per lexical error.
func (e *LexErrors) Error() string {
	lines := make([]string, len(e.Errors))
	for i, le := range e.Errors {
		lines[i] = le.Error()
	}
	return strings.Join(lines, "\n")
}

// ParseError represents a syntax error in ulox source code.
type ParseError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

// RuntimeError represents an error during execution: a type mismatch
// for an operator or an undefined variable.
type RuntimeError struct {
	Line    int    // 1-based line number
	Message string // Error description

	// Err is the underlying cause, if any. It is an *UndefinedError for
	// reads or assignments of unknown variables.
	Err error
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line, e.Message)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// UndefinedError is the cause of a RuntimeError raised for a variable
// that is not defined in any enclosing scope.
type UndefinedError struct {
	Name string
}

func (e *UndefinedError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name)
}

// ExitCode returns the process exit code for err: 0 for nil, 65 for
// lexical and parse errors, 70 for runtime errors and 1 otherwise.
func ExitCode(err error) int {
	var (
		lexErrs  *LexErrors
		lexErr   *LexError
		parseErr *ParseError
		rtErr    *RuntimeError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &lexErrs), errors.As(err, &lexErr), errors.As(err, &parseErr):
		return ExitData
	case errors.As(err, &rtErr):
		return ExitRuntime
	default:
		return ExitFailure
	}
}

// lexErrors converts the INVALID tokens of toks to a *LexErrors, or
// returns nil when there are none.
func lexErrors(toks []lexer.Token) error {
	errs := lexer.Errors(toks)
	if len(errs) == 0 {
		return nil
	}
	out := &LexErrors{Errors: make([]*LexError, len(errs))}
	for i, e := range errs {
		out.Errors[i] = &LexError{
			Line:    e.Span.Line(),
			Column:  e.Span.From.Column,
			Message: e.Message,
		}
	}
	return out
}

// publicError converts errors from the internal packages to the public
// error types.
func publicError(err error) error {
	var (
		pe *parser.ParseError
		re *interp.RuntimeError
		ue *interp.UndefinedError
	)
	switch {
	case err == nil:
		return nil
	case errors.As(err, &pe):
		return &ParseError{
			Line:    pe.Line(),
			Column:  pe.Span.From.Column,
			Message: pe.Message,
		}
	case errors.As(err, &re):
		rerr := &RuntimeError{
			Line:    re.Line(),
			Message: re.Message,
		}
		if errors.As(re.Err, &ue) {
			rerr.Err = &UndefinedError{Name: ue.Name}
		}
		return rerr
	default:
		return err
	}
}
