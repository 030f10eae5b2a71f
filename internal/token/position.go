package token

import "fmt"

// Position represents a point in source code.
type Position struct {
	// Line number (1-indexed).
	Line int
	// Column is the byte offset on the line (1-indexed).
	Column int
	// Offset is the byte offset from the start of source (0-indexed).
	Offset int
}

// String returns a string representation of the position.
// Format: "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid returns true if the position is valid (line > 0).
func (p Position) IsValid() bool {
	return p.Line > 0
}

// Before returns true if p is before other in the source.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// After returns true if p is after other in the source.
func (p Position) After(other Position) bool {
	if p.Line != other.Line {
		return p.Line > other.Line
	}
	return p.Column > other.Column
}

// Span is a half-open range in source code: From is the first character,
// To is the position immediately after the last one.
type Span struct {
	From Position
	To   Position
}

// MakeSpan creates a Span from two positions.
func MakeSpan(from, to Position) Span {
	return Span{From: from, To: to}
}

// Range returns the span that starts where a starts and ends where b ends.
// Used to make a parent node cover all of its children.
func Range(a, b Span) Span {
	return Span{From: a.From, To: b.To}
}

// Line returns the line reported in diagnostics for this span: the line
// it ends on. An error in an expression spread over several lines is
// reported on the line of its last operand, and an unterminated string
// on the last line of input.
func (s Span) Line() int {
	return s.To.Line
}

// String returns a string representation of the span.
func (s Span) String() string {
	if s.From.Line == s.To.Line {
		return fmt.Sprintf("%s-%d", s.From.String(), s.To.Column)
	}
	return fmt.Sprintf("%s-%s", s.From.String(), s.To.String())
}

// Contains returns true if the span contains the given position.
func (s Span) Contains(p Position) bool {
	return !p.Before(s.From) && p.Before(s.To)
}

// Covers returns true if other lies entirely within s.
func (s Span) Covers(other Span) bool {
	return !other.From.Before(s.From) && !other.To.After(s.To)
}

// NoPos is a zero Position used when position is unknown.
var NoPos = Position{}
