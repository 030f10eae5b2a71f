// Package types defines runtime value types for ulox.
package types

import (
	"fmt"
	"math"
	"strconv"
)

// Kind represents the type of a ulox value.
type Kind uint8

const (
	KindNil     Kind = iota // nil
	KindNumber              // 64-bit float
	KindBoolean             // true or false
	KindString              // immutable text
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value represents a ulox value. The same type backs literal nodes in the
// AST and the results of evaluation.
// Uses tagged union pattern; values are passed by value.
type Value struct {
	kind Kind
	num  float64
	b    bool
	str  string
}

// Constructors

// Nil returns the nil value.
func Nil() Value {
	return Value{kind: KindNil}
}

// Number creates a numeric value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Boolean creates a boolean value.
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, b: b}
}

// String creates a string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Accessors

// Kind returns the value's type.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNil returns true if the value is nil.
func (v Value) IsNil() bool {
	return v.kind == KindNil
}

// AsNumber returns the number and whether v holds one.
func (v Value) AsNumber() (float64, bool) {
	return v.num, v.kind == KindNumber
}

// AsBoolean returns the boolean and whether v holds one.
func (v Value) AsBoolean() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// AsString returns the text and whether v holds a string.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// Truthy reports whether v counts as true in a boolean context.
// Only nil and false are falsy; every number and string is truthy,
// including 0 and "".
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBoolean:
		return v.b
	default:
		return true
	}
}

// Equal reports whether a and b have the same kind and value.
// Numbers compare with IEEE semantics, so NaN is never equal to itself.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNil:
		return true
	case KindNumber:
		return a.num == b.num
	case KindBoolean:
		return a.b == b.b
	default:
		return a.str == b.str
	}
}

// Display returns the form written by print: integral numbers lose their
// fractional part, strings are unquoted.
func (v Value) Display() string {
	switch v.kind {
	case KindNumber:
		return FormatNumber(v.num)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.str
	default:
		return "nil"
	}
}

// Canonical returns the form used in AST dumps and token listings, where
// numbers always carry a fractional part (7.0).
func (v Value) Canonical() string {
	if v.kind == KindNumber {
		return FormatCanonicalNumber(v.num)
	}
	return v.Display()
}

// String returns a debug representation of the value.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return fmt.Sprintf("Number(%s)", FormatCanonicalNumber(v.num))
	case KindBoolean:
		return fmt.Sprintf("Boolean(%t)", v.b)
	case KindString:
		return fmt.Sprintf("String(%q)", v.str)
	default:
		return "Nil"
	}
}

// Number formatting

// FormatNumber formats n the way print shows it: "7", "2.5", "inf".
func FormatNumber(n float64) string {
	if s, ok := formatSpecial(n); ok {
		return s
	}
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', 0, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// FormatCanonicalNumber formats n with at least one decimal place: "7.0", "2.5".
func FormatCanonicalNumber(n float64) string {
	if s, ok := formatSpecial(n); ok {
		return s
	}
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', 1, 64)
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func formatSpecial(n float64) (string, bool) {
	switch {
	case math.IsNaN(n):
		return "NaN", true
	case math.IsInf(n, 1):
		return "inf", true
	case math.IsInf(n, -1):
		return "-inf", true
	}
	return "", false
}

// ParseNumber parses a number lexeme (digits with an optional fraction).
func ParseNumber(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
