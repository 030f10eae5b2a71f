// Package types defines runtime value types for ulox.
package types

import (
	"math"
	"testing"
)

func TestValueConstructors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		kind Kind
	}{
		{"Nil", Nil(), KindNil},
		{"Number(0)", Number(0), KindNumber},
		{"Number(-3.14)", Number(-3.14), KindNumber},
		{"Boolean true", Boolean(true), KindBoolean},
		{"Boolean false", Boolean(false), KindBoolean},
		{"String empty", String(""), KindString},
		{"String hello", String("hello"), KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
			}
		})
	}
}

func TestAccessors(t *testing.T) {
	if n, ok := Number(4).AsNumber(); !ok || n != 4 {
		t.Errorf("AsNumber() = %v, %v", n, ok)
	}
	if _, ok := String("4").AsNumber(); ok {
		t.Error("String should not convert to number")
	}
	if b, ok := Boolean(true).AsBoolean(); !ok || !b {
		t.Errorf("AsBoolean() = %v, %v", b, ok)
	}
	if s, ok := String("hi").AsString(); !ok || s != "hi" {
		t.Errorf("AsString() = %q, %v", s, ok)
	}
	if !Nil().IsNil() || Number(0).IsNil() {
		t.Error("IsNil misreports")
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Nil(), false},
		{Boolean(false), false},
		{Boolean(true), true},
		{Number(0), true},
		{Number(-1), true},
		{Number(math.NaN()), true},
		{String(""), true},
		{String("false"), true},
	}
	for _, tt := range tests {
		if got := tt.v.Truthy(); got != tt.want {
			t.Errorf("%v.Truthy() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{Nil(), Nil(), true},
		{Number(1), Number(1), true},
		{Number(1), Number(2), false},
		{Number(math.NaN()), Number(math.NaN()), false},
		{String("a"), String("a"), true},
		{String("1"), Number(1), false},
		{Boolean(true), Boolean(true), true},
		{Boolean(false), Nil(), false},
	}
	for _, tt := range tests {
		if got := Equal(tt.a, tt.b); got != tt.want {
			t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		v         Value
		display   string
		canonical string
	}{
		{Number(7), "7", "7.0"},
		{Number(2.5), "2.5", "2.5"},
		{Number(-3), "-3", "-3.0"},
		{Number(0.1 + 0.2), "0.30000000000000004", "0.30000000000000004"},
		{Number(1e21), "1000000000000000000000", "1000000000000000000000.0"},
		{Number(math.Inf(1)), "inf", "inf"},
		{Number(math.Inf(-1)), "-inf", "-inf"},
		{Number(math.NaN()), "NaN", "NaN"},
		{Boolean(true), "true", "true"},
		{Nil(), "nil", "nil"},
		{String("hello world"), "hello world", "hello world"},
	}
	for _, tt := range tests {
		if got := tt.v.Display(); got != tt.display {
			t.Errorf("%v.Display() = %q, want %q", tt.v, got, tt.display)
		}
		if got := tt.v.Canonical(); got != tt.canonical {
			t.Errorf("%v.Canonical() = %q, want %q", tt.v, got, tt.canonical)
		}
	}
}

func TestDebugString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Number(1), "Number(1.0)"},
		{Boolean(false), "Boolean(false)"},
		{String("x"), `String("x")`},
		{Nil(), "Nil"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	for _, s := range []string{"0", "42", "3.14", "007.50"} {
		if _, err := ParseNumber(s); err != nil {
			t.Errorf("ParseNumber(%q) error: %v", s, err)
		}
	}
	if n, _ := ParseNumber("1.50"); n != 1.5 {
		t.Errorf("ParseNumber(1.50) = %v", n)
	}
}
