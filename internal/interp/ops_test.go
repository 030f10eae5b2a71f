package interp

import (
	"math"
	"testing"

	"github.com/kolkov/ulox/internal/ast"
	"github.com/kolkov/ulox/internal/types"
)

func TestBinaryOperators(t *testing.T) {
	num, str, boolean := types.Number, types.String, types.Boolean
	tests := []struct {
		name string
		op   ast.BinaryOp
		l, r types.Value
		want types.Value
	}{
		// Numbers
		{"add", ast.Add, num(1), num(2), num(3)},
		{"sub", ast.Sub, num(1), num(2), num(-1)},
		{"mul", ast.Mul, num(3), num(4), num(12)},
		{"div", ast.Div, num(7), num(2), num(3.5)},
		{"pow", ast.Pow, num(2), num(10), num(1024)},
		{"eq", ast.Eq, num(1), num(1), boolean(true)},
		{"neq", ast.NEq, num(1), num(1), boolean(false)},
		{"leq", ast.LEq, num(1), num(1), boolean(true)},
		{"geq", ast.GEq, num(1), num(2), boolean(false)},
		{"less", ast.L, num(1), num(2), boolean(true)},
		{"greater", ast.G, num(1), num(2), boolean(false)},

		// Strings
		{"concat", ast.Add, str("a"), str("b"), str("ab")},
		{"string eq", ast.Eq, str("a"), str("a"), boolean(true)},
		{"string neq", ast.NEq, str("a"), str("b"), boolean(true)},

		// Booleans
		{"bool eq", ast.Eq, boolean(true), boolean(true), boolean(true)},
		{"bool neq", ast.NEq, boolean(true), boolean(false), boolean(true)},

		// String and number == never fails
		{"string number eq", ast.Eq, str("1"), num(1), boolean(false)},
		{"number string eq", ast.Eq, num(1), str("1"), boolean(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := binary(tt.op, tt.l, tt.r)
			if err != nil {
				t.Fatalf("binary() error = %v", err)
			}
			if !types.Equal(got, tt.want) {
				t.Errorf("binary() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBinaryDivisionByZero(t *testing.T) {
	got, err := binary(ast.Div, types.Number(1), types.Number(0))
	if err != nil {
		t.Fatalf("binary() error = %v", err)
	}
	if n, _ := got.AsNumber(); !math.IsInf(n, 1) {
		t.Errorf("1 / 0 = %v, want +Inf", got)
	}
	got, _ = binary(ast.Div, types.Number(0), types.Number(0))
	if n, _ := got.AsNumber(); !math.IsNaN(n) {
		t.Errorf("0 / 0 = %v, want NaN", got)
	}
}

func TestBinaryTypeErrors(t *testing.T) {
	tests := []struct {
		name string
		op   ast.BinaryOp
		l, r types.Value
		want string
	}{
		{"string plus number", ast.Add, types.String("a"), types.Number(1), "Operands must be two numbers or two strings"},
		{"number plus string", ast.Add, types.Number(1), types.String("a"), "Operands must be two numbers or two strings"},
		{"bool plus bool", ast.Add, types.Boolean(true), types.Boolean(true), "Operands must be numbers"},
		{"string minus string", ast.Sub, types.String("a"), types.String("b"), "Operands must be numbers"},
		{"string times number", ast.Mul, types.String("a"), types.Number(2), "Operands must be numbers"},
		{"nil pow", ast.Pow, types.Nil(), types.Number(2), "Operands must be numbers"},
		{"string less", ast.L, types.String("a"), types.String("b"), "Operands must be numbers"},
		{"string number less", ast.L, types.String("a"), types.Number(1), "Operands must be numbers"},
		{"bool number eq", ast.Eq, types.Boolean(true), types.Number(1), "Operands must be numbers"},
		{"nil bool eq", ast.Eq, types.Nil(), types.Boolean(false), "Operands must be numbers"},
		{"string number neq", ast.NEq, types.String("1"), types.Number(1), "Operands must be numbers"},
		{"number string neq", ast.NEq, types.Number(1), types.String("1"), "Operands must be numbers"},
		{"nil eq", ast.Eq, types.Nil(), types.Nil(), "Operands must be numbers"},
		{"nil neq", ast.NEq, types.Nil(), types.Nil(), "Operands must be numbers"},
		{"bool greater", ast.G, types.Boolean(true), types.Boolean(false), "Operands must be numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := binary(tt.op, tt.l, tt.r)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tt.want {
				t.Errorf("error = %q, want %q", err, tt.want)
			}
		})
	}
}

func TestUnaryOperators(t *testing.T) {
	tests := []struct {
		op   ast.UnaryOp
		v    types.Value
		want types.Value
	}{
		{ast.Neg, types.Number(3), types.Number(-3)},
		{ast.Not, types.Boolean(true), types.Boolean(false)},
		{ast.Not, types.Boolean(false), types.Boolean(true)},
		{ast.Not, types.Nil(), types.Boolean(true)},
		{ast.Not, types.Number(0), types.Boolean(false)},
		{ast.Not, types.String(""), types.Boolean(false)},
	}
	for _, tt := range tests {
		got, err := unary(tt.op, tt.v)
		if err != nil {
			t.Fatalf("unary(%s, %v) error = %v", tt.op, tt.v, err)
		}
		if !types.Equal(got, tt.want) {
			t.Errorf("unary(%s, %v) = %v, want %v", tt.op, tt.v, got, tt.want)
		}
	}

	for _, v := range []types.Value{types.String("1"), types.Boolean(true), types.Nil()} {
		if _, err := unary(ast.Neg, v); err == nil || err.Error() != "Operand must be a number" {
			t.Errorf("unary(-, %v) error = %v", v, err)
		}
	}
}
