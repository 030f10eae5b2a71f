package interp

import (
	"errors"
	"math"

	"github.com/kolkov/ulox/internal/ast"
	"github.com/kolkov/ulox/internal/types"
)

// Operator type errors.
var (
	errNumberOperands = errors.New("Operands must be numbers")
	errAddOperands    = errors.New("Operands must be two numbers or two strings")
	errNumberOperand  = errors.New("Operand must be a number")
)

// binary applies a non-logical binary operator to evaluated operands.
// Equality is defined for numbers, strings and booleans of the same kind;
// nil compares with nothing, not even nil.
func binary(op ast.BinaryOp, l, r types.Value) (types.Value, error) {
	if ln, ok := l.AsNumber(); ok {
		if rn, ok := r.AsNumber(); ok {
			return numeric(op, ln, rn)
		}
	}

	switch {
	case l.Kind() == types.KindString && r.Kind() == types.KindString:
		ls, _ := l.AsString()
		rs, _ := r.AsString()
		switch op {
		case ast.Add:
			return types.String(ls + rs), nil
		case ast.Eq:
			return types.Boolean(ls == rs), nil
		case ast.NEq:
			return types.Boolean(ls != rs), nil
		}

	case l.Kind() == types.KindBoolean && r.Kind() == types.KindBoolean:
		lb, _ := l.AsBoolean()
		rb, _ := r.AsBoolean()
		switch op {
		case ast.Eq:
			return types.Boolean(lb == rb), nil
		case ast.NEq:
			return types.Boolean(lb != rb), nil
		}

	case isStringNumber(l, r):
		// Only == tolerates a string and a number; != and the
		// orderings still require numbers.
		switch op {
		case ast.Eq:
			return types.Boolean(false), nil
		case ast.Add:
			return types.Nil(), errAddOperands
		}
	}
	return types.Nil(), errNumberOperands
}

func numeric(op ast.BinaryOp, l, r float64) (types.Value, error) {
	switch op {
	case ast.Add:
		return types.Number(l + r), nil
	case ast.Sub:
		return types.Number(l - r), nil
	case ast.Mul:
		return types.Number(l * r), nil
	case ast.Div:
		return types.Number(l / r), nil
	case ast.Pow:
		return types.Number(math.Pow(l, r)), nil
	case ast.Eq:
		return types.Boolean(l == r), nil
	case ast.NEq:
		return types.Boolean(l != r), nil
	case ast.LEq:
		return types.Boolean(l <= r), nil
	case ast.GEq:
		return types.Boolean(l >= r), nil
	case ast.L:
		return types.Boolean(l < r), nil
	case ast.G:
		return types.Boolean(l > r), nil
	}
	return types.Nil(), errNumberOperands
}

// isStringNumber reports whether one operand is a string and the other a number.
func isStringNumber(l, r types.Value) bool {
	lk, rk := l.Kind(), r.Kind()
	return (lk == types.KindString && rk == types.KindNumber) ||
		(lk == types.KindNumber && rk == types.KindString)
}

// unary applies a prefix operator. "!" is "not truthy" for every kind.
func unary(op ast.UnaryOp, v types.Value) (types.Value, error) {
	if op == ast.Not {
		return types.Boolean(!v.Truthy()), nil
	}
	n, ok := v.AsNumber()
	if !ok {
		return types.Nil(), errNumberOperand
	}
	return types.Number(-n), nil
}
