package ast

import "github.com/kolkov/ulox/internal/types"

// -----------------------------------------------------------------------------
// Operators
// -----------------------------------------------------------------------------

// UnaryOp is a prefix operator.
type UnaryOp uint8

const (
	Not UnaryOp = iota // !
	Neg                // -
)

// String returns the operator's source symbol.
func (op UnaryOp) String() string {
	if op == Not {
		return "!"
	}
	return "-"
}

// BinaryOp is an infix operator.
type BinaryOp uint8

const (
	Add BinaryOp = iota // +
	Sub                 // -
	Mul                 // *
	Div                 // /
	Pow                 // ^
	Eq                  // ==
	NEq                 // !=
	LEq                 // <=
	GEq                 // >=
	L                   // <
	G                   // >
	Or                  // or
	And                 // and
)

var binarySymbols = [...]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Pow: "^",
	Eq:  "==",
	NEq: "!=",
	LEq: "<=",
	GEq: ">=",
	L:   "<",
	G:   ">",
	Or:  "or",
	And: "and",
}

// String returns the operator's source symbol.
func (op BinaryOp) String() string {
	if int(op) < len(binarySymbols) {
		return binarySymbols[op]
	}
	return "?"
}

// IsLogical reports whether op short-circuits (and, or).
func (op BinaryOp) IsLogical() bool {
	return op == And || op == Or
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// Literal is a constant value written in the source.
// Examples: 42, "hi", true, nil
type Literal struct {
	BaseExpr
	Value types.Value
}

// Ident is a variable reference, resolved when evaluated.
type Ident struct {
	BaseExpr
	Name string
}

// Unary is a prefix operation.
// Examples: !ok, -x
type Unary struct {
	BaseExpr
	Op UnaryOp
	X  Expr
}

// Binary is an infix operation, including the logical and/or.
// Examples: a + b, x == y, p and q
type Binary struct {
	BaseExpr
	Left  Expr
	Op    BinaryOp
	Right Expr
}

// Group is a parenthesized expression, kept distinct from its content so
// the canonical form can show it.
// Example: (a + b)
type Group struct {
	BaseExpr
	X Expr
}

// Assign stores a value into an existing variable and yields it.
// Example: x = y = 1
type Assign struct {
	BaseExpr
	Name  string
	Value Expr
}

func (e *Literal) String() string { return exprString(e) }
func (e *Ident) String() string   { return exprString(e) }
func (e *Unary) String() string   { return exprString(e) }
func (e *Binary) String() string  { return exprString(e) }
func (e *Group) String() string   { return exprString(e) }
func (e *Assign) String() string  { return exprString(e) }
