// Package ast defines the abstract syntax tree for ulox programs.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── Literal, Ident - leaves
//	│   ├── Unary, Binary, Group - operations
//	│   └── Assign - assignment to an existing variable
//	└── Stmt (interface) - statements that perform actions
//	    ├── ExprStmt, PrintStmt, VarDecl - simple
//	    └── Block, If - compound
//
// Every node owns its children exclusively; the tree has no sharing and
// no cycles. Expression spans cover the whole subtree.
package ast

import "github.com/kolkov/ulox/internal/token"

// Node is the interface implemented by all AST nodes.
type Node interface {
	// Span returns the source range covered by this node.
	Span() token.Span

	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position

	// End returns the position of the first character immediately after this node.
	End() token.Position

	// String returns the canonical textual form of the node.
	String() string
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// BaseExpr provides the span shared by all expression nodes.
type BaseExpr struct {
	Range token.Span
}

func (b *BaseExpr) Span() token.Span    { return b.Range }
func (b *BaseExpr) Pos() token.Position { return b.Range.From }
func (b *BaseExpr) End() token.Position { return b.Range.To }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides the span shared by all statement nodes.
type BaseStmt struct {
	Range token.Span
}

func (b *BaseStmt) Span() token.Span    { return b.Range }
func (b *BaseStmt) Pos() token.Position { return b.Range.From }
func (b *BaseStmt) End() token.Position { return b.Range.To }
func (b *BaseStmt) stmtNode()           {}

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// MakeBaseExpr creates a BaseExpr covering span.
func MakeBaseExpr(span token.Span) BaseExpr {
	return BaseExpr{Range: span}
}

// MakeBaseStmt creates a BaseStmt covering span.
func MakeBaseStmt(span token.Span) BaseStmt {
	return BaseStmt{Range: span}
}
