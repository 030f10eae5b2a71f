package ast

// ExprStmt evaluates an expression for its side effects.
// Example: x = 3;
type ExprStmt struct {
	BaseStmt
	X Expr
}

// PrintStmt evaluates an expression and writes its display form.
// Example: print x + 1;
type PrintStmt struct {
	BaseStmt
	X Expr
}

// VarDecl declares a variable in the innermost scope. A missing
// initializer is represented by a nil Literal.
// Example: var x = 1;
type VarDecl struct {
	BaseStmt
	Name string
	Init Expr
}

// Block runs its statements in a new nested scope.
// Example: { var x = 2; print x; }
type Block struct {
	BaseStmt
	Stmts []Stmt // may be empty
}

// If runs Then or Else depending on Cond.
// Examples:
//   - if (c) print 1;
//   - if (c) { ... } else if (d) { ... } else { ... }
type If struct {
	BaseStmt
	Cond Expr
	Then Stmt
	Else Stmt // nil if there is no else clause
}

func (s *ExprStmt) String() string  { return stmtString(s) }
func (s *PrintStmt) String() string { return stmtString(s) }
func (s *VarDecl) String() string   { return stmtString(s) }
func (s *Block) String() string     { return stmtString(s) }
func (s *If) String() string        { return stmtString(s) }
