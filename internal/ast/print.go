package ast

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes the canonical textual form of AST nodes, as shown by the
// debug dump: expressions in prefix form ("(+ x 2.0)", "(group e)") and
// one statement per line ("decl: x = 1.0", "print: (+ x 2.0)"), with
// nested statements indented.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the canonical form of node. Statements end with a newline.
func (p *Printer) Print(node Node) error {
	switch n := node.(type) {
	case Expr:
		p.printExpr(n)
	case Stmt:
		p.printStmt(n)
	case nil:
		p.printf("<nil>")
	default:
		p.printf("<%T>", node)
	}
	return p.err
}

// PrintAll writes each statement in order.
func (p *Printer) PrintAll(stmts []Stmt) error {
	for _, s := range stmts {
		p.printStmt(s)
	}
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func (p *Printer) printExpr(e Expr) {
	if e == nil {
		p.printf("<nil>")
		return
	}

	switch n := e.(type) {
	case *Literal:
		p.printf("%s", n.Value.Canonical())

	case *Ident:
		p.printf("%s", n.Name)

	case *Unary:
		p.printf("(%s ", n.Op)
		p.printExpr(n.X)
		p.printf(")")

	case *Binary:
		p.printf("(%s ", n.Op)
		p.printExpr(n.Left)
		p.printf(" ")
		p.printExpr(n.Right)
		p.printf(")")

	case *Group:
		p.printf("(group ")
		p.printExpr(n.X)
		p.printf(")")

	case *Assign:
		p.printf("(= %s ", n.Name)
		p.printExpr(n.Value)
		p.printf(")")

	default:
		p.printf("<%T>", e)
	}
}

func (p *Printer) printStmt(s Stmt) {
	p.writeIndent()
	p.printStmtBody(s)
}

// printStmtBody prints s assuming the indentation is already written.
func (p *Printer) printStmtBody(s Stmt) {
	switch n := s.(type) {
	case nil:
		p.printf("<nil>\n")

	case *ExprStmt:
		p.printf("expr: ")
		p.printExpr(n.X)
		p.printf("\n")

	case *PrintStmt:
		p.printf("print: ")
		p.printExpr(n.X)
		p.printf("\n")

	case *VarDecl:
		p.printf("decl: %s = ", n.Name)
		p.printExpr(n.Init)
		p.printf("\n")

	case *Block:
		if len(n.Stmts) == 0 {
			p.printf("block: {}\n")
			return
		}
		p.printf("block: {\n")
		p.indent++
		for _, child := range n.Stmts {
			p.printStmt(child)
		}
		p.indent--
		p.writeIndent()
		p.printf("}\n")

	case *If:
		p.printf("if: ")
		p.printExpr(n.Cond)
		p.printf("\n")
		p.printClause("then", n.Then)
		if n.Else != nil {
			p.printClause("else", n.Else)
		}

	default:
		p.printf("<%T>\n", s)
	}
}

func (p *Printer) printClause(label string, s Stmt) {
	p.writeIndent()
	p.printf("%s:\n", label)
	p.indent++
	p.printStmt(s)
	p.indent--
}

func exprString(e Expr) string {
	var sb strings.Builder
	NewPrinter(&sb).printExpr(e)
	return sb.String()
}

func stmtString(s Stmt) string {
	var sb strings.Builder
	NewPrinter(&sb).printStmt(s)
	return strings.TrimSuffix(sb.String(), "\n")
}
