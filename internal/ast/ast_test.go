package ast_test

import (
	"strings"
	"testing"

	"github.com/kolkov/ulox/internal/ast"
	"github.com/kolkov/ulox/internal/token"
	"github.com/kolkov/ulox/internal/types"
)

func span(fromCol, toCol int) token.Span {
	return token.MakeSpan(
		token.Position{Line: 1, Column: fromCol, Offset: fromCol - 1},
		token.Position{Line: 1, Column: toCol, Offset: toCol - 1},
	)
}

func num(n float64) *ast.Literal {
	return &ast.Literal{Value: types.Number(n)}
}

func ident(name string) *ast.Ident {
	return &ast.Ident{Name: name}
}

// TestNodeInterface verifies all node types implement Node interface correctly.
func TestNodeInterface(t *testing.T) {
	s := span(1, 10)
	tests := []struct {
		name string
		node ast.Node
	}{
		{"Literal", &ast.Literal{BaseExpr: ast.MakeBaseExpr(s)}},
		{"Ident", &ast.Ident{BaseExpr: ast.MakeBaseExpr(s), Name: "x"}},
		{"Unary", &ast.Unary{BaseExpr: ast.MakeBaseExpr(s)}},
		{"Binary", &ast.Binary{BaseExpr: ast.MakeBaseExpr(s)}},
		{"Group", &ast.Group{BaseExpr: ast.MakeBaseExpr(s)}},
		{"Assign", &ast.Assign{BaseExpr: ast.MakeBaseExpr(s)}},
		{"ExprStmt", &ast.ExprStmt{BaseStmt: ast.MakeBaseStmt(s)}},
		{"PrintStmt", &ast.PrintStmt{BaseStmt: ast.MakeBaseStmt(s)}},
		{"VarDecl", &ast.VarDecl{BaseStmt: ast.MakeBaseStmt(s)}},
		{"Block", &ast.Block{BaseStmt: ast.MakeBaseStmt(s)}},
		{"If", &ast.If{BaseStmt: ast.MakeBaseStmt(s)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.node.Span() != s {
				t.Errorf("Span() = %v, want %v", tt.node.Span(), s)
			}
			if tt.node.Pos() != s.From || tt.node.End() != s.To {
				t.Errorf("Pos/End = %v/%v, want %v/%v", tt.node.Pos(), tt.node.End(), s.From, s.To)
			}
		})
	}
}

func TestOperatorSymbols(t *testing.T) {
	want := map[ast.BinaryOp]string{
		ast.Add: "+", ast.Sub: "-", ast.Mul: "*", ast.Div: "/", ast.Pow: "^",
		ast.Eq: "==", ast.NEq: "!=", ast.LEq: "<=", ast.GEq: ">=",
		ast.L: "<", ast.G: ">", ast.Or: "or", ast.And: "and",
	}
	for op, sym := range want {
		if op.String() != sym {
			t.Errorf("%d.String() = %q, want %q", op, op.String(), sym)
		}
		if op.IsLogical() != (op == ast.And || op == ast.Or) {
			t.Errorf("%s.IsLogical() = %v", sym, op.IsLogical())
		}
	}
	if ast.Not.String() != "!" || ast.Neg.String() != "-" {
		t.Error("unary symbols wrong")
	}
}

func TestExprString(t *testing.T) {
	tests := []struct {
		name string
		expr ast.Expr
		want string
	}{
		{"number", num(1), "1.0"},
		{"fraction", num(2.5), "2.5"},
		{"string", &ast.Literal{Value: types.String("hi")}, "hi"},
		{"bool", &ast.Literal{Value: types.Boolean(true)}, "true"},
		{"nil", &ast.Literal{Value: types.Nil()}, "nil"},
		{"ident", ident("x"), "x"},
		{"not", &ast.Unary{Op: ast.Not, X: ident("ok")}, "(! ok)"},
		{"neg", &ast.Unary{Op: ast.Neg, X: num(3)}, "(- 3.0)"},
		{"binary", &ast.Binary{Left: ident("x"), Op: ast.Add, Right: num(2)}, "(+ x 2.0)"},
		{"logical", &ast.Binary{Left: ident("a"), Op: ast.And, Right: ident("b")}, "(and a b)"},
		{"group", &ast.Group{X: &ast.Binary{Left: num(1), Op: ast.Mul, Right: num(2)}}, "(group (* 1.0 2.0))"},
		{"assign", &ast.Assign{Name: "x", Value: &ast.Assign{Name: "y", Value: num(1)}}, "(= x (= y 1.0))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.expr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStmtString(t *testing.T) {
	tests := []struct {
		name string
		stmt ast.Stmt
		want string
	}{
		{"expr", &ast.ExprStmt{X: &ast.Assign{Name: "x", Value: num(3)}}, "expr: (= x 3.0)"},
		{"print", &ast.PrintStmt{X: &ast.Binary{Left: ident("x"), Op: ast.Add, Right: num(2)}}, "print: (+ x 2.0)"},
		{"decl", &ast.VarDecl{Name: "x", Init: num(1)}, "decl: x = 1.0"},
		{"decl nil", &ast.VarDecl{Name: "x", Init: &ast.Literal{Value: types.Nil()}}, "decl: x = nil"},
		{"empty block", &ast.Block{}, "block: {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.stmt.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrinterNested(t *testing.T) {
	stmts := []ast.Stmt{
		&ast.VarDecl{Name: "x", Init: num(1)},
		&ast.Block{Stmts: []ast.Stmt{
			&ast.VarDecl{Name: "x", Init: num(2)},
			&ast.PrintStmt{X: ident("x")},
		}},
		&ast.If{
			Cond: &ast.Binary{Left: ident("x"), Op: ast.Eq, Right: num(1)},
			Then: &ast.PrintStmt{X: &ast.Literal{Value: types.String("one")}},
			Else: &ast.Block{Stmts: []ast.Stmt{&ast.PrintStmt{X: ident("x")}}},
		},
	}

	var sb strings.Builder
	if err := ast.NewPrinter(&sb).PrintAll(stmts); err != nil {
		t.Fatalf("PrintAll() error = %v", err)
	}
	want := strings.Join([]string{
		"decl: x = 1.0",
		"block: {",
		"    decl: x = 2.0",
		"    print: x",
		"}",
		"if: (== x 1.0)",
		"then:",
		"    print: one",
		"else:",
		"    block: {",
		"        print: x",
		"    }",
		"",
	}, "\n")
	if got := sb.String(); got != want {
		t.Errorf("PrintAll() =\n%s\nwant:\n%s", got, want)
	}
}

func TestWalk(t *testing.T) {
	stmt := &ast.If{
		Cond: &ast.Binary{Left: ident("a"), Op: ast.Or, Right: &ast.Group{X: ident("b")}},
		Then: &ast.Block{Stmts: []ast.Stmt{
			&ast.ExprStmt{X: &ast.Assign{Name: "c", Value: &ast.Unary{Op: ast.Neg, X: ident("d")}}},
		}},
	}

	var names []string
	count := 0
	ast.Walk(stmt, func(n ast.Node) bool {
		count++
		if id, ok := n.(*ast.Ident); ok {
			names = append(names, id.Name)
		}
		return true
	})
	if got := strings.Join(names, ","); got != "a,b,d" {
		t.Errorf("identifiers = %q, want a,b,d", got)
	}
	// If, Binary, Ident a, Group, Ident b, Block, ExprStmt, Assign, Unary, Ident d
	if count != 10 {
		t.Errorf("visited %d nodes, want 10", count)
	}

	// Pruning stops descent into the block.
	count = 0
	ast.Walk(stmt, func(n ast.Node) bool {
		count++
		_, isBlock := n.(*ast.Block)
		return !isBlock
	})
	if count != 6 {
		t.Errorf("visited %d nodes with pruning, want 6", count)
	}
}
