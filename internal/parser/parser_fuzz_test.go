package parser_test

import (
	"errors"
	"testing"

	"github.com/kolkov/ulox/internal/ast"
	"github.com/kolkov/ulox/internal/parser"
)

// FuzzParser tests the parser with random inputs to find crashes.
// Successful parses must produce nodes whose spans cover their children,
// and failures must be a *ParseError.
func FuzzParser(f *testing.F) {
	seeds := []string{
		// Empty and minimal
		"",
		";",
		"{}",
		"print 1;",

		// Declarations and scopes
		"var x = 1; print x;",
		"var x; x = 2;",
		"var a = 1; { var a = 2; print a; } print a;",
		"{ { { } } }",

		// Conditionals
		"if (x) print 1;",
		"if (a and b) { print 1; } else { print 2; }",
		"if (a) if (b) print 1; else print 2;",

		// Expressions
		"1 + 2 * 3 - 4 / 5 ^ 6",
		"a == b != c <= d >= e < f > g",
		"!a or -b and !!c",
		"x = y = z",
		"((((1))))",
		`"a" + "b"`,

		// Errors
		"(",
		")",
		"1 +",
		"1 = 2",
		"{",
		"if x",
		"var 1",
		"class A {}",
		"print @;",
		`"unterminated`,
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, src string) {
		const maxLen = 1000
		if len(src) > maxLen {
			return
		}

		stmts, err := parser.Parse(src)
		if err != nil {
			var perr *parser.ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) returned %T, want *ParseError", src, err)
			}
			return
		}
		for _, stmt := range stmts {
			ast.Walk(stmt, func(n ast.Node) bool {
				ast.Walk(n, func(child ast.Node) bool {
					if !n.Span().Covers(child.Span()) {
						t.Fatalf("%q: %s span %v does not cover %s span %v", src, n, n.Span(), child, child.Span())
					}
					return true
				})
				return true
			})
		}
	})
}

// FuzzParseExpr tests single-expression parsing with random inputs.
func FuzzParseExpr(f *testing.F) {
	exprs := []string{
		"1",
		"x",
		"-x",
		"!x",
		"a + b",
		"a ^ b ^ c",
		"(a + b) * c",
		"a = 1",
		"a or b",
		"nil == false",
	}

	for _, expr := range exprs {
		f.Add(expr)
	}

	f.Fuzz(func(t *testing.T, src string) {
		const maxLen = 1000
		if len(src) > maxLen {
			return
		}
		_, _ = parser.ParseExprString(src)
	})
}
