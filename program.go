package ulox

import (
	"bytes"
	"io"
	"strings"

	"github.com/kolkov/ulox/internal/ast"
	"github.com/kolkov/ulox/internal/interp"
)

// Program represents a parsed ulox program ready for execution.
// It is safe for concurrent use; each call to Run creates an
// independent interpreter and global scope.
type Program struct {
	stmts  []ast.Stmt
	source string // Original source for debugging
}

// Run executes the program with the given configuration.
//
// If config is nil, default configuration is used.
// If config.Output is set, output is written there and the returned
// string will be empty. Otherwise the output is captured and returned,
// including output printed before a runtime error.
func (p *Program) Run(config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()

	var outputBuf *bytes.Buffer
	out := config.Output
	if out == nil {
		outputBuf = &bytes.Buffer{}
		out = outputBuf
	}

	if config.Debug {
		if err := p.Dump(config.Stderr); err != nil {
			return "", err
		}
	}

	err := newInterpreter(out, config).ExecuteAll(p.stmts)

	var output string
	if outputBuf != nil {
		output = outputBuf.String()
	}
	return output, publicError(err)
}

// Dump writes the canonical form of every statement, one per line with
// nested statements indented:
//
//	decl: x = 1.0
//	print: (+ x 2.0)
func (p *Program) Dump(w io.Writer) error {
	return ast.NewPrinter(w).PrintAll(p.stmts)
}

// Statements returns the canonical form of each top-level statement.
func (p *Program) Statements() []string {
	out := make([]string, len(p.stmts))
	for i, s := range p.stmts {
		out[i] = s.String()
	}
	return out
}

// String returns the canonical form of the whole program.
func (p *Program) String() string {
	var sb strings.Builder
	_ = p.Dump(&sb)
	return sb.String()
}

// Source returns the original ulox source code.
func (p *Program) Source() string {
	return p.source
}

// newInterpreter creates an interpreter configured by config.
func newInterpreter(out io.Writer, config *Config, opts ...interp.Option) *interp.Interpreter {
	if config.StrictConditions {
		opts = append(opts, interp.WithStrictConditions())
	}
	return interp.New(out, opts...)
}
