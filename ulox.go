package ulox

import (
	"io"

	"github.com/kolkov/ulox/internal/interp"
	"github.com/kolkov/ulox/internal/lexer"
	"github.com/kolkov/ulox/internal/parser"
)

// Version is the ulox version string.
const Version = "0.1.0"

// Token is a scanned token. Its String method gives the form printed by
// the tokenize command: "KIND lexeme literal".
type Token = lexer.Token

// Tokenize scans src completely. The tokens always end with EOF and
// include an INVALID token for every lexical error; if there are any,
// the error is a *LexErrors listing them.
//
// Example:
//
//	toks, _ := ulox.Tokenize(`var x = 1;`)
//	fmt.Println(toks[0]) // VAR var null
func Tokenize(src string) ([]Token, error) {
	toks := lexer.Scan(src)
	return toks, lexErrors(toks)
}

// Compile scans and parses a program for execution.
// The returned Program can be executed multiple times; every run starts
// with an empty global scope. Lexical errors are reported in preference
// to parse errors.
//
// Example:
//
//	prog, err := ulox.Compile(`var x = 1; print x + 2;`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	output, _ := prog.Run(nil) // "3\n"
func Compile(src string) (*Program, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	stmts, err := parser.ParseStatements(toks)
	if err != nil {
		return nil, publicError(err)
	}
	return &Program{stmts: stmts, source: src}, nil
}

// MustCompile is like Compile but panics if the program cannot be compiled.
// It simplifies initialization of global program variables.
func MustCompile(src string) *Program {
	prog, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return prog
}

// ParseExpr parses a single expression and returns its canonical form,
// such as "(+ 1.0 (group (* 2.0 3.0)))".
func ParseExpr(src string) (string, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return "", err
	}
	expr, err := parser.ParseExpr(toks)
	if err != nil {
		return "", publicError(err)
	}
	return expr.String(), nil
}

// Evaluate parses and evaluates a single expression and returns the
// display form of its value: "7", "2.5", "hello", "true", "nil".
// No variables are defined in this mode; use Run for programs.
func Evaluate(src string, config *Config) (string, error) {
	if config == nil {
		config = &Config{}
	}
	config.applyDefaults()

	toks, err := Tokenize(src)
	if err != nil {
		return "", err
	}
	expr, err := parser.ParseExpr(toks)
	if err != nil {
		return "", publicError(err)
	}
	if config.Debug {
		if _, err := io.WriteString(config.Stderr, expr.String()+"\n"); err != nil {
			return "", err
		}
	}

	v, err := interp.New(io.Discard).Evaluate(expr)
	if err != nil {
		return "", publicError(err)
	}
	return v.Display(), nil
}

// Run compiles and executes a program.
// This is a convenience function for one-off execution.
// For repeated execution of the same program, use Compile followed by Program.Run.
//
// Returns the program output as a string when config.Output is nil, or
// an error if scanning, parsing or execution fails. Output printed before
// a runtime error is returned along with the error.
//
// Example:
//
//	output, err := ulox.Run(`print "hello";`, nil)
//	// output: "hello\n"
func Run(src string, config *Config) (string, error) {
	prog, err := Compile(src)
	if err != nil {
		return "", err
	}
	return prog.Run(config)
}

// Exec is a simplified interface for running a program that writes its
// output to out.
//
// Example:
//
//	err := ulox.Exec(`print 1 + 2;`, os.Stdout, nil)
func Exec(src string, out io.Writer, config *Config) error {
	prog, err := Compile(src)
	if err != nil {
		return err
	}

	if config == nil {
		config = &Config{}
	}
	config.Output = out

	_, err = prog.Run(config)
	return err
}
