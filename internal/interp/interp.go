// Package interp executes ulox syntax trees by walking them directly.
package interp

import (
	"errors"
	"fmt"
	"io"

	"github.com/kolkov/ulox/internal/ast"
	"github.com/kolkov/ulox/internal/token"
	"github.com/kolkov/ulox/internal/types"
)

// RuntimeError is an error raised while executing a program. It aborts
// the rest of the run.
type RuntimeError struct {
	Span    token.Span // Expression that failed
	Message string
	Err     error // Underlying cause, such as *UndefinedError
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] Error: %s", e.Line(), e.Message)
}

// Line returns the line reported for the error.
func (e *RuntimeError) Line() int {
	return e.Span.Line()
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithStrictConditions makes "if" branch only on boolean conditions:
// true runs the then-branch, false the else-branch, and any other value
// runs neither. By default conditions use truthiness.
func WithStrictConditions() Option {
	return func(in *Interpreter) {
		in.strict = true
	}
}

// WithEnvironment starts the interpreter in env instead of a fresh
// global frame.
func WithEnvironment(env *Environment) Option {
	return func(in *Interpreter) {
		in.env = env
	}
}

// Interpreter executes statements against a single live environment
// chain. It is not safe for concurrent use.
type Interpreter struct {
	out    io.Writer
	env    *Environment
	strict bool
}

// New creates an interpreter that prints to out.
func New(out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{out: out}
	for _, opt := range opts {
		opt(in)
	}
	if in.env == nil {
		in.env = NewEnvironment(nil)
	}
	return in
}

// Env returns the current innermost environment frame.
func (in *Interpreter) Env() *Environment {
	return in.env
}

// ExecuteAll runs statements in order, stopping at the first error.
func (in *Interpreter) ExecuteAll(stmts []ast.Stmt) error {
	for _, stmt := range stmts {
		if err := in.Execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs a single statement.
func (in *Interpreter) Execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		_, err := in.Evaluate(s.X)
		return err

	case *ast.PrintStmt:
		v, err := in.Evaluate(s.X)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(in.out, v.Display()); err != nil {
			return fmt.Errorf("print: %w", err)
		}
		return nil

	case *ast.VarDecl:
		v, err := in.Evaluate(s.Init)
		if err != nil {
			return err
		}
		in.env.Define(s.Name, v)
		return nil

	case *ast.Block:
		return in.executeBlock(s.Stmts)

	case *ast.If:
		cond, err := in.Evaluate(s.Cond)
		if err != nil {
			return err
		}
		switch in.choose(cond) {
		case takeThen:
			return in.Execute(s.Then)
		case takeElse:
			if s.Else != nil {
				return in.Execute(s.Else)
			}
		}
		return nil

	default:
		return fmt.Errorf("unexpected statement type %T", stmt)
	}
}

// executeBlock runs stmts in a new innermost frame. The enclosing frame is
// restored however the block exits.
func (in *Interpreter) executeBlock(stmts []ast.Stmt) error {
	parent := in.env
	in.env = parent.WithParent()
	defer func() { in.env = parent }()

	return in.ExecuteAll(stmts)
}

type branch uint8

const (
	takeNone branch = iota
	takeThen
	takeElse
)

func (in *Interpreter) choose(cond types.Value) branch {
	if !in.strict {
		if cond.Truthy() {
			return takeThen
		}
		return takeElse
	}
	b, ok := cond.AsBoolean()
	switch {
	case !ok:
		return takeNone
	case b:
		return takeThen
	default:
		return takeElse
	}
}

// Evaluate computes the value of an expression.
func (in *Interpreter) Evaluate(expr ast.Expr) (types.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil

	case *ast.Ident:
		v, err := in.env.Get(e.Name)
		if err != nil {
			return types.Nil(), runtimeError(e, err)
		}
		return v, nil

	case *ast.Group:
		return in.Evaluate(e.X)

	case *ast.Unary:
		v, err := in.Evaluate(e.X)
		if err != nil {
			return types.Nil(), err
		}
		res, err := unary(e.Op, v)
		if err != nil {
			return types.Nil(), runtimeError(e, err)
		}
		return res, nil

	case *ast.Binary:
		if e.Op.IsLogical() {
			return in.logical(e)
		}
		l, err := in.Evaluate(e.Left)
		if err != nil {
			return types.Nil(), err
		}
		r, err := in.Evaluate(e.Right)
		if err != nil {
			return types.Nil(), err
		}
		res, err := binary(e.Op, l, r)
		if err != nil {
			return types.Nil(), runtimeError(e, err)
		}
		return res, nil

	case *ast.Assign:
		v, err := in.Evaluate(e.Value)
		if err != nil {
			return types.Nil(), err
		}
		if err := in.env.Assign(e.Name, v); err != nil {
			return types.Nil(), runtimeError(e, err)
		}
		return v, nil

	default:
		return types.Nil(), fmt.Errorf("unexpected expression type %T", expr)
	}
}

// logical evaluates "and" and "or", skipping the right operand when the
// left one decides the result. Operand values are returned as they are.
func (in *Interpreter) logical(e *ast.Binary) (types.Value, error) {
	l, err := in.Evaluate(e.Left)
	if err != nil {
		return types.Nil(), err
	}
	if e.Op == ast.Or && l.Truthy() {
		return l, nil
	}
	if e.Op == ast.And && !l.Truthy() {
		return l, nil
	}
	return in.Evaluate(e.Right)
}

// runtimeError attaches the span of node to err, keeping an existing
// RuntimeError untouched.
func runtimeError(node ast.Node, err error) error {
	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		return err
	}
	return &RuntimeError{Span: node.Span(), Message: err.Error(), Err: err}
}
