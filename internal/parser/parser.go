package parser

import (
	"github.com/ahrtr/gocontainer/set"
	"github.com/edwingeng/deque"

	"github.com/kolkov/ulox/internal/ast"
	"github.com/kolkov/ulox/internal/lexer"
	"github.com/kolkov/ulox/internal/token"
	"github.com/kolkov/ulox/internal/types"
)

// unsupported holds the reserved keywords the language does not implement.
// They scan as keywords but cannot start an expression.
var unsupported = keywordSet(
	token.CLASS, token.FUN, token.FOR, token.WHILE,
	token.RETURN, token.SUPER, token.THIS,
)

func keywordSet(kinds ...token.Kind) set.Interface {
	s := set.New()
	for _, kind := range kinds {
		s.Add(kind)
	}
	return s
}

// Operator tables per precedence level.
var (
	exponentOps = map[token.Kind]ast.BinaryOp{
		token.CARET: ast.Pow,
	}
	factorOps = map[token.Kind]ast.BinaryOp{
		token.STAR:  ast.Mul,
		token.SLASH: ast.Div,
	}
	termOps = map[token.Kind]ast.BinaryOp{
		token.PLUS:  ast.Add,
		token.MINUS: ast.Sub,
	}
	equalityOps = map[token.Kind]ast.BinaryOp{
		token.EQUAL_EQUAL:   ast.Eq,
		token.BANG_EQUAL:    ast.NEq,
		token.LESS:          ast.L,
		token.GREATER:       ast.G,
		token.LESS_EQUAL:    ast.LEq,
		token.GREATER_EQUAL: ast.GEq,
	}
	andOps = map[token.Kind]ast.BinaryOp{
		token.AND: ast.And,
	}
	orOps = map[token.Kind]ast.BinaryOp{
		token.OR: ast.Or,
	}
)

// Parser is a recursive descent parser over a token queue. Tokens are
// taken from the front of the queue and never pushed back.
type Parser struct {
	toks     deque.Deque // Pending tokens; the front is the current token
	eof      lexer.Token // Returned once the queue is drained
	consumed int         // Number of tokens taken so far
}

// New creates a parser for tokens. Tokens after the first EOF are
// ignored; a missing EOF is synthesized at the end of the last token.
func New(tokens []lexer.Token) *Parser {
	q := deque.NewDeque()
	var eof lexer.Token
	for _, tok := range tokens {
		if tok.Kind == token.EOF {
			eof = tok
			break
		}
		q.PushBack(tok)
		eof = lexer.Token{Kind: token.EOF, Span: token.MakeSpan(tok.Span.To, tok.Span.To)}
	}
	if eof.Kind != token.EOF {
		eof = lexer.Token{Kind: token.EOF, Span: token.MakeSpan(
			token.Position{Line: 1, Column: 1}, token.Position{Line: 1, Column: 1})}
	}
	return &Parser{toks: q, eof: eof}
}

// ParseStatements parses a complete program from tokens.
func ParseStatements(tokens []lexer.Token) ([]ast.Stmt, error) {
	return New(tokens).ParseStatements()
}

// ParseExpr parses a single expression from tokens.
func ParseExpr(tokens []lexer.Token) (ast.Expr, error) {
	return New(tokens).ParseExpr()
}

// Parse scans and parses a program from source code.
func Parse(src string) ([]ast.Stmt, error) {
	return ParseStatements(lexer.Scan(src))
}

// ParseExprString scans and parses a single expression (useful for testing).
func ParseExprString(src string) (ast.Expr, error) {
	return ParseExpr(lexer.Scan(src))
}

// ParseStatements parses statements until the end of input.
func (p *Parser) ParseStatements() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for p.peek().Kind != token.EOF {
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// ParseExpr parses one expression, optionally followed by a semicolon,
// that must make up the whole input.
func (p *Parser) ParseExpr() (ast.Expr, error) {
	expr, err := p.assignment()
	if err != nil {
		return nil, err
	}
	p.match(token.SEMICOLON)
	if tok := p.peek(); tok.Kind != token.EOF {
		return nil, p.unexpected(tok, "Expect end of expression.")
	}
	return expr, nil
}

// Consumed returns the number of tokens taken from the input so far.
func (p *Parser) Consumed() int {
	return p.consumed
}

// -----------------------------------------------------------------------------
// Token handling
// -----------------------------------------------------------------------------

// peek returns the current token without consuming it.
func (p *Parser) peek() lexer.Token {
	if p.toks.Empty() {
		return p.eof
	}
	return p.toks.Front().(lexer.Token)
}

// next consumes and returns the current token. At the end of input it
// keeps returning EOF.
func (p *Parser) next() lexer.Token {
	if p.toks.Empty() {
		return p.eof
	}
	p.consumed++
	return p.toks.PopFront().(lexer.Token)
}

// match consumes the current token if it has the given kind.
func (p *Parser) match(kind token.Kind) (lexer.Token, bool) {
	if tok := p.peek(); tok.Kind == kind {
		return p.next(), true
	}
	return lexer.Token{}, false
}

// expect consumes a token of the given kind or fails with msg.
func (p *Parser) expect(kind token.Kind, msg string) (lexer.Token, error) {
	tok := p.peek()
	if tok.Kind != kind {
		return tok, p.unexpected(tok, msg)
	}
	return p.next(), nil
}

// unexpected builds the error for tok. An INVALID token always reports its
// lexical message.
func (p *Parser) unexpected(tok lexer.Token, msg string) *ParseError {
	if tok.Kind == token.INVALID {
		return errorf(tok.Span, "%s", tok.Literal)
	}
	return errorf(tok.Span, "%s", msg)
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

// statement parses one statement and its optional trailing semicolon.
func (p *Parser) statement() (ast.Stmt, error) {
	var (
		stmt ast.Stmt
		err  error
	)
	switch p.peek().Kind {
	case token.PRINT:
		stmt, err = p.printStmt()
	case token.VAR:
		stmt, err = p.varDecl()
	case token.LEFT_BRACE:
		stmt, err = p.block()
	case token.IF:
		stmt, err = p.ifStmt()
	default:
		stmt, err = p.exprStmt()
	}
	if err != nil {
		return nil, err
	}
	p.match(token.SEMICOLON)
	return stmt, nil
}

func (p *Parser) printStmt() (ast.Stmt, error) {
	kw := p.next()
	x, err := p.assignment()
	if err != nil {
		return nil, err
	}
	return &ast.PrintStmt{
		BaseStmt: ast.MakeBaseStmt(token.Range(kw.Span, x.Span())),
		X:        x,
	}, nil
}

func (p *Parser) varDecl() (ast.Stmt, error) {
	kw := p.next()
	name, err := p.expect(token.IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}

	var init ast.Expr
	if _, ok := p.match(token.EQUAL); ok {
		if init, err = p.assignment(); err != nil {
			return nil, err
		}
	} else {
		init = &ast.Literal{BaseExpr: ast.MakeBaseExpr(name.Span), Value: types.Nil()}
	}
	return &ast.VarDecl{
		BaseStmt: ast.MakeBaseStmt(token.Range(kw.Span, init.Span())),
		Name:     name.Lexeme,
		Init:     init,
	}, nil
}

func (p *Parser) block() (ast.Stmt, error) {
	open := p.next()
	var stmts []ast.Stmt
	for {
		switch tok := p.peek(); tok.Kind {
		case token.RIGHT_BRACE:
			closing := p.next()
			return &ast.Block{
				BaseStmt: ast.MakeBaseStmt(token.Range(open.Span, closing.Span)),
				Stmts:    stmts,
			}, nil
		case token.EOF:
			return nil, errorf(tok.Span, "Expect '}'.")
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) ifStmt() (ast.Stmt, error) {
	kw := p.next()
	if _, err := p.expect(token.LEFT_PAREN, "Expect '(' after 'if'."); err != nil {
		return nil, err
	}
	cond, err := p.assignment()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RIGHT_PAREN, "Expect ')' after if condition."); err != nil {
		return nil, err
	}

	then, err := p.statement()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{
		BaseStmt: ast.MakeBaseStmt(token.Range(kw.Span, then.Span())),
		Cond:     cond,
		Then:     then,
	}
	if _, ok := p.match(token.ELSE); ok {
		if stmt.Else, err = p.statement(); err != nil {
			return nil, err
		}
		stmt.Range = token.Range(kw.Span, stmt.Else.Span())
	}
	return stmt, nil
}

func (p *Parser) exprStmt() (ast.Stmt, error) {
	x, err := p.assignment()
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{BaseStmt: ast.MakeBaseStmt(x.Span()), X: x}, nil
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

// assignment parses a right-associative assignment. The target must be a
// plain identifier.
func (p *Parser) assignment() (ast.Expr, error) {
	left, err := p.or()
	if err != nil {
		return nil, err
	}
	eq, ok := p.match(token.EQUAL)
	if !ok {
		return left, nil
	}
	value, err := p.assignment()
	if err != nil {
		return nil, err
	}
	target, ok := left.(*ast.Ident)
	if !ok {
		return nil, errorf(eq.Span, "Invalid assignment target.")
	}
	return &ast.Assign{
		BaseExpr: ast.MakeBaseExpr(token.Range(left.Span(), value.Span())),
		Name:     target.Name,
		Value:    value,
	}, nil
}

func (p *Parser) or() (ast.Expr, error)       { return p.binaryLeft(p.and, orOps) }
func (p *Parser) and() (ast.Expr, error)      { return p.binaryLeft(p.equality, andOps) }
func (p *Parser) equality() (ast.Expr, error) { return p.binaryLeft(p.term, equalityOps) }
func (p *Parser) term() (ast.Expr, error)     { return p.binaryLeft(p.factor, termOps) }
func (p *Parser) factor() (ast.Expr, error)   { return p.binaryLeft(p.exponent, factorOps) }
func (p *Parser) exponent() (ast.Expr, error) { return p.binaryLeft(p.primary, exponentOps) }

// binaryLeft parses a left-associative chain of the operators in ops,
// with operands parsed by higher.
func (p *Parser) binaryLeft(higher func() (ast.Expr, error), ops map[token.Kind]ast.BinaryOp) (ast.Expr, error) {
	left, err := higher()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.peek().Kind]
		if !ok {
			return left, nil
		}
		p.next()
		right, err := higher()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{
			BaseExpr: ast.MakeBaseExpr(token.Range(left.Span(), right.Span())),
			Left:     left,
			Op:       op,
			Right:    right,
		}
	}
}

func (p *Parser) primary() (ast.Expr, error) {
	tok := p.peek()
	lit := func(v types.Value) (ast.Expr, error) {
		p.next()
		return &ast.Literal{BaseExpr: ast.MakeBaseExpr(tok.Span), Value: v}, nil
	}

	switch tok.Kind {
	case token.NUMBER:
		return lit(types.Number(tok.Number))
	case token.STRING:
		return lit(types.String(tok.Literal))
	case token.TRUE:
		return lit(types.Boolean(true))
	case token.FALSE:
		return lit(types.Boolean(false))
	case token.NIL:
		return lit(types.Nil())

	case token.IDENTIFIER:
		p.next()
		return &ast.Ident{BaseExpr: ast.MakeBaseExpr(tok.Span), Name: tok.Lexeme}, nil

	case token.LEFT_PAREN:
		return p.group()

	case token.BANG, token.MINUS:
		return p.unary()
	}

	if unsupported.Contains(tok.Kind) {
		return nil, errorf(tok.Span, "Unsupported keyword '%s'.", tok.Lexeme)
	}
	return nil, p.unexpected(tok, "Expect expression.")
}

// unary parses a prefix operator applied to a primary.
func (p *Parser) unary() (ast.Expr, error) {
	opTok := p.next()
	op := ast.Neg
	if opTok.Kind == token.BANG {
		op = ast.Not
	}
	x, err := p.primary()
	if err != nil {
		return nil, err
	}
	return &ast.Unary{
		BaseExpr: ast.MakeBaseExpr(token.Range(opTok.Span, x.Span())),
		Op:       op,
		X:        x,
	}, nil
}

// group drains the tokens between "(" and its matching ")" into a new
// queue and parses them with a sub-parser at assignment level.
func (p *Parser) group() (ast.Expr, error) {
	open := p.next()
	inner := deque.NewDeque()
	depth := 1
	var closing lexer.Token
	for depth > 0 {
		tok := p.peek()
		if tok.Kind == token.EOF {
			return nil, errorf(open.Span, "Unescaped parenthesis")
		}
		p.next()
		switch tok.Kind {
		case token.LEFT_PAREN:
			depth++
		case token.RIGHT_PAREN:
			depth--
		}
		if depth == 0 {
			closing = tok
			break
		}
		inner.PushBack(tok)
	}

	sub := &Parser{
		toks: inner,
		eof:  lexer.Token{Kind: token.EOF, Span: token.MakeSpan(closing.Span.From, closing.Span.From)},
	}
	x, err := sub.assignment()
	if err != nil {
		return nil, err
	}
	if tok := sub.peek(); tok.Kind != token.EOF {
		return nil, sub.unexpected(tok, "Expect ')' after expression.")
	}
	return &ast.Group{
		BaseExpr: ast.MakeBaseExpr(token.Range(open.Span, closing.Span)),
		X:        x,
	}, nil
}
