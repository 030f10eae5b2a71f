// Package lexer provides ulox source code tokenization.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/coregx/coregex"

	"github.com/kolkov/ulox/internal/token"
	"github.com/kolkov/ulox/internal/types"
)

// Anchored rules for the multi-character lexemes. A fraction needs at
// least one digit after the dot, so "1." scans as NUMBER DOT and "1.2.3"
// as NUMBER DOT NUMBER.
var (
	numberRule = mustCompile(`^[0-9]+(\.[0-9]+)?`)
	identRule  = mustCompile(`^[A-Za-z_][A-Za-z0-9_]*`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("lexer: compile %q: %v", pattern, err))
	}
	return re
}

// Lexer tokenizes ulox source code.
type Lexer struct {
	src  []byte         // Source code
	text string         // Source as string, for rule matching
	pos  token.Position // Position of the next unread character
}

// New creates a new Lexer for the given source code.
func New(src []byte) *Lexer {
	return &Lexer{
		src:  src,
		text: string(src),
		pos:  token.Position{Line: 1, Column: 1},
	}
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// Token represents a scanned token with its span and value.
type Token struct {
	Kind   token.Kind
	Lexeme string     // Raw source text
	Span   token.Span // Characters consumed for this token

	// Literal is the unquoted text of a STRING token, or the error
	// message of an INVALID token.
	Literal string

	// Number is the value of a NUMBER token.
	Number float64
}

// String renders the token the way the tokenize command prints it:
// kind, lexeme and literal value ("null" when there is none).
func (t Token) String() string {
	literal := "null"
	switch t.Kind {
	case token.NUMBER:
		literal = types.FormatCanonicalNumber(t.Number)
	case token.STRING:
		literal = t.Literal
	}
	return fmt.Sprintf("%s %s %s", t.Kind, t.Lexeme, literal)
}

// Line returns the line reported for this token in diagnostics.
func (t Token) Line() int {
	return t.Span.Line()
}

// Err returns the lexical error carried by an INVALID token, or nil.
func (t Token) Err() error {
	if t.Kind != token.INVALID {
		return nil
	}
	return &Error{Span: t.Span, Message: t.Literal}
}

// Error is a lexical error reported in-band by an INVALID token.
type Error struct {
	Span    token.Span
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d]: Error: %s", e.Span.Line(), e.Message)
}

// Scan tokenizes src completely. The result always ends with an EOF
// token; lexical errors appear in-band as INVALID tokens and never stop
// the scan.
func Scan(src string) []Token {
	l := NewFromString(src)
	var toks []Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Errors collects the lexical errors of a token sequence.
func Errors(toks []Token) []*Error {
	var errs []*Error
	for _, tok := range toks {
		if tok.Kind == token.INVALID {
			errs = append(errs, &Error{Span: tok.Span, Message: tok.Literal})
		}
	}
	return errs
}

// Scan scans and returns the next token. After the end of input it keeps
// returning EOF.
func (l *Lexer) Scan() Token {
	l.skipWhitespace()

	start := l.pos
	if l.atEnd() {
		return Token{Kind: token.EOF, Span: token.MakeSpan(start, start)}
	}

	ch := l.advance()
	switch ch {
	case '(':
		return l.make(token.LEFT_PAREN, start)
	case ')':
		return l.make(token.RIGHT_PAREN, start)
	case '{':
		return l.make(token.LEFT_BRACE, start)
	case '}':
		return l.make(token.RIGHT_BRACE, start)
	case ',':
		return l.make(token.COMMA, start)
	case '.':
		return l.make(token.DOT, start)
	case ';':
		return l.make(token.SEMICOLON, start)
	case '+':
		return l.make(token.PLUS, start)
	case '-':
		return l.make(token.MINUS, start)
	case '*':
		return l.make(token.STAR, start)
	case '^':
		return l.make(token.CARET, start)
	case '/':
		return l.make(token.SLASH, start)

	case '=':
		if l.match('=') {
			return l.make(token.EQUAL_EQUAL, start)
		}
		return l.make(token.EQUAL, start)
	case '!':
		if l.match('=') {
			return l.make(token.BANG_EQUAL, start)
		}
		return l.make(token.BANG, start)
	case '<':
		if l.match('=') {
			return l.make(token.LESS_EQUAL, start)
		}
		return l.make(token.LESS, start)
	case '>':
		if l.match('=') {
			return l.make(token.GREATER_EQUAL, start)
		}
		return l.make(token.GREATER, start)

	case '"':
		return l.scanString(start)
	}

	if isDigit(ch) {
		return l.scanNumber(start)
	}
	if isIdentStart(ch) {
		return l.scanIdent(start)
	}
	return l.scanUnexpected(start, ch)
}

func (l *Lexer) scanString(start token.Position) Token {
	for !l.atEnd() && l.peek() != '"' {
		l.advance()
	}
	if l.atEnd() {
		tok := l.make(token.INVALID, start)
		tok.Literal = "Unterminated string."
		return tok
	}
	l.advance() // closing quote

	tok := l.make(token.STRING, start)
	tok.Literal = tok.Lexeme[1 : len(tok.Lexeme)-1]
	return tok
}

func (l *Lexer) scanNumber(start token.Position) Token {
	loc := numberRule.FindStringIndex(l.text[start.Offset:])
	l.advanceTo(start.Offset + loc[1])

	tok := l.make(token.NUMBER, start)
	n, err := types.ParseNumber(tok.Lexeme)
	if err != nil {
		tok.Kind = token.INVALID
		tok.Literal = fmt.Sprintf("Invalid number: %s", tok.Lexeme)
		return tok
	}
	tok.Number = n
	return tok
}

func (l *Lexer) scanIdent(start token.Position) Token {
	loc := identRule.FindStringIndex(l.text[start.Offset:])
	l.advanceTo(start.Offset + loc[1])

	tok := l.make(token.IDENTIFIER, start)
	tok.Kind = token.LookupIdent(tok.Lexeme)
	return tok
}

// scanUnexpected reports a character no rule accepts. A multi-byte UTF-8
// character is consumed and reported whole.
func (l *Lexer) scanUnexpected(start token.Position, ch byte) Token {
	r := rune(ch)
	if ch >= utf8.RuneSelf {
		var size int
		r, size = utf8.DecodeRune(l.src[start.Offset:])
		l.advanceTo(start.Offset + size)
	}
	tok := l.make(token.INVALID, start)
	tok.Literal = fmt.Sprintf("Unexpected character: %c", r)
	return tok
}

// make builds a token spanning from start to the current position.
func (l *Lexer) make(kind token.Kind, start token.Position) Token {
	return Token{
		Kind:   kind,
		Lexeme: l.text[start.Offset:l.pos.Offset],
		Span:   token.MakeSpan(start, l.pos),
	}
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '/':
			if l.peekNext() != '/' {
				return
			}
			l.skipComment()
		default:
			return
		}
	}
}

// skipComment discards a // comment up to, but not including, the newline.
func (l *Lexer) skipComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos.Offset >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos.Offset]
}

func (l *Lexer) peekNext() byte {
	if l.pos.Offset+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos.Offset+1]
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

// advance consumes one byte, keeping line and column current.
func (l *Lexer) advance() byte {
	ch := l.src[l.pos.Offset]
	l.pos.Offset++
	if ch == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	return ch
}

func (l *Lexer) advanceTo(offset int) {
	for l.pos.Offset < offset {
		l.advance()
	}
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
