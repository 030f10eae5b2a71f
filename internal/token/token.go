// Package token defines lexical tokens for ulox.
package token

// Kind represents a lexical token type.
type Kind uint8

const (
	// Special tokens
	INVALID Kind = iota // INVALID
	EOF                 // EOF

	// Punctuation and operators
	operatorStart
	LEFT_PAREN    // (
	RIGHT_PAREN   // )
	LEFT_BRACE    // {
	RIGHT_BRACE   // }
	COMMA         // ,
	DOT           // .
	SEMICOLON     // ;
	PLUS          // +
	MINUS         // -
	STAR          // *
	SLASH         // /
	CARET         // ^
	EQUAL         // =
	EQUAL_EQUAL   // ==
	BANG          // !
	BANG_EQUAL    // !=
	LESS          // <
	LESS_EQUAL    // <=
	GREATER       // >
	GREATER_EQUAL // >=
	operatorEnd

	// Keywords
	keywordStart
	AND    // and
	CLASS  // class
	ELSE   // else
	FALSE  // false
	FOR    // for
	FUN    // fun
	IF     // if
	NIL    // nil
	OR     // or
	PRINT  // print
	RETURN // return
	SUPER  // super
	THIS   // this
	TRUE   // true
	VAR    // var
	WHILE  // while
	keywordEnd

	// Literals
	NUMBER     // number
	STRING     // string
	IDENTIFIER // identifier
)

var names = [...]string{
	INVALID:       "INVALID",
	EOF:           "EOF",
	LEFT_PAREN:    "LEFT_PAREN",
	RIGHT_PAREN:   "RIGHT_PAREN",
	LEFT_BRACE:    "LEFT_BRACE",
	RIGHT_BRACE:   "RIGHT_BRACE",
	COMMA:         "COMMA",
	DOT:           "DOT",
	SEMICOLON:     "SEMICOLON",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	STAR:          "STAR",
	SLASH:         "SLASH",
	CARET:         "CARET",
	EQUAL:         "EQUAL",
	EQUAL_EQUAL:   "EQUAL_EQUAL",
	BANG:          "BANG",
	BANG_EQUAL:    "BANG_EQUAL",
	LESS:          "LESS",
	LESS_EQUAL:    "LESS_EQUAL",
	GREATER:       "GREATER",
	GREATER_EQUAL: "GREATER_EQUAL",
	AND:           "AND",
	CLASS:         "CLASS",
	ELSE:          "ELSE",
	FALSE:         "FALSE",
	FOR:           "FOR",
	FUN:           "FUN",
	IF:            "IF",
	NIL:           "NIL",
	OR:            "OR",
	PRINT:         "PRINT",
	RETURN:        "RETURN",
	SUPER:         "SUPER",
	THIS:          "THIS",
	TRUE:          "TRUE",
	VAR:           "VAR",
	WHILE:         "WHILE",
	NUMBER:        "NUMBER",
	STRING:        "STRING",
	IDENTIFIER:    "IDENTIFIER",
}

// String returns the upper-case name of the kind, as shown by the
// tokenize command (e.g. "LEFT_PAREN").
func (k Kind) String() string {
	if int(k) < len(names) && names[k] != "" {
		return names[k]
	}
	return "UNKNOWN"
}

// IsOperator returns true if the token is punctuation or an operator.
func (k Kind) IsOperator() bool {
	return k > operatorStart && k < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (k Kind) IsKeyword() bool {
	return k > keywordStart && k < keywordEnd
}

// IsLiteral returns true if the token is a literal (number, string, identifier).
func (k Kind) IsLiteral() bool {
	return k == NUMBER || k == STRING || k == IDENTIFIER
}

// keywords maps keyword strings to their token types.
var keywords = map[string]Kind{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

// LookupIdent returns the token type for a given identifier.
// Returns a keyword token if found, otherwise IDENTIFIER.
func LookupIdent(ident string) Kind {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENTIFIER
}

// LookupKeyword returns the token type for a keyword, or INVALID if not found.
func LookupKeyword(name string) Kind {
	if tok, ok := keywords[name]; ok {
		return tok
	}
	return INVALID
}
