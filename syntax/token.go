package syntax

import "physc/report"

// Token represents a single lexical token.
type Token struct {
	// The kind of the token.  This must be one of the enumerated token kinds.
	Kind int

	// The string value of the token.  Command tokens keep their leading
	// backslash: eg. the value of the token for `\defvar` is `\defvar`.
	Value string

	// The text span over which the token exists.
	Span *report.TextSpan
}

// Enumeration of token kinds.
const (
	TOK_COMMAND = iota

	TOK_IDENT
	TOK_NUMLIT

	TOK_PLUS
	TOK_MINUS
	TOK_STAR
	TOK_DIV
	TOK_POW

	TOK_ASSIGN
	TOK_COMMA

	TOK_LPAREN
	TOK_RPAREN
	TOK_LBRACE
	TOK_RBRACE

	TOK_EOF
)
