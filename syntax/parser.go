package syntax

import (
	"physc/ast"
	"physc/report"
)

// Parser is the parser for a physc source text.  It is a recursive descent
// parser: it moves over the text token by token and decides what to parse
// based on the token it is currently positioned on and its context (implicit
// from the call stack of parsing functions).  All parsing functions assume
// that they begin with the parser centered on the first token of their
// production and must consume all tokens (including the last) of their
// production, leaving the parser on the next token.  Syntax errors are fatal:
// the parser stops at the first error, since the structure of later tokens
// is meaningless once the command structure is broken.
type Parser struct {
	// lexer is the Lexer this parser is using to lex the source text.
	lexer *Lexer

	// tok is the current token the parser is positioned on.
	tok *Token

	// lookbehind is the token before the current token.
	lookbehind *Token
}

// Parse parses a source text into its sequence of declarations.  The
// returned error, if non-nil, is a single `*report.Diagnostic` of kind
// LexError or ParseError.
func Parse(source string) (decls []ast.ASTNode, err error) {
	defer func() {
		if x := recover(); x != nil {
			if d, ok := x.(*report.Diagnostic); ok {
				decls = nil
				err = d
			} else {
				panic(x)
			}
		}
	}()

	p := &Parser{lexer: NewLexer(source)}

	// Move the parser onto the first token.
	p.next()

	for !p.has(TOK_EOF) {
		decls = append(decls, p.parseDecl())
	}

	return decls, nil
}

// -----------------------------------------------------------------------------

// next moves the parser forward one token.
func (p *Parser) next() {
	tok, err := p.lexer.NextToken()
	if err != nil {
		panic(err)
	}

	p.lookbehind = p.tok
	p.tok = tok
}

// has returns whether the parser is on a token of the given kind.
func (p *Parser) has(kind int) bool {
	return p.tok.Kind == kind
}

// want asserts that the parser is on a token of the given kind, rejecting
// the token if not.  It returns the matched token and moves the parser
// forward.
func (p *Parser) want(kind int) *Token {
	if !p.has(kind) {
		p.reject()
	}

	tok := p.tok
	p.next()
	return tok
}

// wantClosing asserts that the parser is on the closing delimiter matching
// the given opening token.  A mismatch is reported as an unmatched-delimiter
// error on the opening token rather than a generic unexpected-token error.
func (p *Parser) wantClosing(kind int, open *Token) *Token {
	if !p.has(kind) {
		panic(report.Raise(
			report.ParseError,
			open.Span,
			"unmatched `%s` opened at line %d, column %d",
			open.Value,
			open.Span.StartLine+1,
			open.Span.StartCol+1,
		))
	}

	tok := p.tok
	p.next()
	return tok
}

// -----------------------------------------------------------------------------

// reject reports an unexpected token error on the current token.
func (p *Parser) reject() {
	if p.has(TOK_EOF) {
		p.rejectWithMsg("unexpected end of input")
	}

	p.rejectWithMsg("unexpected token: `%s`", p.tok.Value)
}

// rejectWithMsg rejects the current token with a specific message.  The
// function takes a message and arguments to format into it.
func (p *Parser) rejectWithMsg(msg string, args ...interface{}) {
	panic(report.Raise(report.ParseError, p.tok.Span, msg, args...))
}
