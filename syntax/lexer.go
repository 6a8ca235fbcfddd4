package syntax

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"physc/report"
)

// Lexer is responsible for tokenizing a source text.  Lexing is pure: the
// lexer reads only from the in-memory source string and performs no I/O.
type Lexer struct {
	src     *bufio.Reader
	tokBuff *strings.Builder

	line, col           int
	startLine, startCol int
}

// NewLexer creates a new lexer for the given source text.
func NewLexer(source string) *Lexer {
	return &Lexer{
		src:     bufio.NewReader(strings.NewReader(source)),
		tokBuff: &strings.Builder{},
	}
}

// NextToken retrieves the next token from the source text.  If the text has
// ended, this will be an EOF token.  The returned error is always a
// `*report.Diagnostic` of kind LexError: the lexer stops at the first illegal
// character and does not attempt recovery.
func (l *Lexer) NextToken() (*Token, error) {
	for {
		c := l.peek()
		if c == -1 {
			break
		}

		switch c {
		case '\n', '\t', ' ', '\r', '\v', '\f':
			l.skip()
		case '\\':
			return l.lexCommand()
		default:
			if isDecimalDigit(c) {
				return l.lexNumericLit()
			} else if isFirstIdentChar(c) {
				return l.lexIdent()
			} else {
				return l.lexPunctOrOper()
			}
		}
	}

	l.mark()
	return l.makeToken(TOK_EOF), nil
}

// Tokenize converts a source text into its full token sequence.  The sequence
// always ends with an EOF token so a consumer never reads past the end.
func Tokenize(source string) ([]*Token, error) {
	l := NewLexer(source)

	var toks []*Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}

		toks = append(toks, tok)

		if tok.Kind == TOK_EOF {
			return toks, nil
		}
	}
}

// -----------------------------------------------------------------------------

// symbolPatterns maps symbol strings (patterns) to their punctuation/operator
// token kind.
var symbolPatterns = map[string]int{
	"+": TOK_PLUS,
	"-": TOK_MINUS,
	"*": TOK_STAR,
	"/": TOK_DIV,
	"^": TOK_POW,

	"=": TOK_ASSIGN,
	",": TOK_COMMA,

	"(": TOK_LPAREN,
	")": TOK_RPAREN,
	"{": TOK_LBRACE,
	"}": TOK_RBRACE,
}

// lexPunctOrOper lexes a punctuation or operator symbol.
func (l *Lexer) lexPunctOrOper() (*Token, error) {
	l.mark()
	c := l.eat()

	kind, ok := symbolPatterns[string(c)]
	if !ok {
		return nil, report.Raise(report.LexError, l.getSpan(), "illegal character: `%c`", c)
	}

	return l.makeToken(kind), nil
}

// lexCommand lexes a backslash-prefixed command name.  The backslash is kept
// as part of the token value.
func (l *Lexer) lexCommand() (*Token, error) {
	l.mark()
	l.eat()

	if c := l.peek(); c == -1 || !unicode.IsLetter(c) {
		return nil, report.Raise(report.LexError, l.getSpan(), "expected command name after `\\`")
	}

	for unicode.IsLetter(l.peek()) {
		l.eat()
	}

	return l.makeToken(TOK_COMMAND), nil
}

// lexIdent lexes an identifier.
func (l *Lexer) lexIdent() (*Token, error) {
	l.mark()
	l.eat()

	for {
		c := l.peek()
		if !isFirstIdentChar(c) && !isDecimalDigit(c) {
			break
		}

		l.eat()
	}

	return l.makeToken(TOK_IDENT), nil
}

// lexNumericLit lexes a numeric literal: an integer or a decimal.  Exponent
// notation is not supported.
func (l *Lexer) lexNumericLit() (*Token, error) {
	l.mark()
	l.eat()

	for isDecimalDigit(l.peek()) {
		l.eat()
	}

	if l.peek() == '.' {
		l.eat()

		if !isDecimalDigit(l.peek()) {
			return nil, report.Raise(report.LexError, l.getSpan(), "incomplete numeric literal")
		}

		for isDecimalDigit(l.peek()) {
			l.eat()
		}
	}

	return l.makeToken(TOK_NUMLIT), nil
}

// -----------------------------------------------------------------------------

// mark sets the lexer's stored start line and column to its current position.
func (l *Lexer) mark() {
	l.startLine = l.line
	l.startCol = l.col
}

// makeToken produces a new token of the given kind from the lexer's state and
// resets the lexer to begin building the next token.
func (l *Lexer) makeToken(kind int) *Token {
	value := l.tokBuff.String()
	l.tokBuff.Reset()

	return &Token{
		Kind:  kind,
		Value: value,
		Span:  l.getSpan(),
	}
}

// getSpan calculates a text span based on the lexer's current state.
func (l *Lexer) getSpan() *report.TextSpan {
	return &report.TextSpan{
		StartLine: l.startLine,
		StartCol:  l.startCol,
		EndLine:   l.line,
		EndCol:    l.col,
	}
}

// -----------------------------------------------------------------------------

// eat moves the lexer forward one rune and writes the rune to the token
// buffer.  If the lexer encounters the end of the source, -1 is returned as
// the rune value.
func (l *Lexer) eat() rune {
	c, _, err := l.src.ReadRune()
	if err == io.EOF {
		return -1
	}

	l.updatePos(c)
	l.tokBuff.WriteRune(c)

	return c
}

// skip moves the lexer forward one rune but does not write the rune to the
// token buffer.
func (l *Lexer) skip() rune {
	c, _, err := l.src.ReadRune()
	if err == io.EOF {
		return -1
	}

	l.updatePos(c)

	return c
}

// peek returns the next rune in the source without moving the lexer forward.
// If the lexer encounters the end of the source, -1 is returned as the rune
// value.
func (l *Lexer) peek() rune {
	c, _, err := l.src.ReadRune()
	if err == io.EOF {
		return -1
	}

	l.src.UnreadRune()

	return c
}

// updatePos updates the lexer's position based on the input character.
func (l *Lexer) updatePos(c rune) {
	switch c {
	case '\n':
		l.line++
		l.col = 0
	case '\t':
		l.col += 4
	default:
		l.col++
	}
}

// -----------------------------------------------------------------------------

// isDecimalDigit returns whether c is a decimal digit.
func isDecimalDigit(c rune) bool {
	return '0' <= c && c <= '9'
}

// isFirstIdentChar returns whether c could be the first rune of an
// identifier.
func isFirstIdentChar(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}
