package syntax

import (
	"strings"

	"physc/ast"
)

// decl := defvar_decl | define_decl | boundary_decl | symmetry_decl ;
func (p *Parser) parseDecl() ast.ASTNode {
	cmdTok := p.want(TOK_COMMAND)

	switch cmdTok.Value {
	case `\defvar`:
		return p.parseDefVar(cmdTok)
	case `\define`:
		return p.parseDefine(cmdTok)
	case `\boundary`:
		return p.parseBoundary(cmdTok)
	case `\symmetry`:
		return p.parseSymmetry(cmdTok)
	default:
		p.rejectWithMsg("unknown command: `%s`", cmdTok.Value)
		return nil
	}
}

// defvar_decl := '\defvar' '{' 'IDENT' '}' '{' 'IDENT' '}' '{' unit_expr '}' ;
func (p *Parser) parseDefVar(cmdTok *Token) *ast.VarDecl {
	open := p.want(TOK_LBRACE)
	nameTok := p.want(TOK_IDENT)
	p.wantClosing(TOK_RBRACE, open)

	open = p.want(TOK_LBRACE)
	typeTok := p.want(TOK_IDENT)
	p.wantClosing(TOK_RBRACE, open)

	// The unit literal uses the expression grammar: a compound unit such as
	// `kg*m/s^2` parses into an expression tree the checker evaluates over
	// the unit table.
	open = p.want(TOK_LBRACE)
	unit := p.parseExpr()
	p.wantClosing(TOK_RBRACE, open)

	return &ast.VarDecl{
		ASTBase:  ast.NewASTBaseOver(cmdTok.Span, p.lookbehind.Span),
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
		TypeName: typeTok.Value,
		Unit:     unit,
	}
}

// define_decl := '\define' '{' lhs_descriptor '=' expr '}' ;
func (p *Parser) parseDefine(cmdTok *Token) *ast.Equation {
	open := p.want(TOK_LBRACE)

	lhs := p.parseLhsDescriptor()

	p.want(TOK_ASSIGN)

	rhs := p.parseExpr()

	p.wantClosing(TOK_RBRACE, open)

	return &ast.Equation{
		ASTBase: ast.NewASTBaseOver(cmdTok.Span, p.lookbehind.Span),
		Lhs:     lhs,
		Rhs:     rhs,
	}
}

// lhs_descriptor := ('\op' '{' 'IDENT' '}' | 'IDENT') ['(' ident_list ')'] ;
// ident_list := 'IDENT' {',' 'IDENT'} ;
func (p *Parser) parseLhsDescriptor() *ast.LhsDescriptor {
	var nameTok *Token
	if p.has(TOK_COMMAND) && p.tok.Value == `\op` {
		p.next()

		open := p.want(TOK_LBRACE)
		nameTok = p.want(TOK_IDENT)
		p.wantClosing(TOK_RBRACE, open)
	} else {
		nameTok = p.want(TOK_IDENT)
	}

	lhs := &ast.LhsDescriptor{
		Name:     nameTok.Value,
		NameSpan: nameTok.Span,
	}

	if p.has(TOK_LPAREN) {
		open := p.tok
		p.next()

		for {
			argTok := p.want(TOK_IDENT)

			arg := &ast.Identifier{
				ExprBase: ast.NewExprBase(argTok.Span),
				Name:     argTok.Value,
			}
			lhs.Args = append(lhs.Args, arg)

			if p.has(TOK_COMMA) {
				p.next()
				continue
			}

			break
		}

		p.wantClosing(TOK_RPAREN, open)
	}

	return lhs
}

// boundary_decl := '\boundary' '{' 'IDENT' '}' ;
func (p *Parser) parseBoundary(cmdTok *Token) *ast.Boundary {
	open := p.want(TOK_LBRACE)
	nameTok := p.want(TOK_IDENT)
	p.wantClosing(TOK_RBRACE, open)

	return &ast.Boundary{
		ASTBase: ast.NewASTBaseOver(cmdTok.Span, p.lookbehind.Span),
		VarName: nameTok.Value,
		VarSpan: nameTok.Span,
	}
}

// symmetry_decl := '\symmetry' '{' <verbatim text> '}' ;
//
// The brace contents are captured verbatim rather than re-parsed as an
// expression: no grammar is imposed on symmetry text.
func (p *Parser) parseSymmetry(cmdTok *Token) *ast.Symmetry {
	open := p.want(TOK_LBRACE)

	var parts []string
	depth := 1
	for {
		switch p.tok.Kind {
		case TOK_EOF:
			p.wantClosing(TOK_RBRACE, open)
		case TOK_LBRACE:
			depth++
		case TOK_RBRACE:
			depth--
		}

		if depth == 0 {
			break
		}

		parts = append(parts, p.tok.Value)
		p.next()
	}

	p.want(TOK_RBRACE)

	return &ast.Symmetry{
		ASTBase: ast.NewASTBaseOver(cmdTok.Span, p.lookbehind.Span),
		Text:    strings.Join(parts, " "),
	}
}
