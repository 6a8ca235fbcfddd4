package syntax

import (
	"physc/ast"
	"physc/report"
)

// expr := term {('+' | '-') term} ;
func (p *Parser) parseExpr() ast.ASTExpr {
	lhs := p.parseTerm()

	for p.has(TOK_PLUS) || p.has(TOK_MINUS) {
		opTok := p.tok
		p.next()

		rhs := p.parseTerm()

		lhs = &ast.BinaryOp{
			ExprBase: ast.NewExprBase(report.NewSpanOver(lhs.Span(), rhs.Span())),
			Op:       ast.Oper{Kind: opTok.Kind, Name: opTok.Value, Span: opTok.Span},
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs
}

// term := unary_expr {('*' | '/') unary_expr} ;
func (p *Parser) parseTerm() ast.ASTExpr {
	lhs := p.parseUnaryExpr()

	for p.has(TOK_STAR) || p.has(TOK_DIV) {
		opTok := p.tok
		p.next()

		rhs := p.parseUnaryExpr()

		lhs = &ast.BinaryOp{
			ExprBase: ast.NewExprBase(report.NewSpanOver(lhs.Span(), rhs.Span())),
			Op:       ast.Oper{Kind: opTok.Kind, Name: opTok.Value, Span: opTok.Span},
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs
}

// unary_expr := '-' unary_expr | power_expr ;
func (p *Parser) parseUnaryExpr() ast.ASTExpr {
	if p.has(TOK_MINUS) {
		opTok := p.tok
		p.next()

		operand := p.parseUnaryExpr()

		return &ast.UnaryOp{
			ExprBase: ast.NewExprBase(report.NewSpanOver(opTok.Span, operand.Span())),
			Op:       ast.Oper{Kind: opTok.Kind, Name: opTok.Value, Span: opTok.Span},
			Operand:  operand,
		}
	}

	return p.parsePowerExpr()
}

// power_expr := atom_expr ['^' unary_expr] ;
//
// Power is right associative: `a^b^c` parses as `a^(b^c)`.  The recursion
// back through unary_expr also admits negated exponents such as `T^-2`.
func (p *Parser) parsePowerExpr() ast.ASTExpr {
	lhs := p.parseAtomExpr()

	if p.has(TOK_POW) {
		opTok := p.tok
		p.next()

		rhs := p.parseUnaryExpr()

		return &ast.BinaryOp{
			ExprBase: ast.NewExprBase(report.NewSpanOver(lhs.Span(), rhs.Span())),
			Op:       ast.Oper{Kind: opTok.Kind, Name: opTok.Value, Span: opTok.Span},
			Lhs:      lhs,
			Rhs:      rhs,
		}
	}

	return lhs
}

// atom_expr := 'NUMLIT' | 'IDENT' ['(' expr {',' expr} ')'] | '(' expr ')' ;
func (p *Parser) parseAtomExpr() ast.ASTExpr {
	switch p.tok.Kind {
	case TOK_NUMLIT:
		tok := p.tok
		p.next()

		return &ast.Literal{
			ExprBase: ast.NewExprBase(tok.Span),
			Value:    tok.Value,
		}
	case TOK_IDENT:
		tok := p.tok
		p.next()

		if p.has(TOK_LPAREN) {
			return p.parseCallTrailer(tok)
		}

		return &ast.Identifier{
			ExprBase: ast.NewExprBase(tok.Span),
			Name:     tok.Value,
		}
	case TOK_LPAREN:
		open := p.tok
		p.next()

		expr := p.parseExpr()

		p.wantClosing(TOK_RPAREN, open)

		return expr
	}

	p.reject()
	return nil
}

// parseCallTrailer parses the argument list of an operator application whose
// name token has already been consumed.
func (p *Parser) parseCallTrailer(nameTok *Token) ast.ASTExpr {
	open := p.want(TOK_LPAREN)

	var args []ast.ASTExpr
	for {
		args = append(args, p.parseExpr())

		if p.has(TOK_COMMA) {
			p.next()
			continue
		}

		break
	}

	closeTok := p.wantClosing(TOK_RPAREN, open)

	return &ast.Call{
		ExprBase: ast.NewExprBase(report.NewSpanOver(nameTok.Span, closeTok.Span)),
		Func:     nameTok.Value,
		FuncSpan: nameTok.Span,
		Args:     args,
	}
}
