package walk

import (
	"physc/ast"
	"physc/report"
	"physc/syntax"
	"physc/units"
)

// inferDim infers the dimension of an expression bottom-up, recording the
// dimension on every node it visits.  Inference faults abort the enclosing
// declaration via a panicked diagnostic.
func (w *Walker) inferDim(expr ast.ASTExpr) units.Dimension {
	switch v := expr.(type) {
	case *ast.Literal:
		v.SetDim(units.Dimensionless())
	case *ast.Identifier:
		sym, ok := w.symbols.Lookup(v.Name)
		if !ok {
			w.error(report.UndefinedVariable, v.Span(), "undefined variable: `%s`", v.Name)
		}

		v.SetDim(sym.Dim)
	case *ast.UnaryOp:
		// Negation preserves dimension.
		v.SetDim(w.inferDim(v.Operand))
	case *ast.BinaryOp:
		v.SetDim(w.inferBinaryOp(v))
	case *ast.Call:
		v.SetDim(w.inferCall(v))
	}

	return expr.Dim()
}

// inferBinaryOp infers the dimension of a binary operator application.
func (w *Walker) inferBinaryOp(bop *ast.BinaryOp) units.Dimension {
	// Power takes a compile-time constant exponent, not a sub-dimension.
	if bop.Op.Kind == syntax.TOK_POW {
		return w.inferPower(bop)
	}

	ldim := w.inferDim(bop.Lhs)
	rdim := w.inferDim(bop.Rhs)

	switch bop.Op.Kind {
	case syntax.TOK_PLUS, syntax.TOK_MINUS:
		if !ldim.Equals(rdim) {
			w.error(
				report.DimensionMismatch,
				bop.Op.Span,
				"operands of `%s` must have equal dimensions: `%s` vs `%s`",
				bop.Op.Name,
				ldim.Repr(),
				rdim.Repr(),
			)
		}

		return ldim
	case syntax.TOK_STAR:
		return ldim.Mul(rdim)
	default:
		return ldim.Div(rdim)
	}
}

// inferPower infers the dimension of a power expression.  The exponent must
// be a compile-time dimensionless numeric constant: the base dimension's
// exponents are scaled by it.
func (w *Walker) inferPower(bop *ast.BinaryOp) units.Dimension {
	base := w.inferDim(bop.Lhs)

	exp, ok := constRatio(bop.Rhs)
	if !ok {
		w.error(
			report.UnitError,
			bop.Rhs.Span(),
			"exponent must be a dimensionless numeric constant",
		)
	}

	bop.Rhs.SetDim(units.Dimensionless())
	return base.Pow(exp)
}

// inferCall infers the dimension of a named operator application by looking
// up the operator's dimension rule and applying it to the first argument.
func (w *Walker) inferCall(call *ast.Call) units.Dimension {
	rule, ok := w.table.LookupOp(call.Func)
	if !ok {
		w.error(report.UndefinedOperator, call.FuncSpan, "undefined operator: `%s`", call.Func)
	}

	var argDim units.Dimension
	for i, arg := range call.Args {
		dim := w.inferDim(arg)
		if i == 0 {
			argDim = dim
		}
	}

	return rule.Apply(argDim)
}

// constRatio evaluates a compile-time constant numeric expression to an
// exact ratio.  It returns false if the expression is not constant.
func constRatio(expr ast.ASTExpr) (units.Ratio, bool) {
	switch v := expr.(type) {
	case *ast.Literal:
		r, err := units.ParseRatio(v.Value)
		return r, err == nil
	case *ast.UnaryOp:
		if r, ok := constRatio(v.Operand); ok {
			return r.Neg(), true
		}
	}

	return units.Ratio{}, false
}
