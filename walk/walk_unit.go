package walk

import (
	"physc/ast"
	"physc/report"
	"physc/syntax"
	"physc/units"
)

// evalUnitExpr evaluates a unit literal into a dimension.  A unit literal is
// an expression over named base units and numbers combined multiplicatively:
// `kelvin`, `1`, or `kg*m/s^2`.  Any unknown unit name faults the whole
// literal: there is no partial acceptance.
func (w *Walker) evalUnitExpr(expr ast.ASTExpr) units.Dimension {
	switch v := expr.(type) {
	case *ast.Literal:
		// Numeric factors carry no dimension: the unit literal `1` is the
		// dimensionless unit.
		return units.Dimensionless()
	case *ast.Identifier:
		dim, ok := w.table.LookupUnit(v.Name)
		if !ok {
			w.error(report.UnitError, v.Span(), "unknown unit: `%s`", v.Name)
		}

		return dim
	case *ast.BinaryOp:
		switch v.Op.Kind {
		case syntax.TOK_STAR:
			return w.evalUnitExpr(v.Lhs).Mul(w.evalUnitExpr(v.Rhs))
		case syntax.TOK_DIV:
			return w.evalUnitExpr(v.Lhs).Div(w.evalUnitExpr(v.Rhs))
		case syntax.TOK_POW:
			base := w.evalUnitExpr(v.Lhs)

			exp, ok := constRatio(v.Rhs)
			if !ok {
				w.error(report.UnitError, v.Rhs.Span(), "unit exponent must be a numeric constant")
			}

			return base.Pow(exp)
		}
	}

	w.error(report.UnitError, expr.Span(), "invalid unit literal")
	return nil
}
