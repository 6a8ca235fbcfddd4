package walk

import (
	"physc/ast"
	"physc/common"
	"physc/report"
	"physc/units"
)

// Walker is responsible for walking the declarations of a compilation and
// performing dimensional analysis on them.  It makes a single forward pass
// in source order: declarations only see symbols declared before them.
// Diagnostics are collected, not fatal: a bad declaration does not stop the
// pass, so one run surfaces as many faults as possible.
type Walker struct {
	// rep is the reporter diagnostics are recorded to.
	rep *report.Reporter

	// table is the unit table visible to this compilation.
	table *units.Table

	// symbols is the symbol table being populated.
	symbols *common.SymbolTable
}

// NewWalker creates a new walker recording to the given reporter and
// resolving units against the given table.
func NewWalker(rep *report.Reporter, table *units.Table) *Walker {
	return &Walker{
		rep:     rep,
		table:   table,
		symbols: common.NewSymbolTable(),
	}
}

// WalkDecls checks all declarations in source order and returns the
// populated symbol table.  Diagnostics are recorded to the walker's
// reporter; IR generation should only proceed if none were recorded.
func (w *Walker) WalkDecls(decls []ast.ASTNode) *common.SymbolTable {
	for _, decl := range decls {
		w.walkDecl(decl)
	}

	return w.symbols
}

// walkDecl walks one declaration and catches any diagnostic that aborts it.
func (w *Walker) walkDecl(decl ast.ASTNode) {
	defer w.rep.CatchDiagnostics()

	switch v := decl.(type) {
	case *ast.VarDecl:
		w.walkVarDecl(v)
	case *ast.Equation:
		w.walkEquation(v)
	case *ast.Boundary:
		w.walkBoundary(v)
	case *ast.Symmetry:
		// Symmetry text is opaque: there are no names to resolve.
	}
}

// walkVarDecl checks a variable declaration and declares its symbol.
func (w *Walker) walkVarDecl(vd *ast.VarDecl) {
	dim := w.evalUnitExpr(vd.Unit)

	ok := w.symbols.Declare(&common.Symbol{
		Name:     vd.Name,
		TypeName: vd.TypeName,
		Dim:      dim,
		DefSpan:  vd.NameSpan,
	})
	if !ok {
		w.error(report.DuplicateDeclaration, vd.NameSpan, "multiple declarations of `%s`", vd.Name)
	}
}

// walkEquation checks an equation declaration: every argument of an
// operator-application descriptor must be declared, the right-hand side must
// be dimensionally consistent, and if the descriptor names a declared
// variable the inferred dimension must match the declared one.
func (w *Walker) walkEquation(eq *ast.Equation) {
	if eq.Lhs.IsOpApp() {
		for _, arg := range eq.Lhs.Args {
			if sym, ok := w.symbols.Lookup(arg.Name); ok {
				arg.SetDim(sym.Dim)
			} else {
				w.recError(report.UndefinedVariable, arg.Span(), "undefined variable: `%s`", arg.Name)
			}
		}
	}

	dim := w.inferDim(eq.Rhs)

	if !eq.Lhs.IsOpApp() {
		if sym, ok := w.symbols.Lookup(eq.Lhs.Name); ok && !sym.Dim.Equals(dim) {
			w.recError(
				report.DimensionMismatch,
				eq.Span(),
				"cannot define `%s` of dimension `%s` by an expression of dimension `%s`",
				eq.Lhs.Name,
				sym.Dim.Repr(),
				dim.Repr(),
			)
		}
	}
}

// walkBoundary checks that a boundary condition references a declared
// variable.
func (w *Walker) walkBoundary(b *ast.Boundary) {
	if _, ok := w.symbols.Lookup(b.VarName); !ok {
		w.error(report.UndefinedVariable, b.VarSpan, "undefined variable: `%s`", b.VarName)
	}
}

// -----------------------------------------------------------------------------

// error reports a diagnostic that should abort walking of the current
// declaration.
func (w *Walker) error(kind int, span *report.TextSpan, msg string, args ...interface{}) {
	panic(report.Raise(kind, span, msg, args...))
}

// recError reports a recoverable diagnostic: walking continues.
func (w *Walker) recError(kind int, span *report.TextSpan, msg string, args ...interface{}) {
	w.rep.Report(report.Raise(kind, span, msg, args...))
}
