package ast

import "physc/report"

// VarDecl is a physical variable declaration: `\defvar{T}{Real}{kelvin}`.
type VarDecl struct {
	ASTBase

	// The declared variable name.
	Name     string
	NameSpan *report.TextSpan

	// The declared type name.  This is carried through unchecked: only the
	// unit participates in dimensional analysis.
	TypeName string

	// The unit literal as an expression over named base units and numbers:
	// `kelvin`, `1`, or a compound such as `kg*m/s^2`.
	Unit ASTExpr
}

// LhsDescriptor names the quantity defined by an equation: either a plain
// identifier or an operator application such as `laplace(T)`.
type LhsDescriptor struct {
	Name     string
	NameSpan *report.TextSpan

	// The argument names of an operator-application descriptor.  Empty for a
	// plain identifier descriptor.
	Args []*Identifier
}

// IsOpApp returns whether the descriptor is an operator application.
func (lhs *LhsDescriptor) IsOpApp() bool {
	return len(lhs.Args) > 0
}

// Repr returns the canonical textual rendering of the descriptor.
func (lhs *LhsDescriptor) Repr() string {
	if !lhs.IsOpApp() {
		return lhs.Name
	}

	args := ""
	for i, arg := range lhs.Args {
		if i > 0 {
			args += ", "
		}

		args += arg.Name
	}

	return lhs.Name + "(" + args + ")"
}

// Equation is an equation declaration: `\define{ E = k * T^2 }`.
type Equation struct {
	ASTBase

	Lhs *LhsDescriptor
	Rhs ASTExpr
}

// Boundary marks a variable as carrying a boundary condition:
// `\boundary{T}`.
type Boundary struct {
	ASTBase

	VarName string
	VarSpan *report.TextSpan
}

// Symmetry records a named symmetry or invariant claim.  The text is the
// verbatim brace contents of the declaration: no grammar is imposed on it.
type Symmetry struct {
	ASTBase

	Text string
}
