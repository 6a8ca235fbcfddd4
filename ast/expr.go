package ast

import (
	"physc/report"
	"physc/units"
)

// ASTExpr is the abstract interface for all expression AST nodes.  The
// checker assigns every expression a dimension as it walks the tree.
type ASTExpr interface {
	ASTNode

	// Dim is the physical dimension of the expression.  This is nil until
	// the expression has been checked.
	Dim() units.Dimension

	// SetDim sets the dimension of the expression.
	SetDim(units.Dimension)

	// Repr returns the canonical textual rendering of the expression.
	Repr() string
}

// ExprBase is a utility base struct for all expression AST nodes.
type ExprBase struct {
	ASTBase

	dim units.Dimension
}

// NewExprBase creates a new expression base with the given span.
func NewExprBase(span *report.TextSpan) ExprBase {
	return ExprBase{ASTBase: NewASTBaseOn(span)}
}

func (eb *ExprBase) Dim() units.Dimension {
	return eb.dim
}

func (eb *ExprBase) SetDim(dim units.Dimension) {
	eb.dim = dim
}

// -----------------------------------------------------------------------------

// Oper is an operator used in the AST.
type Oper struct {
	Kind int
	Name string
	Span *report.TextSpan
}

// Literal is a numeric literal.
type Literal struct {
	ExprBase

	// The literal text exactly as written in the source.
	Value string
}

func (lit *Literal) Repr() string {
	return lit.Value
}

// Identifier is a reference to a named quantity.
type Identifier struct {
	ExprBase

	Name string
}

func (id *Identifier) Repr() string {
	return id.Name
}

// UnaryOp represents a unary operator application.
type UnaryOp struct {
	ExprBase

	Op      Oper
	Operand ASTExpr
}

func (uop *UnaryOp) Repr() string {
	return uop.Op.Name + uop.Operand.Repr()
}

// BinaryOp represents a binary operator application.
type BinaryOp struct {
	ExprBase

	Op       Oper
	Lhs, Rhs ASTExpr
}

func (bop *BinaryOp) Repr() string {
	return "(" + bop.Lhs.Repr() + " " + bop.Op.Name + " " + bop.Rhs.Repr() + ")"
}

// Call represents a named operator application such as `laplace(T)`.
type Call struct {
	ExprBase

	Func     string
	FuncSpan *report.TextSpan
	Args     []ASTExpr
}

func (c *Call) Repr() string {
	args := ""
	for i, arg := range c.Args {
		if i > 0 {
			args += ", "
		}

		args += arg.Repr()
	}

	return c.Func + "(" + args + ")"
}
