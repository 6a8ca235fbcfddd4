package ir

import (
	"physc/ast"
	"physc/common"
	"physc/units"
)

// symmetryObjectName is the name of the synthetic marker object shared by
// all symmetry morphisms.
const symmetryObjectName = "SymmetryGroup"

// builder incrementally constructs the category for one compilation.
type builder struct {
	cat  *Category
	objs map[string]*Object

	// The shared synthetic symmetry object, created lazily on first use.
	symObj *Object
}

// Build translates a checked sequence of declarations into the categorical
// IR.  It assumes type checking produced zero diagnostics: every referenced
// name resolves and every expression carries its inferred dimension.
func Build(decls []ast.ASTNode, symbols *common.SymbolTable) *Category {
	b := &builder{
		cat:  &Category{},
		objs: make(map[string]*Object),
	}

	// Every symbol becomes one object, in declaration order.
	for _, sym := range symbols.Ordered() {
		b.addObject(sym.Name, sym.Dim)
	}

	for _, decl := range decls {
		switch v := decl.(type) {
		case *ast.Equation:
			b.buildEquation(v)
		case *ast.Boundary:
			b.buildBoundary(v)
		case *ast.Symmetry:
			b.buildSymmetry(v)
		}
	}

	return b.cat
}

// addObject creates an object and adds it to the category.
func (b *builder) addObject(name string, dim units.Dimension) *Object {
	obj := &Object{Name: name, Dim: dim}
	b.cat.Objects = append(b.cat.Objects, obj)
	b.objs[name] = obj
	return obj
}

// buildEquation builds the morphism of an equation: its domain is the set of
// objects referenced by the right-hand side in order of first occurrence,
// its codomain the object named by the left-hand descriptor, and its
// descriptor the canonical rendering of the right-hand side.
func (b *builder) buildEquation(eq *ast.Equation) {
	var domain []*Object
	for _, name := range referencedVars(eq.Rhs, nil, make(map[string]struct{})) {
		domain = append(domain, b.objs[name])
	}

	var codomain *Object
	if eq.Lhs.IsOpApp() {
		// An operator-application descriptor such as `laplace(T)` constrains
		// the quantity it is applied to.
		codomain = b.objs[eq.Lhs.Args[0].Name]
	} else if obj, ok := b.objs[eq.Lhs.Name]; ok {
		codomain = obj
	} else {
		// The descriptor names a new derived quantity: it becomes an object
		// with the inferred dimension of the defining expression.
		codomain = b.addObject(eq.Lhs.Name, eq.Rhs.Dim())
	}

	b.cat.Morphisms = append(b.cat.Morphisms, &Morphism{
		Domain:     domain,
		Codomain:   codomain,
		Descriptor: eq.Rhs.Repr(),
	})
}

// buildBoundary builds the morphism of a boundary condition: the named
// object constrained onto itself.
func (b *builder) buildBoundary(bd *ast.Boundary) {
	obj := b.objs[bd.VarName]

	b.cat.Morphisms = append(b.cat.Morphisms, &Morphism{
		Domain:     []*Object{obj},
		Codomain:   obj,
		Descriptor: "boundary",
	})
}

// buildSymmetry builds the morphism of a symmetry claim on the shared
// synthetic symmetry object.
func (b *builder) buildSymmetry(sym *ast.Symmetry) {
	if b.symObj == nil {
		b.symObj = b.addObject(symmetryObjectName, units.Dimensionless())
	}

	b.cat.Morphisms = append(b.cat.Morphisms, &Morphism{
		Domain:     []*Object{b.symObj},
		Codomain:   b.symObj,
		Descriptor: sym.Text,
	})
}

// referencedVars collects the variable names referenced by an expression in
// order of first occurrence.
func referencedVars(expr ast.ASTExpr, names []string, seen map[string]struct{}) []string {
	switch v := expr.(type) {
	case *ast.Identifier:
		if _, ok := seen[v.Name]; !ok {
			seen[v.Name] = struct{}{}
			names = append(names, v.Name)
		}
	case *ast.UnaryOp:
		names = referencedVars(v.Operand, names, seen)
	case *ast.BinaryOp:
		names = referencedVars(v.Lhs, names, seen)
		names = referencedVars(v.Rhs, names, seen)
	case *ast.Call:
		for _, arg := range v.Args {
			names = referencedVars(arg, names, seen)
		}
	}

	return names
}
