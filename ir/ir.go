// Package ir defines the categorical intermediate representation produced by
// a successful compilation: one object per physical quantity and one
// morphism per equation, boundary condition, or symmetry.  The IR is the
// terminal artifact of the compiler: downstream consumers (solvers, symbolic
// engines) read it, nothing in the compiler loops back over it.
package ir

import "physc/units"

// Object represents one physical quantity in the category.
type Object struct {
	// The name of the quantity.
	Name string

	// The physical dimension of the quantity.
	Dim units.Dimension
}

// Morphism represents a directed relation between objects: an equation, a
// boundary condition, or a symmetry.
type Morphism struct {
	// The objects the relation depends on, in order of first occurrence.
	Domain []*Object

	// The object being defined or constrained.
	Codomain *Object

	// The human-readable summary of the operation: eg. the rendered
	// right-hand side of an equation.
	Descriptor string
}

// Category is the IR for one compilation.  Objects and morphisms appear in
// creation order and are immutable once built.
type Category struct {
	Objects   []*Object
	Morphisms []*Morphism
}

// -----------------------------------------------------------------------------

// identityDescriptor is the descriptor of every identity morphism.
const identityDescriptor = "identity"

// Identity constructs the identity morphism on an object.  Identity
// morphisms exist for every object but are only materialized on demand.
func Identity(obj *Object) *Morphism {
	return &Morphism{
		Domain:     []*Object{obj},
		Codomain:   obj,
		Descriptor: identityDescriptor,
	}
}

// IsIdentity returns whether the morphism is an identity morphism.
func (m *Morphism) IsIdentity() bool {
	return m.Descriptor == identityDescriptor &&
		len(m.Domain) == 1 &&
		m.Domain[0] == m.Codomain
}

// Compose composes morphism f (A -> B) with morphism g (B -> C), yielding a
// morphism A -> C whose descriptor records the chained operation.  The
// composition is defined only when the codomain of f is the domain of g: it
// returns false otherwise.  Composition satisfies the identity laws
// structurally (composing with an identity returns the other morphism
// unchanged) and is associative: the flat descriptor chain is the same
// however a composite is parenthesized.
func Compose(f, g *Morphism) (*Morphism, bool) {
	if len(g.Domain) != 1 || g.Domain[0] != f.Codomain {
		return nil, false
	}

	if f.IsIdentity() {
		return g, true
	}

	if g.IsIdentity() {
		return f, true
	}

	return &Morphism{
		Domain:     f.Domain,
		Codomain:   g.Codomain,
		Descriptor: f.Descriptor + " ; " + g.Descriptor,
	}, true
}
