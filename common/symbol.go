package common

import (
	"physc/report"
	"physc/units"
)

// Symbol represents a declared physical quantity.
type Symbol struct {
	// The name of the symbol.
	Name string

	// The declared type name: eg. `Real`.
	TypeName string

	// The physical dimension of the symbol.
	Dim units.Dimension

	// The span of the symbol's declaration.
	DefSpan *report.TextSpan
}

// SymbolTable is the table of symbols declared over a single compilation.
// It preserves declaration order and is populated once by the checker:
// later stages consult it but never mutate it.
type SymbolTable struct {
	names []string
	syms  map[string]*Symbol
}

// NewSymbolTable creates a new empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{syms: make(map[string]*Symbol)}
}

// Declare adds a symbol to the table.  It returns false if a symbol of the
// same name has already been declared: the existing symbol is never
// overwritten.
func (st *SymbolTable) Declare(sym *Symbol) bool {
	if _, ok := st.syms[sym.Name]; ok {
		return false
	}

	st.names = append(st.names, sym.Name)
	st.syms[sym.Name] = sym
	return true
}

// Lookup looks up a symbol by name.
func (st *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := st.syms[name]
	return sym, ok
}

// Ordered returns all symbols in declaration order.
func (st *SymbolTable) Ordered() []*Symbol {
	syms := make([]*Symbol, len(st.names))
	for i, name := range st.names {
		syms[i] = st.syms[name]
	}

	return syms
}
