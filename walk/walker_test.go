package walk

import (
	"strings"
	"testing"

	"physc/ast"
	"physc/common"
	"physc/report"
	"physc/syntax"
	"physc/units"
)

// walkSource parses and checks a source text, returning the populated symbol
// table, the checked declarations, and any diagnostics recorded.
func walkSource(t *testing.T, src string) (*common.SymbolTable, []ast.ASTNode, []*report.Diagnostic) {
	t.Helper()

	decls, err := syntax.Parse(src)
	if err != nil {
		t.Fatalf("unexpected parse error: %s", err)
	}

	rep := report.NewReporter()
	symbols := NewWalker(rep, units.NewTable()).WalkDecls(decls)

	return symbols, decls, rep.Diagnostics()
}

// wantDiagnostic asserts that exactly one diagnostic of the given kind was
// recorded and returns it.
func wantDiagnostic(t *testing.T, diags []*report.Diagnostic, kind int) *report.Diagnostic {
	t.Helper()

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}

	if diags[0].Kind != kind {
		t.Fatalf("expected kind %q, got %q", report.Raise(kind, nil, "").KindString(), diags[0].KindString())
	}

	return diags[0]
}

func TestWalker_VarDecl(t *testing.T) {
	symbols, _, diags := walkSource(t, `\defvar{T}{Real}{kelvin}`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	sym, ok := symbols.Lookup("T")
	if !ok {
		t.Fatal("expected symbol 'T'")
	}

	if sym.TypeName != "Real" {
		t.Errorf("expected type name 'Real', got %q", sym.TypeName)
	}
	if !sym.Dim.Equals(units.NewDimension("temperature", 1)) {
		t.Errorf("unexpected dimension: %q", sym.Dim.Repr())
	}
}

func TestWalker_CompoundUnit(t *testing.T) {
	symbols, _, diags := walkSource(t, `\defvar{F}{Real}{kg*m/s^2}`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	sym, _ := symbols.Lookup("F")

	force, _ := units.NewTable().LookupUnit("force")
	if !sym.Dim.Equals(force) {
		t.Errorf("expected the dimension of force, got %q", sym.Dim.Repr())
	}
}

func TestWalker_DimensionlessUnit(t *testing.T) {
	symbols, _, diags := walkSource(t, `\defvar{n}{Real}{1}`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	sym, _ := symbols.Lookup("n")
	if !sym.Dim.IsDimensionless() {
		t.Errorf("expected dimensionless, got %q", sym.Dim.Repr())
	}
}

func TestWalker_UnknownUnit(t *testing.T) {
	_, _, diags := walkSource(t, `\defvar{d}{Real}{parsec}`)

	d := wantDiagnostic(t, diags, report.UnitError)
	if !strings.Contains(d.Message, "parsec") {
		t.Errorf("expected message to name the unit, got %q", d.Message)
	}
}

func TestWalker_DuplicateDeclaration(t *testing.T) {
	_, _, diags := walkSource(t, "\\defvar{T}{Real}{kelvin}\n\\defvar{T}{Real}{m}")

	wantDiagnostic(t, diags, report.DuplicateDeclaration)
}

func TestWalker_AdditionMismatch(t *testing.T) {
	_, _, diags := walkSource(t, "\\defvar{T}{Real}{kelvin}\n\\define{ Q = T + 1.0 }")

	d := wantDiagnostic(t, diags, report.DimensionMismatch)
	if !strings.Contains(d.Message, "temperature") || !strings.Contains(d.Message, "dimensionless") {
		t.Errorf("expected message to name both dimensions, got %q", d.Message)
	}
}

func TestWalker_ConsistentEquation(t *testing.T) {
	src := `
\defvar{T}{Real}{kelvin}
\defvar{k}{Real}{energy / K^2}
\define{ E = k * T^2 }
`
	_, decls, diags := walkSource(t, src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	// The right-hand side infers to the dimension of energy.
	eq := decls[2].(*ast.Equation)
	energy, _ := units.NewTable().LookupUnit("energy")
	if !eq.Rhs.Dim().Equals(energy) {
		t.Errorf("expected the dimension of energy, got %q", eq.Rhs.Dim().Repr())
	}
}

func TestWalker_DeclaredLhsMismatch(t *testing.T) {
	src := `
\defvar{T}{Real}{kelvin}
\defvar{E}{Real}{energy}
\define{ E = T }
`
	_, _, diags := walkSource(t, src)

	wantDiagnostic(t, diags, report.DimensionMismatch)
}

func TestWalker_UndefinedVariable(t *testing.T) {
	_, _, diags := walkSource(t, `\define{ Q = missing + missing }`)

	d := wantDiagnostic(t, diags, report.UndefinedVariable)
	if !strings.Contains(d.Message, "missing") {
		t.Errorf("expected message to name the variable, got %q", d.Message)
	}
}

func TestWalker_UndefinedOperator(t *testing.T) {
	_, _, diags := walkSource(t, "\\defvar{T}{Real}{kelvin}\n\\define{ Q = frobnicate(T) }")

	wantDiagnostic(t, diags, report.UndefinedOperator)
}

func TestWalker_OperatorRules(t *testing.T) {
	tests := []struct {
		expr     string
		expected units.Dimension
	}{
		{"laplace(T)", units.Dimension{"temperature": units.RatioFromInt(1), "length": units.RatioFromInt(-2)}},
		{"dt(T)", units.Dimension{"temperature": units.RatioFromInt(1), "time": units.RatioFromInt(-1)}},
		{"abs(T)", units.NewDimension("temperature", 1)},
		{"sqrt(A)", units.NewDimension("length", 1)},
	}

	for _, test := range tests {
		src := "\\defvar{T}{Real}{kelvin}\n\\defvar{A}{Real}{m^2}\n\\define{ q = " + test.expr + " }"

		_, decls, diags := walkSource(t, src)
		if len(diags) != 0 {
			t.Errorf("%q: unexpected diagnostics: %v", test.expr, diags)
			continue
		}

		eq := decls[2].(*ast.Equation)
		if !eq.Rhs.Dim().Equals(test.expected) {
			t.Errorf("%q: expected %q, got %q", test.expr, test.expected.Repr(), eq.Rhs.Dim().Repr())
		}
	}
}

func TestWalker_NegativePower(t *testing.T) {
	src := "\\defvar{T}{Real}{kelvin}\n\\define{ q = T^-2 }"

	_, decls, diags := walkSource(t, src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	eq := decls[1].(*ast.Equation)
	if !eq.Rhs.Dim().Equals(units.NewDimension("temperature", -2)) {
		t.Errorf("expected temperature^-2, got %q", eq.Rhs.Dim().Repr())
	}
}

func TestWalker_FractionalPower(t *testing.T) {
	src := "\\defvar{A}{Real}{m^2}\n\\define{ q = A^0.5 }"

	_, decls, diags := walkSource(t, src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	eq := decls[1].(*ast.Equation)
	if !eq.Rhs.Dim().Equals(units.NewDimension("length", 1)) {
		t.Errorf("expected length, got %q", eq.Rhs.Dim().Repr())
	}
}

func TestWalker_NonConstantExponent(t *testing.T) {
	_, _, diags := walkSource(t, "\\defvar{T}{Real}{kelvin}\n\\define{ q = T^T }")

	d := wantDiagnostic(t, diags, report.UnitError)
	if !strings.Contains(d.Message, "exponent") {
		t.Errorf("unexpected message: %q", d.Message)
	}
}

func TestWalker_OpAppArgsMustBeDeclared(t *testing.T) {
	src := "\\defvar{Q}{Real}{K/m^2}\n\\define{ \\op{laplace}(T) = Q }"

	_, _, diags := walkSource(t, src)

	wantDiagnostic(t, diags, report.UndefinedVariable)
}

func TestWalker_BoundaryUndeclared(t *testing.T) {
	_, _, diags := walkSource(t, `\boundary{X}`)

	wantDiagnostic(t, diags, report.UndefinedVariable)
}

func TestWalker_SymmetryIsOpaque(t *testing.T) {
	_, _, diags := walkSource(t, `\symmetry{ undeclared names are fine here }`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
}

func TestWalker_CollectsMultipleDiagnostics(t *testing.T) {
	src := `
\defvar{d}{Real}{parsec}
\define{ Q = missing }
\boundary{X}
`
	_, _, diags := walkSource(t, src)

	if len(diags) != 3 {
		t.Fatalf("expected 3 diagnostics, got %d", len(diags))
	}
}
