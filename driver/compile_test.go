package driver

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"physc/report"
)

const heatSource = `
\defvar{T}{Real}{kelvin}
\defvar{k}{Real}{energy / K^2}
\define{ E = k * T^2 }
\boundary{T}
\symmetry{ time translation }
`

const heatRendered = `object T : temperature
object k : length^2 mass temperature^-2 time^-2
object E : length^2 mass time^-2
object SymmetryGroup : dimensionless
morphism k, T -> E : (k * (T ^ 2))
morphism T -> T : boundary
morphism SymmetryGroup -> SymmetryGroup : time translation
`

func TestCompile_Success(t *testing.T) {
	cat, diags := Compile(heatSource)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if cat == nil {
		t.Fatal("expected a category")
	}

	if len(cat.Objects) != 4 {
		t.Errorf("expected 4 objects, got %d", len(cat.Objects))
	}
	if len(cat.Morphisms) != 3 {
		t.Errorf("expected 3 morphisms, got %d", len(cat.Morphisms))
	}
}

func TestCompileAndRender_FullDocument(t *testing.T) {
	rendered, diags := CompileAndRender(heatSource)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if rendered != heatRendered {
		t.Errorf("unexpected rendering:\n%s", rendered)
	}
}

func TestCompileAndRender_LoneVarDecl(t *testing.T) {
	rendered, diags := CompileAndRender(`\defvar{T}{Real}{kelvin}`)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	if rendered != "object T : temperature\n" {
		t.Errorf("unexpected rendering: %q", rendered)
	}
}

func TestCompile_Deterministic(t *testing.T) {
	first, _ := CompileAndRender(heatSource)
	second, _ := CompileAndRender(heatSource)

	if first != second {
		t.Error("expected repeated compiles to be byte-identical")
	}
}

func TestCompile_ParseErrorStopsPipeline(t *testing.T) {
	cat, diags := Compile(`\define{ E = k`)
	if cat != nil {
		t.Error("expected no category on a parse error")
	}

	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Kind != report.ParseError {
		t.Errorf("expected kind ParseError, got %s", diags[0].KindString())
	}
}

func TestCompile_DiagnosticsGateIR(t *testing.T) {
	src := `
\defvar{T}{Real}{kelvin}
\boundary{X}
\define{ Q = T + missing }
`
	cat, diags := Compile(src)
	if cat != nil {
		t.Error("expected no category when checking fails")
	}

	// Checking collects every fault it can before giving up.
	if len(diags) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(diags))
	}
	if diags[0].Kind != report.UndefinedVariable {
		t.Errorf("expected kind UndefinedVariable, got %s", diags[0].KindString())
	}

	if rendered, _ := CompileAndRender(src); rendered != "" {
		t.Error("expected an empty rendering when checking fails")
	}
}

func TestCompiler_Manifest(t *testing.T) {
	manifest := `
[[units]]
name = "parsec"

[units.dims]
length = 1
`
	path := filepath.Join(t.TempDir(), "physc.toml")
	if err := ioutil.WriteFile(path, []byte(manifest), 0666); err != nil {
		t.Fatalf("failed to write manifest: %s", err)
	}

	c := NewCompiler()
	if err := c.LoadManifest(path); err != nil {
		t.Fatalf("unexpected manifest error: %s", err)
	}

	src := "\\defvar{d}{Real}{parsec}\n\\define{ A = d * d }"

	cat, diags := c.Compile(src)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}

	area := cat.Objects[1]
	if area.Name != "A" {
		t.Fatalf("expected object 'A', got %q", area.Name)
	}
	if area.Dim.Repr() != "length^2" {
		t.Errorf("expected 'length^2', got %q", area.Dim.Repr())
	}

	// The manifest extends only this compiler's table.
	if _, diags := Compile(src); len(diags) == 0 {
		t.Error("expected 'parsec' to be unknown without the manifest")
	}
}

func TestCompiler_MissingManifest(t *testing.T) {
	if err := NewCompiler().LoadManifest(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected an error for a missing manifest")
	}
}
