// Package driver runs the compilation pipeline: source text to tokens to
// AST to checked AST to categorical IR.  It is the entry point intended for
// external consumers of the IR.
package driver

import (
	"physc/ir"
	"physc/report"
	"physc/syntax"
	"physc/units"
	"physc/walk"
)

// Compiler holds the configuration shared by compilations: the unit table,
// possibly extended by a project manifest.  All per-compile state (tokens,
// AST, symbol table, IR, diagnostics) is owned by a single Compile call, so
// one compiler may run independent compilations concurrently.
type Compiler struct {
	table *units.Table
}

// NewCompiler creates a new compiler with the built-in unit table.
func NewCompiler() *Compiler {
	return &Compiler{table: units.NewTable()}
}

// LoadManifest folds a project manifest's unit and operator declarations
// into the compiler's unit table.  Manifests must be loaded before
// compilations begin.
func (c *Compiler) LoadManifest(path string) error {
	man, err := units.LoadManifest(path)
	if err != nil {
		return err
	}

	man.Apply(c.table)
	return nil
}

// Compile compiles a source text into its categorical IR.  On failure it
// returns a nil category and the complete list of diagnostics produced:
// lexing and parsing stop at their first error, while the checking pass
// collects every diagnostic it can before gating IR generation.
func (c *Compiler) Compile(source string) (*ir.Category, []*report.Diagnostic) {
	rep := report.NewReporter()

	decls, err := syntax.Parse(source)
	if err != nil {
		rep.Report(err.(*report.Diagnostic))
		return nil, rep.Diagnostics()
	}

	w := walk.NewWalker(rep, c.table)
	symbols := w.WalkDecls(decls)

	if !rep.ShouldProceed() {
		return nil, rep.Diagnostics()
	}

	return ir.Build(decls, symbols), nil
}

// CompileAndRender compiles a source text and renders the resulting IR for
// display.
func (c *Compiler) CompileAndRender(source string) (string, []*report.Diagnostic) {
	cat, diags := c.Compile(source)
	if len(diags) > 0 {
		return "", diags
	}

	return ir.Render(cat), nil
}

// -----------------------------------------------------------------------------

// Compile compiles a source text with the built-in unit table.
func Compile(source string) (*ir.Category, []*report.Diagnostic) {
	return NewCompiler().Compile(source)
}

// CompileAndRender compiles a source text with the built-in unit table and
// renders the resulting IR.
func CompileAndRender(source string) (string, []*report.Diagnostic) {
	return NewCompiler().CompileAndRender(source)
}
