package units

// OpRule describes how a known operator transforms the dimension of its
// argument: the result dimension is the argument dimension raised to Scale,
// multiplied by Factor.  Most operators leave the exponents unscaled
// (Scale = 1) and only contribute a factor: eg. the laplacian divides by
// length squared.
type OpRule struct {
	Scale  Ratio
	Factor Dimension
}

// Apply applies the rule to an argument dimension.
func (rule OpRule) Apply(arg Dimension) Dimension {
	return arg.Pow(rule.Scale).Mul(rule.Factor)
}

// -----------------------------------------------------------------------------

// Table is the set of named base units and operator dimension rules visible
// to a single compilation.  Each compilation owns its own table so manifest
// extensions never leak between compiles.
type Table struct {
	units map[string]Dimension
	ops   map[string]OpRule
}

// builtinUnits is the standard unit table.
var builtinUnits = map[string]Dimension{
	"meter":         NewDimension("length", 1),
	"m":             NewDimension("length", 1),
	"second":        NewDimension("time", 1),
	"s":             NewDimension("time", 1),
	"kilogram":      NewDimension("mass", 1),
	"kg":            NewDimension("mass", 1),
	"kelvin":        NewDimension("temperature", 1),
	"K":             NewDimension("temperature", 1),
	"dimensionless": Dimensionless(),

	// Common derived units.
	"energy": {"mass": RatioFromInt(1), "length": RatioFromInt(2), "time": RatioFromInt(-2)},
	"force":  {"mass": RatioFromInt(1), "length": RatioFromInt(1), "time": RatioFromInt(-2)},
}

// builtinOpRules is the standard table of operator dimension rules.
var builtinOpRules = map[string]OpRule{
	"laplace": {Scale: RatioFromInt(1), Factor: NewDimension("length", -2)},
	"grad":    {Scale: RatioFromInt(1), Factor: NewDimension("length", -1)},
	"div":     {Scale: RatioFromInt(1), Factor: NewDimension("length", -1)},
	"curl":    {Scale: RatioFromInt(1), Factor: NewDimension("length", -1)},
	"dt":      {Scale: RatioFromInt(1), Factor: NewDimension("time", -1)},
	"sqrt":    {Scale: NewRatio(1, 2), Factor: Dimensionless()},
	"abs":     {Scale: RatioFromInt(1), Factor: Dimensionless()},
	"neg":     {Scale: RatioFromInt(1), Factor: Dimensionless()},
}

// NewTable creates a new unit table containing the built-in units and
// operator rules.
func NewTable() *Table {
	t := &Table{
		units: make(map[string]Dimension, len(builtinUnits)),
		ops:   make(map[string]OpRule, len(builtinOpRules)),
	}

	for name, dim := range builtinUnits {
		t.units[name] = dim
	}

	for name, rule := range builtinOpRules {
		t.ops[name] = rule
	}

	return t
}

// LookupUnit looks up a named base unit.
func (t *Table) LookupUnit(name string) (Dimension, bool) {
	dim, ok := t.units[name]
	return dim, ok
}

// LookupOp looks up the dimension rule for a named operator.
func (t *Table) LookupOp(name string) (OpRule, bool) {
	rule, ok := t.ops[name]
	return rule, ok
}

// DefineUnit adds a named unit to the table, overriding any previous unit of
// the same name.
func (t *Table) DefineUnit(name string, dim Dimension) {
	t.units[name] = dim
}

// DefineOp adds an operator dimension rule to the table, overriding any
// previous rule of the same name.
func (t *Table) DefineOp(name string, rule OpRule) {
	t.ops[name] = rule
}
