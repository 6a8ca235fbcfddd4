package units

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pelletier/go-toml"
)

// tomlManifest represents a project manifest as it is encoded in TOML.
type tomlManifest struct {
	Units     []*tomlUnit     `toml:"units"`
	Operators []*tomlOperator `toml:"operators"`
}

// tomlUnit represents a derived-unit declaration as it is encoded in TOML.
type tomlUnit struct {
	Name string           `toml:"name"`
	Dims map[string]int64 `toml:"dims"`
}

// tomlOperator represents an operator dimension rule as it is encoded in
// TOML.  The scale defaults to 1 when unspecified.
type tomlOperator struct {
	Name     string           `toml:"name"`
	ScaleNum int64            `toml:"scale-num"`
	ScaleDen int64            `toml:"scale-den"`
	Factor   map[string]int64 `toml:"factor"`
}

// Manifest is a loaded project manifest: extra derived-unit aliases and
// operator dimension rules to fold into a compilation's unit table.
type Manifest struct {
	Units     map[string]Dimension
	Operators map[string]OpRule
}

// LoadManifest loads and validates a project manifest from the given path.
func LoadManifest(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tm := &tomlManifest{}
	if err := toml.Unmarshal(buff, tm); err != nil {
		return nil, fmt.Errorf("error parsing manifest: %s", err)
	}

	man := &Manifest{
		Units:     make(map[string]Dimension),
		Operators: make(map[string]OpRule),
	}

	for _, tu := range tm.Units {
		if tu.Name == "" {
			return nil, fmt.Errorf("manifest unit missing a name")
		}

		man.Units[tu.Name] = dimensionFromExponents(tu.Dims)
	}

	for _, top := range tm.Operators {
		if top.Name == "" {
			return nil, fmt.Errorf("manifest operator missing a name")
		}

		scale := RatioFromInt(1)
		if top.ScaleNum != 0 {
			den := top.ScaleDen
			if den == 0 {
				den = 1
			}

			scale = NewRatio(int(top.ScaleNum), int(den))
		}

		man.Operators[top.Name] = OpRule{
			Scale:  scale,
			Factor: dimensionFromExponents(top.Factor),
		}
	}

	return man, nil
}

// Apply folds the manifest's declarations into a unit table.
func (man *Manifest) Apply(t *Table) {
	for name, dim := range man.Units {
		t.DefineUnit(name, dim)
	}

	for name, rule := range man.Operators {
		t.DefineOp(name, rule)
	}
}

// dimensionFromExponents converts a TOML exponent map into a dimension.
func dimensionFromExponents(exps map[string]int64) Dimension {
	dim := Dimensionless()
	for base, exp := range exps {
		if exp != 0 {
			dim[base] = RatioFromInt(int(exp))
		}
	}

	return dim
}
