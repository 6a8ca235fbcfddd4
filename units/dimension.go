package units

import (
	"sort"
	"strings"
)

// Dimension describes the physical unit class of a quantity independent of
// scale: a vector of rational exponents over named base dimensions such as
// `length` or `time`.  The dimensionless dimension is the empty vector.
// Dimensions are value types: all operations return new dimensions and never
// mutate their operands.  Entries with a zero exponent are never stored, so
// two equal dimensions have identical entries.
type Dimension map[string]Ratio

// NewDimension creates a dimension with a single base dimension raised to the
// given integer exponent.
func NewDimension(base string, exp int) Dimension {
	if exp == 0 {
		return Dimension{}
	}

	return Dimension{base: RatioFromInt(exp)}
}

// Dimensionless returns the dimensionless dimension.
func Dimensionless() Dimension {
	return Dimension{}
}

// IsDimensionless returns whether all the dimension's exponents are zero.
func (d Dimension) IsDimensionless() bool {
	return len(d) == 0
}

// Equals returns whether two dimensions have exactly equal exponents.
func (d Dimension) Equals(o Dimension) bool {
	if len(d) != len(o) {
		return false
	}

	for base, exp := range d {
		if oexp, ok := o[base]; !ok || exp != oexp {
			return false
		}
	}

	return true
}

// Mul returns the product dimension: exponents add.
func (d Dimension) Mul(o Dimension) Dimension {
	result := make(Dimension, len(d)+len(o))

	for base, exp := range d {
		result[base] = exp
	}

	for base, exp := range o {
		sum := exp
		if cur, ok := result[base]; ok {
			sum = cur.Add(exp)
		}

		if sum.IsZero() {
			delete(result, base)
		} else {
			result[base] = sum
		}
	}

	return result
}

// Div returns the quotient dimension: exponents subtract.
func (d Dimension) Div(o Dimension) Dimension {
	result := make(Dimension, len(d)+len(o))

	for base, exp := range d {
		result[base] = exp
	}

	for base, exp := range o {
		diff := exp.Neg()
		if cur, ok := result[base]; ok {
			diff = cur.Sub(exp)
		}

		if diff.IsZero() {
			delete(result, base)
		} else {
			result[base] = diff
		}
	}

	return result
}

// Pow returns the dimension raised to a rational power: exponents scale.
func (d Dimension) Pow(r Ratio) Dimension {
	result := make(Dimension, len(d))

	for base, exp := range d {
		scaled := exp.Mul(r)
		if !scaled.IsZero() {
			result[base] = scaled
		}
	}

	return result
}

// Repr returns the representative string for the dimension.  Base dimensions
// are sorted by name so the representation is deterministic: eg. the
// dimension of force is `length mass time^-2`.
func (d Dimension) Repr() string {
	if len(d) == 0 {
		return "dimensionless"
	}

	bases := make([]string, 0, len(d))
	for base := range d {
		bases = append(bases, base)
	}
	sort.Strings(bases)

	sb := strings.Builder{}
	for i, base := range bases {
		if i > 0 {
			sb.WriteRune(' ')
		}

		sb.WriteString(base)

		if exp := d[base]; exp != RatioFromInt(1) {
			sb.WriteRune('^')
			sb.WriteString(exp.Repr())
		}
	}

	return sb.String()
}
