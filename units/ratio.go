package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Ratio is an exact rational number used as a dimension exponent.  Ratios are
// always stored in lowest terms with a positive denominator so that two equal
// ratios are equal as Go values.
type Ratio struct {
	Num, Den int
}

// NewRatio creates a new normalized ratio from a numerator and denominator.
// The denominator must be nonzero.
func NewRatio(num, den int) Ratio {
	if den < 0 {
		num, den = -num, -den
	}

	g := gcd(abs(num), den)
	if g > 1 {
		num /= g
		den /= g
	}

	if num == 0 {
		den = 1
	}

	return Ratio{Num: num, Den: den}
}

// RatioFromInt creates a ratio equal to the integer n.
func RatioFromInt(n int) Ratio {
	return Ratio{Num: n, Den: 1}
}

// ParseRatio parses the text of a numeric literal (integer or decimal) into
// an exact ratio: eg. `0.5` parses to 1/2.
func ParseRatio(lit string) (Ratio, error) {
	if ndx := strings.IndexByte(lit, '.'); ndx != -1 {
		whole, frac := lit[:ndx], lit[ndx+1:]

		num, err := strconv.Atoi(whole + frac)
		if err != nil {
			return Ratio{}, err
		}

		den := 1
		for range frac {
			den *= 10
		}

		return NewRatio(num, den), nil
	}

	num, err := strconv.Atoi(lit)
	if err != nil {
		return Ratio{}, err
	}

	return RatioFromInt(num), nil
}

// Add returns the sum of two ratios.
func (r Ratio) Add(o Ratio) Ratio {
	return NewRatio(r.Num*o.Den+o.Num*r.Den, r.Den*o.Den)
}

// Sub returns the difference of two ratios.
func (r Ratio) Sub(o Ratio) Ratio {
	return NewRatio(r.Num*o.Den-o.Num*r.Den, r.Den*o.Den)
}

// Mul returns the product of two ratios.
func (r Ratio) Mul(o Ratio) Ratio {
	return NewRatio(r.Num*o.Num, r.Den*o.Den)
}

// Neg returns the negation of the ratio.
func (r Ratio) Neg() Ratio {
	return Ratio{Num: -r.Num, Den: r.Den}
}

// IsZero returns whether the ratio is zero.
func (r Ratio) IsZero() bool {
	return r.Num == 0
}

// Repr returns the representative string for the ratio: `2`, `-1`, `1/2`.
func (r Ratio) Repr() string {
	if r.Den == 1 {
		return strconv.Itoa(r.Num)
	}

	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// -----------------------------------------------------------------------------

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
