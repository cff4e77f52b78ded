package numeric

import "github.com/shopspring/decimal"

// DecimalDomain is the shopspring/decimal instantiation of both Ring and
// Field: exact fixed-point arithmetic, grounded on wyfcoding-pkg's use of
// decimal.Decimal for exact financial-style values. Preferred over
// BigRatDomain when the caller wants exact decimal output formatting
// (e.g. reporting a cost/time ratio to a fixed number of places) rather
// than a rational numerator/denominator pair.
type DecimalDomain struct {
	d decimal.Decimal
}

// NewDecimal wraps a decimal.Decimal as a DecimalDomain.
func NewDecimal(d decimal.Decimal) DecimalDomain {
	return DecimalDomain{d: d}
}

// DecimalFromInt64 builds an exact DecimalDomain equal to n.
func DecimalFromInt64(n int64) DecimalDomain {
	return DecimalDomain{d: decimal.NewFromInt(n)}
}

// DecimalFromFloat builds a DecimalDomain from a float64, for convenient
// literals in tests and CLI flag parsing.
func DecimalFromFloat(f float64) DecimalDomain {
	return DecimalDomain{d: decimal.NewFromFloat(f)}
}

// Decimal exposes the underlying decimal.Decimal.
func (d DecimalDomain) Decimal() decimal.Decimal { return d.d }

// Add returns d + other.
func (d DecimalDomain) Add(other DecimalDomain) DecimalDomain {
	return DecimalDomain{d: d.d.Add(other.d)}
}

// Sub returns d - other.
func (d DecimalDomain) Sub(other DecimalDomain) DecimalDomain {
	return DecimalDomain{d: d.d.Sub(other.d)}
}

// Mul returns d * other.
func (d DecimalDomain) Mul(other DecimalDomain) DecimalDomain {
	return DecimalDomain{d: d.d.Mul(other.d)}
}

// Div returns d / other. Dividing by zero returns a zero-valued result;
// callers should check other.IsZero() first.
func (d DecimalDomain) Div(other DecimalDomain) DecimalDomain {
	if other.IsZero() {
		return DecimalDomain{d: decimal.Zero}
	}

	return DecimalDomain{d: d.d.Div(other.d)}
}

// Cmp returns -1, 0, or 1 per exact decimal comparison.
func (d DecimalDomain) Cmp(other DecimalDomain) int {
	return d.d.Cmp(other.d)
}

// IsZero reports whether d is exactly zero.
func (d DecimalDomain) IsZero() bool {
	return d.d.IsZero()
}

// String renders the decimal value.
func (d DecimalDomain) String() string {
	return d.d.String()
}
