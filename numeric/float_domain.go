package numeric

import "math"

// floatEpsilon is the tolerance used by Float64Domain.Cmp and IsZero to
// absorb the drift inherent to floating point arithmetic across many
// relaxation passes. Spec section 9 treats the ratio field's equality as
// "exact or tolerable"; float64 is the tolerable instantiation.
const floatEpsilon = 1e-9

// Float64Domain is the float64 instantiation of both Ring and Field. It is
// the default, lowest-friction domain for both edge weights and ratios.
type Float64Domain float64

// Add returns d + other.
func (d Float64Domain) Add(other Float64Domain) Float64Domain { return d + other }

// Sub returns d - other.
func (d Float64Domain) Sub(other Float64Domain) Float64Domain { return d - other }

// Mul returns d * other.
func (d Float64Domain) Mul(other Float64Domain) Float64Domain { return d * other }

// Div returns d / other.
func (d Float64Domain) Div(other Float64Domain) Float64Domain { return d / other }

// Cmp compares d and other with an epsilon tolerance; values within
// floatEpsilon of each other compare equal.
func (d Float64Domain) Cmp(other Float64Domain) int {
	diff := float64(d - other)
	if math.Abs(diff) < floatEpsilon {
		return 0
	}
	if diff < 0 {
		return -1
	}

	return 1
}

// IsZero reports whether d is within floatEpsilon of zero.
func (d Float64Domain) IsZero() bool {
	return math.Abs(float64(d)) < floatEpsilon
}
