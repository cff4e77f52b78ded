package numeric

// Field is the arithmetic capability required of a ratio domain: a Ring
// extended with multiplication and division, matching spec's requirement
// that Ratio support "+ - x / and exact or tolerable equality".
type Field[R any] interface {
	Ring[R]

	// Mul returns r * other.
	Mul(other R) R

	// Div returns r / other. Implementations report division-by-zero as
	// described by the concrete domain's documentation; the parametric
	// layer never calls Div with a zero divisor without checking IsZero
	// first (see parametric.ErrZeroDenominator).
	Div(other R) R
}
