package numeric

// Ring is the arithmetic capability required of an edge-weight domain.
// D must be the implementing type itself (F-bounded), so that every method
// returns a concrete D rather than boxing through an interface.
type Ring[D any] interface {
	// Add returns d + other.
	Add(other D) D

	// Sub returns d - other.
	Sub(other D) D

	// Cmp returns a negative number if d < other, zero if equal, and a
	// positive number if d > other.
	Cmp(other D) int

	// IsZero reports whether d is the additive identity.
	IsZero() bool
}

// Zero returns the additive identity for a Ring implementation, obtained by
// subtracting sample from itself via the Sub identity d - d == 0. Callers that already hold a D value should prefer
// d.Sub(d) directly; Zero exists for call sites that only have the type
// parameter and a sample value (e.g. a caller-supplied seed distance).
func Zero[D Ring[D]](sample D) D {
	return sample.Sub(sample)
}

// Lt reports whether a is strictly less than b under the Ring order.
func Lt[D Ring[D]](a, b D) bool {
	return a.Cmp(b) < 0
}

// Gt reports whether a is strictly greater than b under the Ring order.
func Gt[D Ring[D]](a, b D) bool {
	return a.Cmp(b) > 0
}
