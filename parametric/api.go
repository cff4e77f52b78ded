package parametric

import "github.com/ratiograph/digraphx/numeric"

// API is the two-method adapter contract spec §4.2 requires from callers:
// a parametric edge weight and a cycle's break-even ratio.
type API[E any, F numeric.Field[F]] interface {
	// Distance is the parametric edge weight at the given ratio. It must
	// be total and pure over every edge the finder might visit, and
	// monotone in ratio in a consistent direction across all edges.
	Distance(ratio F, e E) F

	// ZeroCancel returns the ratio at which the cycle's parametric weight
	// sum is zero. It must return ErrZeroDenominator (or a wrapped form
	// of it) if the cycle's natural denominator is zero.
	ZeroCancel(cycle []E) (F, error)
}

// CostTimeAPI is the canonical cost/time ratio adapter: Distance(r,e) =
// cost(e) - r*time(e), ZeroCancel(C) = sum(cost)/sum(time). Cost and Time
// read whatever numeric fields the edge handle exposes.
type CostTimeAPI[E any, F numeric.Field[F]] struct {
	Cost func(E) F
	Time func(E) F
}

// Distance implements API.
func (a CostTimeAPI[E, F]) Distance(ratio F, e E) F {
	return a.Cost(e).Sub(ratio.Mul(a.Time(e)))
}

// ZeroCancel implements API.
func (a CostTimeAPI[E, F]) ZeroCancel(cycle []E) (F, error) {
	var totalCost, totalTime F
	for _, e := range cycle {
		totalCost = totalCost.Add(a.Cost(e))
		totalTime = totalTime.Add(a.Time(e))
	}
	if totalTime.IsZero() {
		return totalTime, ErrZeroDenominator
	}

	return totalCost.Div(totalTime), nil
}
