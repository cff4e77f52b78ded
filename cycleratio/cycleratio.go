package cycleratio

import (
	"github.com/ratiograph/digraphx/negcycle"
	"github.com/ratiograph/digraphx/numeric"
	"github.com/ratiograph/digraphx/parametric"
)

// NewMinCycleRatioSolver builds a parametric.Solver fixed to the cost/time
// adapter and the Min direction: r* = min { sum(cost(C))/sum(time(C)) }.
func NewMinCycleRatioSolver[N comparable, E any, F numeric.Field[F]](
	g negcycle.Digraph[N, E],
	cost, time func(E) F,
	opts ...negcycle.FinderOption,
) *parametric.Solver[N, E, F] {
	api := parametric.CostTimeAPI[E, F]{Cost: cost, Time: time}

	return parametric.NewSolver[N, E, F](g, api, parametric.Min, opts...)
}

// MaxCycleRatioSolver computes r* = max { sum(cost(C))/sum(time(C)) } by
// solving the min variant over a negated cost function and negating the
// result, per spec §4.3's "negated adapter" convenience.
type MaxCycleRatioSolver[N comparable, E any, F numeric.Field[F]] struct {
	inner *parametric.Solver[N, E, F]
}

// NewMaxCycleRatioSolver builds a MaxCycleRatioSolver over g using the
// given cost and time readers.
func NewMaxCycleRatioSolver[N comparable, E any, F numeric.Field[F]](
	g negcycle.Digraph[N, E],
	cost, time func(E) F,
	opts ...negcycle.FinderOption,
) *MaxCycleRatioSolver[N, E, F] {
	negatedCost := func(e E) F {
		var zero F

		return zero.Sub(cost(e))
	}
	api := parametric.CostTimeAPI[E, F]{Cost: negatedCost, Time: time}

	return &MaxCycleRatioSolver[N, E, F]{
		inner: parametric.NewSolver[N, E, F](g, api, parametric.Min, opts...),
	}
}

// Run computes the maximum cycle ratio. r0 must be a feasible lower bound:
// some cycle of the graph achieves a ratio at least r0.
func (s *MaxCycleRatioSolver[N, E, F]) Run(dist map[N]F, r0 F) (F, []E, error) {
	var zero F
	negatedR0 := zero.Sub(r0)

	negatedRStar, cycle, err := s.inner.Run(dist, negatedR0)
	if err != nil {
		return negatedRStar, cycle, err
	}

	return zero.Sub(negatedRStar), cycle, nil
}
