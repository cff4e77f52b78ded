package parametric

import (
	"github.com/ratiograph/digraphx/negcycle"
	"github.com/ratiograph/digraphx/numeric"
)

// Extremal selects which direction Solver optimises the ratio in.
type Extremal int

const (
	// Min drives the ratio down: Run returns the minimum zero_cancel
	// value reachable by any cycle.
	Min Extremal = iota
	// Max drives the ratio up: Run returns the maximum zero_cancel value
	// reachable by any cycle.
	Max
)

// Solver computes r* = min (or max) { zero_cancel(C) : C a cycle of the
// graph } together with the argmin (argmax) cycle, per spec §4.3. The min
// variant is the one spelled out in full; the max variant is its mirror
// image with > in place of < and a feasible lower bound in place of an
// upper one.
type Solver[N comparable, E any, F numeric.Field[F]] struct {
	g          negcycle.Digraph[N, E]
	api        API[E, F]
	extremal   Extremal
	finderOpts []negcycle.FinderOption
}

// NewSolver binds a Solver to a graph, an adapter, and an optimisation
// direction.
func NewSolver[N comparable, E any, F numeric.Field[F]](
	g negcycle.Digraph[N, E],
	api API[E, F],
	extremal Extremal,
	opts ...negcycle.FinderOption,
) *Solver[N, E, F] {
	return &Solver[N, E, F]{g: g, api: api, extremal: extremal, finderOpts: opts}
}

// Run executes the algorithm of spec §4.3: starting from the feasible
// bound r0, repeatedly finds negative cycles under the current
// parametric weight, tightens the running best ratio using ZeroCancel,
// and restarts with the tightened ratio until a pass improves nothing.
//
// Returns (r0, nil, nil) if the very first pass exposes no cycle — the
// caller is responsible for providing an r0 at which a negative cycle
// exists (spec §4.3 "Failure semantics"). If ZeroCancel fails, the error
// is surfaced unchanged and dist is left in whatever state the last relax
// pass wrote, matching scenario S5.
func (s *Solver[N, E, F]) Run(dist map[N]F, r0 F) (F, []E, error) {
	rStar := r0
	var cStar []E

	finder := negcycle.New[N, E, F](s.g, s.finderOpts...)
	r := r0

	for {
		w := func(e E) F { return s.api.Distance(r, e) }

		improved := false
		for cycle := range finder.Howard(dist, w) {
			ri, err := s.api.ZeroCancel(cycle)
			if err != nil {
				return rStar, cStar, err
			}
			if s.better(ri, rStar) {
				rStar, cStar, improved = ri, cycle, true
			}
		}
		if err := finder.Err(); err != nil {
			return rStar, cStar, err
		}
		if !improved {
			return rStar, cStar, nil
		}
		r = rStar
	}
}

// better reports whether candidate strictly improves on best for this
// Solver's extremal direction.
func (s *Solver[N, E, F]) better(candidate, best F) bool {
	if s.extremal == Max {
		return numeric.Gt(candidate, best)
	}

	return numeric.Lt(candidate, best)
}
