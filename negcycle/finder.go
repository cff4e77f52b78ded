package negcycle

import (
	"iter"

	"github.com/ratiograph/digraphx/numeric"
)

// FinderOption configures a Finder at construction time.
type FinderOption func(*finderConfig)

type finderConfig struct {
	maxRelaxPasses int // 0 means unbounded
}

// WithMaxRelaxPasses bounds the number of outer relax passes Howard will
// perform before giving up and recording ErrIterationBudgetExceeded. It is
// the safety net spec §5 recommends for floating-point instantiations
// against ε-cycling; exact domains (IntDomain, BigRatDomain, DecimalDomain)
// normally have no need of it.
func WithMaxRelaxPasses(n int) FinderOption {
	return func(c *finderConfig) { c.maxRelaxPasses = n }
}

// Finder is a negative-cycle finder over a graph of nodes N connected by
// opaque edge handles E, weighted in domain D. It is single-use per
// Howard/HowardQueue call in the sense that its internal policy map is
// cleared at the start of each call; the Finder itself may be reused
// across calls (e.g. by Solver, whose spec explicitly permits "a reused
// finder whose policy is cleared").
type Finder[N comparable, E any, D numeric.Ring[D]] struct {
	g      Digraph[N, E]
	cfg    finderConfig
	policy map[N]policyEntry[N, E]
	err    error
}

// New binds a Finder to a graph view.
func New[N comparable, E any, D numeric.Ring[D]](g Digraph[N, E], opts ...FinderOption) *Finder[N, E, D] {
	f := &Finder[N, E, D]{g: g, policy: make(map[N]policyEntry[N, E])}
	for _, opt := range opts {
		opt(&f.cfg)
	}

	return f
}

// Err returns the error, if any, recorded by the most recent Howard or
// HowardQueue call. It is nil unless the outer-pass budget was exceeded.
func (f *Finder[N, E, D]) Err() error {
	return f.err
}

// Relax performs exactly one Bellman-Ford pass over the graph in its
// iteration order: for every edge (u,v,e), if dist[u]+w(e) < dist[v],
// assigns dist[v] := dist[u]+w(e) and records policy[v] := (u,e). Returns
// whether anything changed.
func (f *Finder[N, E, D]) Relax(dist map[N]D, w func(E) D) bool {
	changed := false
	for u := range f.g.Nodes() {
		du := dist[u]
		for v, e := range f.g.Out(u) {
			cand := du.Add(w(e))
			if cand.Cmp(dist[v]) < 0 {
				dist[v] = cand
				f.policy[v] = policyEntry[N, E]{Pred: u, Edge: e}
				changed = true
			}
		}
	}

	return changed
}

// RelaxQueue is a worklist-driven (Bellman-Ford-Moore / SPFA) alternative
// to Relax: instead of rescanning every edge of the graph on every pass,
// it only rescans the out-edges of nodes whose distance changed since they
// were last processed. It returns whether any distance changed, matching
// Relax's contract so the two are interchangeable inside Howard/HowardQueue.
// The worklist is drained unless some node's distance has been lowered |V|
// times within this call; it then returns true at once, since a negative
// cycle would otherwise keep the worklist from ever draining, and leaves
// cycle extraction to Howard/HowardQueue.
//
// Grounded on original_source's neg_cycle_q.py / min_parmetric_q.py, which
// pair the same policy-graph cycle detection with a deque-based relax for
// faster convergence on sparse graphs.
func (f *Finder[N, E, D]) RelaxQueue(dist map[N]D, w func(E) D) bool {
	changed := false
	inQueue := make(map[N]bool)
	var queue []N
	for n := range f.g.Nodes() {
		queue = append(queue, n)
		inQueue[n] = true
	}
	limit := len(queue)
	lowered := make(map[N]int)

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		inQueue[u] = false
		du := dist[u]
		for v, e := range f.g.Out(u) {
			cand := du.Add(w(e))
			if cand.Cmp(dist[v]) < 0 {
				dist[v] = cand
				f.policy[v] = policyEntry[N, E]{Pred: u, Edge: e}
				changed = true
				lowered[v]++
				if lowered[v] >= limit {
					return true
				}
				if !inQueue[v] {
					queue = append(queue, v)
					inQueue[v] = true
				}
			}
		}
	}

	return changed
}

// FindCycles yields, for the Finder's current policy map, one node per
// cycle present in the induced functional graph — the "colour by seed"
// algorithm of spec §4.1. Each yielded node lies on a distinct cycle;
// CycleList(handle) reconstructs the edges of that cycle.
func (f *Finder[N, E, D]) FindCycles() iter.Seq[N] {
	return func(yield func(N) bool) {
		visited := make(map[N]N, len(f.policy))
		for v := range f.g.Nodes() {
			if _, ok := visited[v]; ok {
				continue
			}
			u := v
			visited[u] = v
			for {
				entry, ok := f.policy[u]
				if !ok {
					break
				}
				u = entry.Pred
				if seed, ok := visited[u]; ok {
					if seed == v {
						if !yield(u) {
							return
						}
					}
					break
				}
				visited[u] = v
			}
		}
	}
}

// cycleStep is one edge of a reconstructed cycle: the edge from From to To.
type cycleStep[N any, E any] struct {
	From N
	To   N
	Edge E
}

// walkCycle walks policy links from handle back to handle, returning the
// traversed steps in the order CycleList visits them (reverse of the
// u->v traversal direction, per spec §4.1).
func (f *Finder[N, E, D]) walkCycle(handle N) []cycleStep[N, E] {
	var steps []cycleStep[N, E]
	v := handle
	for {
		entry, ok := f.policy[v]
		if !ok {
			panic(ErrNoPolicyEntry)
		}
		steps = append(steps, cycleStep[N, E]{From: entry.Pred, To: v, Edge: entry.Edge})
		v = entry.Pred
		if v == handle {
			break
		}
	}

	return steps
}

// CycleList returns the edge sequence reachable by walking policy links
// from handle back to handle. Panics with ErrNoPolicyEntry if handle has
// no policy entry — a contract violation per spec §7; FindCycles never
// yields such a handle.
func (f *Finder[N, E, D]) CycleList(handle N) []E {
	steps := f.walkCycle(handle)
	edges := make([]E, len(steps))
	for i, s := range steps {
		edges[i] = s.Edge
	}

	return edges
}

// IsNegative verifies that some edge in the cycle rooted at handle still
// violates the relaxed fixed-point condition dist[v] <= dist[u]+w(e); that
// is, some edge could still be relaxed, confirming the cycle is negative
// under the current numeric state rather than a stale artifact from an
// earlier pass. See DESIGN.md for the sign convention used (spec §4.1's
// prose and spec §3's stated invariant disagree on the comparison
// direction; this implementation follows §3's invariant).
func (f *Finder[N, E, D]) IsNegative(handle N, dist map[N]D, w func(E) D) bool {
	for _, s := range f.walkCycle(handle) {
		lhs := dist[s.From].Add(w(s.Edge))
		if lhs.Cmp(dist[s.To]) < 0 {
			return true
		}
	}

	return false
}

// Howard lazily produces negative cycles via the published four-step loop:
// clear policy once, then alternate relax passes with policy-graph cycle
// extraction until either a pass changes nothing (no negative cycle
// remains) or a pass yields at least one negative cycle (the sequence
// ends so the caller can re-parameterise w and restart).
func (f *Finder[N, E, D]) Howard(dist map[N]D, w func(E) D) iter.Seq[[]E] {
	return f.howard(dist, w, f.Relax)
}

// HowardQueue is Howard using RelaxQueue in place of Relax.
func (f *Finder[N, E, D]) HowardQueue(dist map[N]D, w func(E) D) iter.Seq[[]E] {
	return f.howard(dist, w, f.RelaxQueue)
}

func (f *Finder[N, E, D]) howard(dist map[N]D, w func(E) D, relax func(map[N]D, func(E) D) bool) iter.Seq[[]E] {
	return func(yield func([]E) bool) {
		f.err = nil
		f.policy = make(map[N]policyEntry[N, E])

		for pass := 0; ; pass++ {
			if f.cfg.maxRelaxPasses > 0 && pass >= f.cfg.maxRelaxPasses {
				f.err = ErrIterationBudgetExceeded
				return
			}
			if !relax(dist, w) {
				return
			}

			improved := false
			for h := range f.FindCycles() {
				if !f.IsNegative(h, dist, w) {
					continue
				}
				improved = true
				if !yield(f.CycleList(h)) {
					return
				}
			}
			if improved {
				return
			}
		}
	}
}
