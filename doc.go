// Package digraphx is a library of algorithms for parametric optimization
// on weighted directed graphs. Its flagship capability is solving the
// minimum (or maximum) cost-to-time ratio cycle problem via Howard's
// policy-iteration method, layered on a negative-cycle finder built from
// Bellman-Ford-style edge relaxation.
//
// The module is organized as:
//
//	core/        — the graph container: thread-safe Graph, Vertex, Edge
//	numeric/     — Ring/Field arithmetic contracts and concrete domains
//	             (int64, float64, exact big.Rat, shopspring/decimal)
//	negcycle/    — the negative-cycle finder: relax, colour-by-seed cycle
//	             detection, and Howard's four-step loop
//	parametric/  — the adapter contract and the min/max ratio solver
//	cycleratio/  — cost/time convenience wrappers over parametric.Solver
//	graphadapter/— bridges core.Graph into the negcycle.Digraph contract
//	cmd/digraphx/— a CLI front-end for ad hoc solves against a graph file
//
// A typical solve wires these together: build a core.Graph, wrap it with
// graphadapter.FromCoreGraph, construct a solver with
// cycleratio.NewMinCycleRatioSolver (or NewMaxCycleRatioSolver) and cost/time
// attribute readers, and call Run
// with an initial potential map and a feasible ratio bound.
//
// See SPEC_FULL.md for the full component design and DESIGN.md for the
// grounding of each package in this module's own history.
package digraphx
