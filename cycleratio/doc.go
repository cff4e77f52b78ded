// Package cycleratio provides the cost/time convenience wrappers spec §6
// names directly: MinCycleRatioSolver and MaxCycleRatioSolver, both fixing
// package parametric's API to the canonical cost/time adapter.
//
// MinCycleRatioSolver is parametric.Solver with Extremal = Min, used
// as-is. MaxCycleRatioSolver instead follows spec §4.3's other described
// route — "another performs the max variant using the negated adapter" —
// by negating the cost function and solving the min variant internally,
// then negating the returned ratio back. Both routes are valid mirror
// images of the min algorithm; this package demonstrates the negated-
// adapter one since parametric.Solver itself already demonstrates the
// direct Extremal-flag one.
package cycleratio
