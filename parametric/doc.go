// Package parametric implements the L2/L3 layers of Howard's method: the
// adapter contract (API) that maps a ratio and an edge to a parametric
// weight and a cycle to its break-even ratio, and the Solver that drives
// package negcycle with that contract until the extremal ratio is found.
//
// Solver is generic over a single field type F (satisfying
// numeric.Field[F]) used for both edge weights and ratios. The source
// specification allows these to be two distinct types (a Ring-only weight
// domain and a separate Field ratio domain); this package unifies them,
// since every concrete use in this repository — plain float64 cost/time
// values and an exact rational or decimal ratio — needs the weight domain
// to support division anyway (zero_cancel divides accumulated cost by
// accumulated time), so nothing is lost by requiring Field everywhere. See
// DESIGN.md for the justification.
package parametric
