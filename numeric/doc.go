// Package numeric defines the abstract arithmetic contracts consumed by
// package negcycle and package parametric, plus the concrete domains that
// satisfy them.
//
// The algorithmic core is polymorphic over two capability sets:
//
//   - Ring[D]: the edge-weight domain. Needs addition, subtraction, and a
//     total order — exactly what Bellman-Ford relaxation and cycle-sign
//     checking require.
//   - Field[R]: the ratio domain. Adds multiplication and division on top
//     of Ring, since zero_cancel divides an accumulated cost by an
//     accumulated time.
//
// Both are expressed as F-bounded generic interfaces (D must implement
// Ring[D]; R must implement Field[R]) so that arithmetic methods return the
// concrete type rather than an interface, avoiding boxing on every
// relaxation step.
//
// Four concrete domains ship here: IntDomain (int64), Float64Domain,
// BigRatDomain (math/big.Rat, exact arbitrary-precision rationals), and
// DecimalDomain (shopspring/decimal, exact fixed-point decimals). A solve
// never mixes domains: the generic parameters D and R are fixed once per
// Finder/Solver instantiation.
package numeric
