package negcycle

import "errors"

// ErrIterationBudgetExceeded is returned via Finder.Err after Howard's
// sequence ends early because the caller-configured outer-pass budget
// (see WithMaxRelaxPasses) was exhausted without reaching a fixed point.
// It is the "convergence failure" case spec §7 allows implementations to
// surface as a distinguished result for floating-point instantiations.
var ErrIterationBudgetExceeded = errors.New("negcycle: relax-pass budget exceeded before convergence")

// ErrNoPolicyEntry is the panic value used when CycleList is called with a
// handle that has no policy entry. Spec §7 classifies this as a contract
// violation that "implementers may treat as a fatal assertion"; this
// package takes that option rather than returning a distinguished error,
// since CycleList's handles always come from FindCycles, which by
// construction only yields nodes with a policy entry.
var ErrNoPolicyEntry = errors.New("negcycle: handle has no policy entry")
