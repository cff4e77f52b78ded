package parametric

import "errors"

// ErrZeroDenominator is the domain error an API.ZeroCancel implementation
// must return when a cycle's denominator (e.g. total time) is zero; the
// Solver propagates it unchanged, per spec §4.2/§7.
var ErrZeroDenominator = errors.New("parametric: zero denominator in zero_cancel")
