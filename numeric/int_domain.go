package numeric

// IntDomain is the int64 instantiation of Ring. It is not a Field (integer
// division is not exact), so it is used as an edge-weight domain D but
// never as a ratio domain R.
type IntDomain int64

// Add returns d + other.
func (d IntDomain) Add(other IntDomain) IntDomain { return d + other }

// Sub returns d - other.
func (d IntDomain) Sub(other IntDomain) IntDomain { return d - other }

// Cmp returns -1, 0, or 1 per the usual integer order.
func (d IntDomain) Cmp(other IntDomain) int {
	switch {
	case d < other:
		return -1
	case d > other:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether d == 0.
func (d IntDomain) IsZero() bool { return d == 0 }
