package fenv

// RoundAway reports whether a value truncated toward zero must have its
// magnitude incremented by one unit in the last place.
//
// neg is the sign of the exact value, lsb the last retained bit, round
// the first discarded bit and sticky the OR of every bit after it.
func RoundAway(m RoundingMode, neg, lsb, round, sticky bool) bool {
	switch m {
	case ToNearest:
		return round && (lsb || sticky)
	case Upward:
		return !neg && (round || sticky)
	case Downward:
		return neg && (round || sticky)
	default:
		return false
	}
}

// OverflowsToInf reports whether a result too large for the format
// becomes infinity rather than the largest finite value.
func OverflowsToInf(m RoundingMode, neg bool) bool {
	switch m {
	case ToNearest:
		return true
	case Upward:
		return !neg
	case Downward:
		return neg
	default:
		return false
	}
}
