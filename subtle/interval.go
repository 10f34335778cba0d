package subtle

import "math"

// maxHalfSize is the widest half block: two halves of 32 bits cover the
// whole 64-bit offset space.
const maxHalfSize = 32

// Interval is the closed range [Min, Max] of signed 64-bit values.
type Interval struct {
	Min int64
	Max int64
}

// Last returns the largest zero-based offset into the interval, i.e. the
// span minus one. The subtraction happens in the unsigned domain so it
// cannot overflow, even for the full int64 range where the span itself
// (2^64) has no uint64 representation.
func (iv Interval) Last() uint64 {
	return uint64(iv.Max) - uint64(iv.Min)
}

// Contains reports whether v lies in [Min, Max].
func (iv Interval) Contains(v int64) bool {
	return v >= iv.Min && v <= iv.Max
}

// AtLeast reports whether Max - Min >= diff. Intervals whose width does
// not fit a signed subtraction are always large enough and the
// difference is not computed.
func (iv Interval) AtLeast(diff int64) bool {
	if (iv.Min > 0 && iv.Max < math.MinInt64+iv.Min) ||
		(iv.Min < 0 && iv.Max > math.MaxInt64+iv.Min) {
		return true
	}
	return iv.Max-iv.Min >= diff
}

// offset converts v into its zero-based position inside the interval.
func (iv Interval) offset(v int64) uint64 {
	return uint64(v) - uint64(iv.Min)
}

// at converts a zero-based offset back into an absolute value.
func (iv Interval) at(off uint64) int64 {
	return int64(uint64(iv.Min) + off)
}

// HalfSize returns the smallest half block width h, 1 <= h <= 32, such
// that a block of 2h bits addresses every offset up to last.
func HalfSize(last uint64) uint {
	h := uint(1)
	for h < maxHalfSize && uint64(1)<<(2*h)-1 < last {
		h++
	}
	return h
}
