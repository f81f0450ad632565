package identity

import (
	"math"
	"math/bits"
)

// MaxFloat is the effective upper bound for unbounded real ranges: the
// largest magnitude below which every integer is representable in a
// float64.
const MaxFloat = float64(1<<53 - 1)

// IntBetween maps id into the inclusive range [min, max] by scaled
// division, not modulo, so small ranges stay bias-free: the result is
// min + floor(id / 2^64 * (max-min+1)), computed as the high word of a
// 128 bit multiply.
//
// Both bounds are reachable: id = 0 yields min and id = MaxUint64 yields
// max. Callers validate min <= max before fitting.
func IntBetween(id ID, min, max int64) int64 {
	if min == math.MinInt64 && max == math.MaxInt64 {
		// Span 2^64 does not fit a uint64; the identity already covers
		// the whole range.
		return int64(uint64(id) + uint64(min))
	}
	span := uint64(max-min) + 1
	hi, _ := bits.Mul64(uint64(id), span)
	return min + int64(hi)
}

// Float01 maps id into [0, 1). The top 53 bits are used so every output is
// exactly representable.
func Float01(id ID) float64 {
	return float64(uint64(id)>>11) / (1 << 53)
}

// FloatBetween maps id into [min, max] inclusive. The coarse position
// comes from id itself over the closed unit interval (so both bounds are
// reachable); a distinct salted sub-identity refines the position below
// the coarse resolution.
func FloatBetween(id ID, min, max float64) float64 {
	span := max - min
	coarse := float64(uint64(id)) / float64(math.MaxUint64)
	fine := Float01(WithSalt(id, "fraction"))

	v := min + coarse*span + fine*(span/(1<<53))
	if v > max {
		return max
	}
	if v < min {
		return min
	}
	return v
}
