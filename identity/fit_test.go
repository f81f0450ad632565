package identity_test

import (
	"math"
	"testing"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/stretchr/testify/require"
)

func TestIntBetween_Inclusive(t *testing.T) {
	type testcase struct {
		min int64
		max int64
	}
	testcases := map[string]testcase{
		"small range":     {min: 1, max: 99},
		"single value":    {min: 7, max: 7},
		"negative range":  {min: -50, max: -10},
		"spanning zero":   {min: -5, max: 5},
		"unbounded":       {min: 0, max: math.MaxInt64},
		"full int64 span": {min: math.MinInt64, max: math.MaxInt64},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			for _, id := range sampleIDs(5000) {
				v := identity.IntBetween(id, tc.min, tc.max)
				require.GreaterOrEqual(t, v, tc.min)
				require.LessOrEqual(t, v, tc.max)
			}
		})
	}
}

func TestIntBetween_BoundsReachable(t *testing.T) {
	// The extreme ordinals land exactly on the bounds.
	require.Equal(t, int64(10), identity.IntBetween(identity.ID(0), 10, 20))
	require.Equal(t, int64(20), identity.IntBetween(identity.ID(math.MaxUint64), 10, 20))
}

func TestIntBetween_SmallRangeCoverage(t *testing.T) {
	// Every value of a small range shows up across enough samples.
	seen := make(map[int64]int)
	for _, id := range sampleIDs(5000) {
		seen[identity.IntBetween(id, 0, 9)]++
	}
	require.Len(t, seen, 10)
	for v, n := range seen {
		// Near-uniform: each of 10 buckets gets ~500 of 5000.
		require.Greater(t, n, 350, "value %d under-selected", v)
		require.Less(t, n, 650, "value %d over-selected", v)
	}
}

func TestFloat01_HalfOpen(t *testing.T) {
	for _, id := range sampleIDs(5000) {
		v := identity.Float01(id)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
	require.Equal(t, 0.0, identity.Float01(identity.ID(0)))
}

func TestFloatBetween_Inclusive(t *testing.T) {
	type testcase struct {
		min float64
		max float64
	}
	testcases := map[string]testcase{
		"unit interval":     {min: 0, max: 1},
		"wide range":        {min: -1000, max: 1000},
		"fractional bounds": {min: 0.25, max: 0.75},
		"sub-integer":       {min: 1.1, max: 1.2},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			for _, id := range sampleIDs(5000) {
				v := identity.FloatBetween(id, tc.min, tc.max)
				require.GreaterOrEqual(t, v, tc.min)
				require.LessOrEqual(t, v, tc.max)
			}
		})
	}
}

func TestFloatBetween_FractionIndependentOfWhole(t *testing.T) {
	// Two identities mapping to the same integer part still get distinct
	// fractions for almost all inputs.
	distinct := make(map[float64]struct{})
	for _, id := range sampleIDs(100) {
		distinct[identity.FloatBetween(id, 0, 1)] = struct{}{}
	}
	require.Greater(t, len(distinct), 95)
}
