package canonical_test

import (
	"math"
	"testing"

	"github.com/mkeeler/fixture-data/canonical"
	"github.com/stretchr/testify/require"
)

func TestMarshal_KeyOrderIndependence(t *testing.T) {
	// Maps built in different insertion orders must encode identically.
	a := map[string]any{}
	a["alpha"] = 1
	a["beta"] = []any{true, "x"}
	a["gamma"] = map[string]any{"inner": nil, "other": 2.5}

	b := map[string]any{}
	b["gamma"] = map[string]any{"other": 2.5, "inner": nil}
	b["beta"] = []any{true, "x"}
	b["alpha"] = 1

	encA, err := canonical.Marshal(a)
	require.NoError(t, err)
	encB, err := canonical.Marshal(b)
	require.NoError(t, err)
	require.Equal(t, encA, encB)
}

func TestMarshal_TypeTagging(t *testing.T) {
	// Values that render the same must still encode differently.
	distinct := []any{
		int64(1),
		"1",
		true,
		float64(1),
		[]any{int64(1)},
		map[string]any{"1": nil},
	}

	seen := make(map[string]any)
	for _, v := range distinct {
		enc, err := canonical.Marshal(v)
		require.NoError(t, err)
		prev, dup := seen[string(enc)]
		require.False(t, dup, "%#v and %#v encoded identically", prev, v)
		seen[string(enc)] = v
	}
}

func TestMarshal_NumericKinds(t *testing.T) {
	// All integer kinds carrying the same value agree.
	enc1, err := canonical.Marshal(int(42))
	require.NoError(t, err)
	enc2, err := canonical.Marshal(int64(42))
	require.NoError(t, err)
	enc3, err := canonical.Marshal(uint8(42))
	require.NoError(t, err)
	require.Equal(t, enc1, enc2)
	require.Equal(t, enc1, enc3)
}

func TestMarshal_Deterministic(t *testing.T) {
	v := map[string]any{
		"nested": []any{1.5, "two", map[string]any{"deep": []any{nil, false}}},
	}
	first, err := canonical.Marshal(v)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := canonical.Marshal(v)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestMarshal_Errors(t *testing.T) {
	type testcase struct {
		value     any
		expectErr error
	}

	cyclic := map[string]any{}
	cyclic["self"] = cyclic

	cyclicSlice := []any{nil}
	cyclicSlice[0] = cyclicSlice

	testcases := map[string]testcase{
		"function values are unsupported": {
			value:     func() {},
			expectErr: canonical.ErrUnsupported,
		},
		"channels are unsupported": {
			value:     make(chan int),
			expectErr: canonical.ErrUnsupported,
		},
		"non-string map keys are unsupported": {
			value:     map[int]any{1: "x"},
			expectErr: canonical.ErrUnsupported,
		},
		"cyclic map fails": {
			value:     cyclic,
			expectErr: canonical.ErrCycle,
		},
		"cyclic slice fails": {
			value:     cyclicSlice,
			expectErr: canonical.ErrCycle,
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			_, err := canonical.Marshal(tc.value)
			require.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestMarshal_NonFiniteFloats(t *testing.T) {
	for _, v := range []float64{math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := canonical.Marshal(map[string]any{"v": v})
		require.NoError(t, err)
	}
}
