package binary_test

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"regexp"
	"testing"

	"github.com/mkeeler/fixture-data/gen/binary"
	"github.com/mkeeler/fixture-data/maker"
	"github.com/stretchr/testify/require"
)

func TestBytes_SizeBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		out, err := binary.Bytes(fmt.Sprintf("b-%d", i))
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(out), 16)
		require.LessOrEqual(t, len(out), 64)
	}
}

func TestBytes_Deterministic(t *testing.T) {
	first, err := binary.Bytes("b1")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := binary.Bytes("b1")
		require.NoError(t, err)
		require.True(t, bytes.Equal(first, again))
	}
}

func TestBytes_FixedSize(t *testing.T) {
	g := binary.NewBytesGenerator(binary.WithMinSize(10), binary.WithMaxSize(10))
	out, err := g.Generate("b1")
	require.NoError(t, err)
	require.Len(t, out, 10)

	// 10 is not a multiple of the 8-byte chain stride; the tail step is
	// truncated rather than padded.
	longer, err := g.Generate("b1", binary.WithMaxSize(18), binary.WithMinSize(18))
	require.NoError(t, err)
	require.Len(t, longer, 18)
	require.True(t, bytes.Equal(out, longer[:10]))
}

func TestBytes_DistinctInputs(t *testing.T) {
	a, err := binary.Bytes("b1", binary.WithMinSize(32), binary.WithMaxSize(32))
	require.NoError(t, err)
	b, err := binary.Bytes("b2", binary.WithMinSize(32), binary.WithMaxSize(32))
	require.NoError(t, err)
	require.False(t, bytes.Equal(a, b))
}

func TestBytes_Invalid(t *testing.T) {
	type testcase struct {
		opts []binary.BytesOption
	}
	testcases := map[string]testcase{
		"negative min": {
			opts: []binary.BytesOption{binary.WithMinSize(-1)},
		},
		"max below min": {
			opts: []binary.BytesOption{binary.WithMinSize(32), binary.WithMaxSize(8)},
		},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			_, err := binary.Bytes("b1", tc.opts...)
			require.ErrorIs(t, err, maker.ErrConfig)
		})
	}
}

func TestBase64_RoundTrips(t *testing.T) {
	out, err := binary.Base64("b1")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(out)
	require.NoError(t, err)

	// The encoded payload is the bytes maker's output for the same input.
	direct, err := binary.Bytes("b1")
	require.NoError(t, err)
	require.True(t, bytes.Equal(direct, raw))
}

var uuidShape = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func TestUUID_Shape(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		out, err := binary.UUID(fmt.Sprintf("u-%d", i))
		require.NoError(t, err)
		require.Regexp(t, uuidShape, out)
		seen[out] = struct{}{}
	}
	require.Len(t, seen, 100)
}

func TestUUID_Deterministic(t *testing.T) {
	first, err := binary.UUID("u1")
	require.NoError(t, err)
	again, err := binary.UUID("u1")
	require.NoError(t, err)
	require.Equal(t, first, again)
}
