package maker_test

import (
	"testing"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	echo := maker.Func(func(id identity.ID) (any, error) { return id, nil })

	out, err := maker.Generate(echo, "input-1")
	require.NoError(t, err)

	id, err := identity.FromValue("input-1")
	require.NoError(t, err)
	require.Equal(t, id, out)

	// An identity input passes through untouched, so pre-derived identities
	// can feed further derivation.
	again, err := maker.Generate(echo, id)
	require.NoError(t, err)
	require.Equal(t, id, again)
}

func TestGenerate_UnsupportedInput(t *testing.T) {
	echo := maker.Func(func(id identity.ID) (any, error) { return id, nil })

	_, err := maker.Generate(echo, func() {})
	require.Error(t, err)
}

func TestValue_Resolve(t *testing.T) {
	lit := maker.Lit("fixed")
	require.False(t, lit.IsMaker())

	out, err := lit.Resolve(identity.ID(42))
	require.NoError(t, err)
	require.Equal(t, "fixed", out)

	gen := maker.Gen(maker.Func(func(id identity.ID) (any, error) { return uint64(id), nil }))
	require.True(t, gen.IsMaker())

	out, err = gen.Resolve(identity.ID(42))
	require.NoError(t, err)
	require.Equal(t, uint64(42), out)
}

func TestLits(t *testing.T) {
	values := maker.Lits("a", 2, true)
	require.Len(t, values, 3)
	for i, expected := range []any{"a", 2, true} {
		require.False(t, values[i].IsMaker())
		require.Equal(t, expected, values[i].Literal())
	}
}
