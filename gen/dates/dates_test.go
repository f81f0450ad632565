package dates_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/mkeeler/fixture-data/gen/dates"
	"github.com/mkeeler/fixture-data/maker"
	"github.com/stretchr/testify/require"
)

func TestDateString_DefaultBounds(t *testing.T) {
	for i := 0; i < 100; i++ {
		out, err := dates.DateString(fmt.Sprintf("d-%d", i))
		require.NoError(t, err)

		parsed, err := time.Parse(dates.DefaultLayout, out)
		require.NoError(t, err)
		require.False(t, parsed.Before(dates.DefaultMin.Truncate(24*time.Hour)))
		require.False(t, parsed.After(dates.DefaultMax))
	}
}

func TestDateString_Deterministic(t *testing.T) {
	first, err := dates.DateString("d1")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := dates.DateString("d1")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestDateString_CustomBounds(t *testing.T) {
	min := time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2000, time.June, 30, 23, 59, 59, 0, time.UTC)
	g := dates.NewDateStringGenerator(dates.WithMin(min), dates.WithMax(max))

	for i := 0; i < 100; i++ {
		out, err := g.Generate(fmt.Sprintf("d-%d", i))
		require.NoError(t, err)

		parsed, err := time.Parse(dates.DefaultLayout, out)
		require.NoError(t, err)
		require.Equal(t, 2000, parsed.Year())
		require.Equal(t, time.June, parsed.Month())
	}
}

func TestDateString_Layout(t *testing.T) {
	out, err := dates.DateString("d1", dates.WithLayout(time.RFC3339))
	require.NoError(t, err)

	_, err = time.Parse(time.RFC3339, out)
	require.NoError(t, err)
}

func TestDateString_SingleInstant(t *testing.T) {
	at := time.Date(2010, time.March, 14, 15, 9, 26, 0, time.UTC)
	out, err := dates.DateString("d1", dates.WithMin(at), dates.WithMax(at), dates.WithLayout(time.RFC3339))
	require.NoError(t, err)
	require.Equal(t, "2010-03-14T15:09:26Z", out)
}

func TestDateString_Invalid(t *testing.T) {
	type testcase struct {
		opts []dates.DateOption
	}
	testcases := map[string]testcase{
		"inverted bounds": {
			opts: []dates.DateOption{
				dates.WithMin(dates.DefaultMax),
				dates.WithMax(dates.DefaultMin),
			},
		},
		"empty layout": {
			opts: []dates.DateOption{dates.WithLayout("")},
		},
	}
	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			_, err := dates.DateString("d1", tc.opts...)
			require.ErrorIs(t, err, maker.ErrConfig)
		})
	}
}
