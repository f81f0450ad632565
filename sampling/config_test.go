package sampling

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigNormalize(t *testing.T) {
	type testcase struct {
		conf     Config
		err      bool
		expected Config
	}

	testcases := map[string]testcase{
		"defaults": {
			conf: Config{Samples: 100},
			expected: Config{
				Samples:     100,
				Workers:     defaultWorkers,
				InputPrefix: defaultInputPrefix,
			},
		},
		"explicit": {
			conf: Config{
				Samples:     50,
				Rate:        250,
				Workers:     8,
				InputPrefix: "record",
			},
			expected: Config{
				Samples:     50,
				Rate:        250,
				Workers:     8,
				InputPrefix: "record",
			},
		},
		"zero samples": {
			conf: Config{},
			err:  true,
		},
		"negative samples": {
			conf: Config{Samples: -3},
			err:  true,
		},
		"negative rate": {
			conf: Config{Samples: 10, Rate: -1},
			err:  true,
		},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			err := tc.conf.Normalize()
			if tc.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, tc.conf)
		})
	}
}
