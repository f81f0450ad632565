// Package sampling runs a maker across a stream of generated identifying
// inputs to observe its output distribution and derivation latency. It is
// the empirical check on the engine's statistical properties; the engine
// itself never depends on it.
package sampling

import (
	"fmt"

	"golang.org/x/time/rate"
)

const (
	defaultWorkers     = 4
	defaultInputPrefix = "sample"
)

// Config is the configuration for a sampling run
type Config struct {
	// Samples is the number of distinct identifying inputs to derive
	Samples int

	// Rate is the number of derivations per second. Zero means unlimited.
	Rate rate.Limit

	// Workers is the number of concurrent derivation workers
	Workers int

	// InputPrefix is the prefix of the generated identifying inputs;
	// input i is "<prefix>-<i>"
	InputPrefix string
}

func (c *Config) Normalize() error {
	if c.Samples < 1 {
		return fmt.Errorf("invalid Samples configuration: %d", c.Samples)
	}

	if c.Rate < 0 {
		return fmt.Errorf("invalid Rate configuration: %v", c.Rate)
	}

	if c.Workers < 1 {
		c.Workers = defaultWorkers
	}

	if c.InputPrefix == "" {
		c.InputPrefix = defaultInputPrefix
	}

	return nil
}
