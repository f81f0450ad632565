// Package numbers provides the primitive numeric makers: integers, reals,
// and booleans, each deterministically derived from an identifying input.
package numbers

import (
	"fmt"
	"math"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

// Unbounded is the default integer upper bound: the full representable
// magnitude of an identity scaled to the int64 domain.
const Unbounded = int64(math.MaxInt64)

type intConfig struct {
	min int64
	max int64
}

func defaultIntConfig() intConfig {
	return intConfig{min: 0, max: Unbounded}
}

func (c intConfig) validate() error {
	if c.min > c.max {
		return fmt.Errorf("%w: int min (%d) above max (%d)", maker.ErrConfig, c.min, c.max)
	}
	return nil
}

// IntOption configures an IntGenerator.
type IntOption func(*intConfig)

// WithIntMin sets the inclusive lower bound. Default 0.
func WithIntMin(min int64) IntOption {
	return func(c *intConfig) { c.min = min }
}

// WithIntMax sets the inclusive upper bound. Default Unbounded.
func WithIntMax(max int64) IntOption {
	return func(c *intConfig) { c.max = max }
}

// IntGenerator derives integers in a configured inclusive range.
type IntGenerator struct {
	conf intConfig
}

func NewIntGenerator(opts ...IntOption) *IntGenerator {
	g := &IntGenerator{conf: defaultIntConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	return g
}

// With returns a copy bound to additional options. Later bindings override
// earlier ones key by key; call-site options override both.
func (g *IntGenerator) With(opts ...IntOption) *IntGenerator {
	next := &IntGenerator{conf: g.conf}
	for _, opt := range opts {
		opt(&next.conf)
	}
	return next
}

// Generate derives the integer determined by input.
func (g *IntGenerator) Generate(input any, opts ...IntOption) (int64, error) {
	conf := g.conf
	for _, opt := range opts {
		opt(&conf)
	}
	if err := conf.validate(); err != nil {
		return 0, err
	}
	id, err := identity.FromValue(input)
	if err != nil {
		return 0, err
	}
	return intFrom(id, conf), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *IntGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return intFrom(id, g.conf), nil
}

func intFrom(id identity.ID, conf intConfig) int64 {
	return identity.IntBetween(identity.WithSalt(id, "int"), conf.min, conf.max)
}

// Int derives an integer with default configuration plus opts.
func Int(input any, opts ...IntOption) (int64, error) {
	return NewIntGenerator().Generate(input, opts...)
}
