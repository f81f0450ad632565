package numbers

import (
	"fmt"
	"math"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type floatConfig struct {
	min float64
	max float64
}

func defaultFloatConfig() floatConfig {
	return floatConfig{min: 0, max: identity.MaxFloat}
}

func (c floatConfig) validate() error {
	if math.IsNaN(c.min) || math.IsNaN(c.max) || math.IsInf(c.min, 0) || math.IsInf(c.max, 0) {
		return fmt.Errorf("%w: float bounds must be finite", maker.ErrConfig)
	}
	if c.min > c.max {
		return fmt.Errorf("%w: float min (%v) above max (%v)", maker.ErrConfig, c.min, c.max)
	}
	return nil
}

// FloatOption configures a FloatGenerator.
type FloatOption func(*floatConfig)

// WithFloatMin sets the inclusive lower bound. Default 0.
func WithFloatMin(min float64) FloatOption {
	return func(c *floatConfig) { c.min = min }
}

// WithFloatMax sets the inclusive upper bound. Default identity.MaxFloat.
func WithFloatMax(max float64) FloatOption {
	return func(c *floatConfig) { c.max = max }
}

// FloatGenerator derives reals in a configured inclusive range. A distinct
// salted sub-identity refines the value below the coarse resolution of the
// primary identity.
type FloatGenerator struct {
	conf floatConfig
}

func NewFloatGenerator(opts ...FloatOption) *FloatGenerator {
	g := &FloatGenerator{conf: defaultFloatConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	return g
}

// With returns a copy bound to additional options.
func (g *FloatGenerator) With(opts ...FloatOption) *FloatGenerator {
	next := &FloatGenerator{conf: g.conf}
	for _, opt := range opts {
		opt(&next.conf)
	}
	return next
}

// Generate derives the real determined by input.
func (g *FloatGenerator) Generate(input any, opts ...FloatOption) (float64, error) {
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
	return floatFrom(id, conf), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *FloatGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return floatFrom(id, g.conf), nil
}

func floatFrom(id identity.ID, conf floatConfig) float64 {
	return identity.FloatBetween(identity.WithSalt(id, "float"), conf.min, conf.max)
}

// Float derives a real with default configuration plus opts.
func Float(input any, opts ...FloatOption) (float64, error) {
	return NewFloatGenerator().Generate(input, opts...)
}
