// Package dates provides the date-string maker: a deterministic timestamp
// between configurable bounds, rendered with a configurable layout.
package dates

import (
	"fmt"
	"time"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

// Default bounds and layout.
var (
	DefaultMin = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	DefaultMax = time.Date(2019, time.December, 31, 23, 59, 59, 0, time.UTC)
)

const DefaultLayout = "2006-01-02"

type dateConfig struct {
	min    time.Time
	max    time.Time
	layout string
}

func defaultDateConfig() dateConfig {
	return dateConfig{min: DefaultMin, max: DefaultMax, layout: DefaultLayout}
}

func (c dateConfig) validate() error {
	if c.layout == "" {
		return fmt.Errorf("%w: empty date layout", maker.ErrConfig)
	}
	if c.min.After(c.max) {
		return fmt.Errorf("%w: date min (%s) after max (%s)",
			maker.ErrConfig, c.min.Format(time.RFC3339), c.max.Format(time.RFC3339))
	}
	return nil
}

// DateOption configures a DateStringGenerator.
type DateOption func(*dateConfig)

// WithMin sets the inclusive earliest timestamp.
func WithMin(min time.Time) DateOption {
	return func(c *dateConfig) { c.min = min }
}

// WithMax sets the inclusive latest timestamp.
func WithMax(max time.Time) DateOption {
	return func(c *dateConfig) { c.max = max }
}

// WithLayout sets the time.Format layout of the output.
func WithLayout(layout string) DateOption {
	return func(c *dateConfig) { c.layout = layout }
}

// DateStringGenerator derives formatted timestamps between its bounds.
type DateStringGenerator struct {
	conf dateConfig
}

func NewDateStringGenerator(opts ...DateOption) *DateStringGenerator {
	g := &DateStringGenerator{conf: defaultDateConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	return g
}

// With returns a copy bound to additional options.
func (g *DateStringGenerator) With(opts ...DateOption) *DateStringGenerator {
	next := &DateStringGenerator{conf: g.conf}
	for _, opt := range opts {
		opt(&next.conf)
	}
	return next
}

// Generate derives the date string determined by input.
func (g *DateStringGenerator) Generate(input any, opts ...DateOption) (string, error) {
	conf := g.conf
	for _, opt := range opts {
		opt(&conf)
	}
	if err := conf.validate(); err != nil {
		return "", err
	}
	id, err := identity.FromValue(input)
	if err != nil {
		return "", err
	}
	return dateFrom(id, conf), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *DateStringGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return dateFrom(id, g.conf), nil
}

func dateFrom(id identity.ID, conf dateConfig) string {
	sec := identity.IntBetween(identity.WithSalt(id, "date"), conf.min.Unix(), conf.max.Unix())
	return time.Unix(sec, 0).UTC().Format(conf.layout)
}

// DateString derives a date string with default configuration plus opts.
func DateString(input any, opts ...DateOption) (string, error) {
	return NewDateStringGenerator().Generate(input, opts...)
}
