package chars

import (
	"fmt"
	"unicode/utf8"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type charConfig struct {
	ranges []Range
}

func defaultCharConfig() charConfig {
	return charConfig{ranges: Alphanumeric}
}

func (c charConfig) validate() error {
	if len(c.ranges) == 0 {
		return fmt.Errorf("%w: char requires at least one codepoint range", maker.ErrConfig)
	}
	for _, r := range c.ranges {
		if r.Hi < r.Lo {
			return fmt.Errorf("%w: codepoint range %#x-%#x inverted", maker.ErrConfig, r.Lo, r.Hi)
		}
		if r.Lo < 0 || r.Hi > utf8.MaxRune {
			return fmt.Errorf("%w: codepoint range %#x-%#x outside rune space", maker.ErrConfig, r.Lo, r.Hi)
		}
	}
	return nil
}

// CharOption configures a CharGenerator.
type CharOption func(*charConfig)

// WithRanges replaces the codepoint ranges to draw from. Accepts explicit
// pairs and predefined sets alike: WithRanges(chars.Union(chars.Lower,
// []chars.Range{{0x30, 0x39}})).
func WithRanges(ranges []Range) CharOption {
	return func(c *charConfig) { c.ranges = ranges }
}

// CharGenerator derives a single character from its range union. Selection
// is weighted by sub-range size, so every codepoint in the union is
// near-equally likely.
type CharGenerator struct {
	conf charConfig
}

func NewCharGenerator(opts ...CharOption) *CharGenerator {
	g := &CharGenerator{conf: defaultCharConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	return g
}

// NewRangeGenerator is the range-construction entry point: a generator over
// an explicit union of codepoint ranges.
func NewRangeGenerator(sets ...[]Range) *CharGenerator {
	return NewCharGenerator(WithRanges(Union(sets...)))
}

// With returns a copy bound to additional options.
func (g *CharGenerator) With(opts ...CharOption) *CharGenerator {
	next := &CharGenerator{conf: charConfig{ranges: g.conf.ranges}}
	for _, opt := range opts {
		opt(&next.conf)
	}
	return next
}

// Generate derives the character determined by input.
func (g *CharGenerator) Generate(input any, opts ...CharOption) (string, error) {
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
	return string(runeFrom(identity.WithSalt(id, "char"), conf.ranges)), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *CharGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return string(runeFrom(identity.WithSalt(id, "char"), g.conf.ranges)), nil
}

// runeFrom fits id into the union's total codepoint count and walks the
// ranges to the selected offset.
func runeFrom(id identity.ID, ranges []Range) rune {
	var total int64
	for _, r := range ranges {
		total += r.size()
	}

	offset := identity.IntBetween(id, 0, total-1)
	for _, r := range ranges {
		if offset < r.size() {
			return r.Lo + rune(offset)
		}
		offset -= r.size()
	}
	// Unreachable: offset < total by construction.
	return ranges[len(ranges)-1].Hi
}

// Char derives a character with default configuration plus opts.
func Char(input any, opts ...CharOption) (string, error) {
	return NewCharGenerator().Generate(input, opts...)
}
