// Package words provides the word-like string makers: single words built
// from phoneme tables, word runs, sentences, paragraphs, and pet names
// drawn from embedded word lists.
package words

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type wordConfig struct {
	capitalize   bool
	unicode      bool
	minSyllables int64
	maxSyllables int64
}

func defaultWordConfig() wordConfig {
	return wordConfig{
		capitalize:   true,
		unicode:      true,
		minSyllables: 2,
		maxSyllables: 4,
	}
}

func (c wordConfig) validate() error {
	if c.minSyllables < 1 {
		return fmt.Errorf("%w: word needs at least one syllable, got %d", maker.ErrConfig, c.minSyllables)
	}
	if c.maxSyllables < c.minSyllables {
		return fmt.Errorf("%w: word syllable max (%d) below min (%d)",
			maker.ErrConfig, c.maxSyllables, c.minSyllables)
	}
	return nil
}

// WordOption configures a WordGenerator.
type WordOption func(*wordConfig)

// WithCapitalize controls upper-casing of the first letter. Default true.
func WithCapitalize(capitalize bool) WordOption {
	return func(c *wordConfig) { c.capitalize = capitalize }
}

// WithUnicode controls whether accented vowels may appear. Default true.
func WithUnicode(unicode bool) WordOption {
	return func(c *wordConfig) { c.unicode = unicode }
}

// WithMinSyllables sets the minimum syllable count. Default 2.
func WithMinSyllables(min int64) WordOption {
	return func(c *wordConfig) { c.minSyllables = min }
}

// WithMaxSyllables sets the maximum syllable count. Default 4.
func WithMaxSyllables(max int64) WordOption {
	return func(c *wordConfig) { c.maxSyllables = max }
}

// WordGenerator derives pronounceable nonsense words from the phoneme
// tables.
type WordGenerator struct {
	conf wordConfig
}

func NewWordGenerator(opts ...WordOption) *WordGenerator {
	g := &WordGenerator{conf: defaultWordConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	return g
}

// With returns a copy bound to additional options.
func (g *WordGenerator) With(opts ...WordOption) *WordGenerator {
	next := &WordGenerator{conf: g.conf}
	for _, opt := range opts {
		opt(&next.conf)
	}
	return next
}

// Generate derives the word determined by input.
func (g *WordGenerator) Generate(input any, opts ...WordOption) (string, error) {
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
	return wordFrom(id, conf), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *WordGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return wordFrom(id, g.conf), nil
}

func wordFrom(id identity.ID, conf wordConfig) string {
	root := identity.WithSalt(id, "word")
	count := identity.IntBetween(identity.WithSalt(root, "syllables"), conf.minSyllables, conf.maxSyllables)

	vowels := nuclei
	if conf.unicode {
		vowels = unicodeNuclei
	}

	chain := identity.NewChain(root)
	var b strings.Builder
	for i := int64(0); i < count; i++ {
		b.WriteString(pick(chain.Next(), onsets))
		b.WriteString(pick(chain.Next(), vowels))
	}
	// A single trailing coda keeps words pronounceable.
	b.WriteString(pick(chain.Next(), codas))

	w := b.String()
	if conf.capitalize {
		w = capitalizeFirst(w)
	}
	return w
}

func pick(id identity.ID, table []string) string {
	return table[identity.IntBetween(id, 0, int64(len(table)-1))]
}

func capitalizeFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return s
}

// Word derives a word with default configuration plus opts.
func Word(input any, opts ...WordOption) (string, error) {
	return NewWordGenerator().Generate(input, opts...)
}
