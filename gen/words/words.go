package words

import (
	"fmt"
	"strings"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type wordsConfig struct {
	min  int64
	max  int64
	word wordConfig
}

func defaultWordsConfig() wordsConfig {
	wc := defaultWordConfig()
	wc.capitalize = false
	return wordsConfig{min: 2, max: 3, word: wc}
}

func (c wordsConfig) validate() error {
	if c.min < 1 {
		return fmt.Errorf("%w: words needs at least one word, got %d", maker.ErrConfig, c.min)
	}
	if c.max < c.min {
		return fmt.Errorf("%w: words max (%d) below min (%d)", maker.ErrConfig, c.max, c.min)
	}
	return c.word.validate()
}

// WordsOption configures a WordsGenerator.
type WordsOption func(*wordsConfig)

// WithMinWords sets the minimum word count. Default 2.
func WithMinWords(min int64) WordsOption {
	return func(c *wordsConfig) { c.min = min }
}

// WithMaxWords sets the maximum word count. Default 3.
func WithMaxWords(max int64) WordsOption {
	return func(c *wordsConfig) { c.max = max }
}

// WithWordOptions forwards options to the underlying word maker.
func WithWordOptions(opts ...WordOption) WordsOption {
	return func(c *wordsConfig) {
		for _, opt := range opts {
			opt(&c.word)
		}
	}
}

// WordsGenerator derives space-separated runs of words.
type WordsGenerator struct {
	conf wordsConfig
}

func NewWordsGenerator(opts ...WordsOption) *WordsGenerator {
	g := &WordsGenerator{conf: defaultWordsConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	return g
}

// With returns a copy bound to additional options.
func (g *WordsGenerator) With(opts ...WordsOption) *WordsGenerator {
	next := &WordsGenerator{conf: g.conf}
	for _, opt := range opts {
		opt(&next.conf)
	}
	return next
}

// Generate derives the word run determined by input.
func (g *WordsGenerator) Generate(input any, opts ...WordsOption) (string, error) {
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
	return wordsFrom(id, conf), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *WordsGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return wordsFrom(id, g.conf), nil
}

func wordsFrom(id identity.ID, conf wordsConfig) string {
	root := identity.WithSalt(id, "words")
	count := identity.IntBetween(identity.WithSalt(root, "count"), conf.min, conf.max)

	chain := identity.NewChain(root)
	parts := make([]string, count)
	for i := range parts {
		parts[i] = wordFrom(chain.Next(), conf.word)
	}
	return strings.Join(parts, " ")
}

// Words derives a word run with default configuration plus opts.
func Words(input any, opts ...WordsOption) (string, error) {
	return NewWordsGenerator().Generate(input, opts...)
}
