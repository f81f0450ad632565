package words

import (
	"fmt"
	"strings"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type sentenceConfig struct {
	minWords int64
	maxWords int64
	word     wordConfig
}

func defaultSentenceConfig() sentenceConfig {
	wc := defaultWordConfig()
	wc.capitalize = false
	return sentenceConfig{minWords: 4, maxWords: 12, word: wc}
}

func (c sentenceConfig) validate() error {
	if c.minWords < 1 {
		return fmt.Errorf("%w: sentence needs at least one word, got %d", maker.ErrConfig, c.minWords)
	}
	if c.maxWords < c.minWords {
		return fmt.Errorf("%w: sentence word max (%d) below min (%d)",
			maker.ErrConfig, c.maxWords, c.minWords)
	}
	return c.word.validate()
}

// SentenceOption configures a SentenceGenerator.
type SentenceOption func(*sentenceConfig)

// WithSentenceMinWords sets the minimum word count. Default 4.
func WithSentenceMinWords(min int64) SentenceOption {
	return func(c *sentenceConfig) { c.minWords = min }
}

// WithSentenceMaxWords sets the maximum word count. Default 12.
func WithSentenceMaxWords(max int64) SentenceOption {
	return func(c *sentenceConfig) { c.maxWords = max }
}

// SentenceGenerator derives capitalized, period-terminated sentences.
type SentenceGenerator struct {
	conf sentenceConfig
}

func NewSentenceGenerator(opts ...SentenceOption) *SentenceGenerator {
	g := &SentenceGenerator{conf: defaultSentenceConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	return g
}

// With returns a copy bound to additional options.
func (g *SentenceGenerator) With(opts ...SentenceOption) *SentenceGenerator {
	next := &SentenceGenerator{conf: g.conf}
	for _, opt := range opts {
		opt(&next.conf)
	}
	return next
}

// Generate derives the sentence determined by input.
func (g *SentenceGenerator) Generate(input any, opts ...SentenceOption) (string, error) {
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
	return sentenceFrom(id, conf), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *SentenceGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return sentenceFrom(id, g.conf), nil
}

func sentenceFrom(id identity.ID, conf sentenceConfig) string {
	root := identity.WithSalt(id, "sentence")
	count := identity.IntBetween(identity.WithSalt(root, "count"), conf.minWords, conf.maxWords)

	chain := identity.NewChain(root)
	parts := make([]string, count)
	for i := range parts {
		parts[i] = wordFrom(chain.Next(), conf.word)
	}
	return capitalizeFirst(strings.Join(parts, " ")) + "."
}

// Sentence derives a sentence with default configuration plus opts.
func Sentence(input any, opts ...SentenceOption) (string, error) {
	return NewSentenceGenerator().Generate(input, opts...)
}
