package words

import (
	"fmt"
	"strings"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type paragraphConfig struct {
	minSentences int64
	maxSentences int64
	sentence     sentenceConfig
}

func defaultParagraphConfig() paragraphConfig {
	return paragraphConfig{minSentences: 2, maxSentences: 5, sentence: defaultSentenceConfig()}
}

func (c paragraphConfig) validate() error {
	if c.minSentences < 1 {
		return fmt.Errorf("%w: paragraph needs at least one sentence, got %d",
			maker.ErrConfig, c.minSentences)
	}
	if c.maxSentences < c.minSentences {
		return fmt.Errorf("%w: paragraph sentence max (%d) below min (%d)",
			maker.ErrConfig, c.maxSentences, c.minSentences)
	}
	return c.sentence.validate()
}

// ParagraphOption configures a ParagraphGenerator.
type ParagraphOption func(*paragraphConfig)

// WithMinSentences sets the minimum sentence count. Default 2.
func WithMinSentences(min int64) ParagraphOption {
	return func(c *paragraphConfig) { c.minSentences = min }
}

// WithMaxSentences sets the maximum sentence count. Default 5.
func WithMaxSentences(max int64) ParagraphOption {
	return func(c *paragraphConfig) { c.maxSentences = max }
}

// ParagraphGenerator derives paragraphs of sentences.
type ParagraphGenerator struct {
	conf paragraphConfig
}

func NewParagraphGenerator(opts ...ParagraphOption) *ParagraphGenerator {
	g := &ParagraphGenerator{conf: defaultParagraphConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	return g
}

// With returns a copy bound to additional options.
func (g *ParagraphGenerator) With(opts ...ParagraphOption) *ParagraphGenerator {
	next := &ParagraphGenerator{conf: g.conf}
	for _, opt := range opts {
		opt(&next.conf)
	}
	return next
}

// Generate derives the paragraph determined by input.
func (g *ParagraphGenerator) Generate(input any, opts ...ParagraphOption) (string, error) {
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
	return paragraphFrom(id, conf), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *ParagraphGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return paragraphFrom(id, g.conf), nil
}

func paragraphFrom(id identity.ID, conf paragraphConfig) string {
	root := identity.WithSalt(id, "paragraph")
	count := identity.IntBetween(identity.WithSalt(root, "count"), conf.minSentences, conf.maxSentences)

	chain := identity.NewChain(root)
	parts := make([]string, count)
	for i := range parts {
		parts[i] = sentenceFrom(chain.Next(), conf.sentence)
	}
	return strings.Join(parts, " ")
}

// Paragraph derives a paragraph with default configuration plus opts.
func Paragraph(input any, opts ...ParagraphOption) (string, error) {
	return NewParagraphGenerator().Generate(input, opts...)
}
