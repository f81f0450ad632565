package words

import (
	"fmt"
	"strings"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type petNameConfig struct {
	words     int64
	separator string
}

func defaultPetNameConfig() petNameConfig {
	return petNameConfig{words: 2, separator: "-"}
}

func (c petNameConfig) validate() error {
	if c.words < 1 {
		return fmt.Errorf("%w: pet name needs at least one word, got %d", maker.ErrConfig, c.words)
	}
	return nil
}

// PetNameOption configures a PetNameGenerator.
type PetNameOption func(*petNameConfig)

// WithPetNameWords sets how many words the name carries. Default 2.
func WithPetNameWords(words int64) PetNameOption {
	return func(c *petNameConfig) { c.words = words }
}

// WithSeparator sets the word separator. Default "-".
func WithSeparator(sep string) PetNameOption {
	return func(c *petNameConfig) { c.separator = sep }
}

// PetNameGenerator derives readable names from the embedded word lists:
// zero or more adverbs, an adjective, and an animal name.
type PetNameGenerator struct {
	conf petNameConfig
}

func NewPetNameGenerator(opts ...PetNameOption) *PetNameGenerator {
	g := &PetNameGenerator{conf: defaultPetNameConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	return g
}

// With returns a copy bound to additional options.
func (g *PetNameGenerator) With(opts ...PetNameOption) *PetNameGenerator {
	next := &PetNameGenerator{conf: g.conf}
	for _, opt := range opts {
		opt(&next.conf)
	}
	return next
}

// Generate derives the pet name determined by input.
func (g *PetNameGenerator) Generate(input any, opts ...PetNameOption) (string, error) {
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
	return petNameFrom(id, conf), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *PetNameGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return petNameFrom(id, g.conf), nil
}

func petNameFrom(id identity.ID, conf petNameConfig) string {
	chain := identity.NewChain(identity.WithSalt(id, "pet-name"))

	switch conf.words {
	case 1:
		return pick(chain.Next(), names)
	case 2:
		return pick(chain.Next(), adjectives) + conf.separator + pick(chain.Next(), names)
	default:
		parts := make([]string, conf.words)
		for i := int64(0); i < conf.words-2; i++ {
			parts[i] = pick(chain.Next(), adverbs)
		}
		parts[conf.words-2] = pick(chain.Next(), adjectives)
		parts[conf.words-1] = pick(chain.Next(), names)
		return strings.Join(parts, conf.separator)
	}
}

// PetName derives a pet name with default configuration plus opts.
func PetName(input any, opts ...PetNameOption) (string, error) {
	return NewPetNameGenerator().Generate(input, opts...)
}
