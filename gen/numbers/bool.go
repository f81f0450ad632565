package numbers

import (
	"github.com/mkeeler/fixture-data/identity"
)

// BoolGenerator derives booleans with even odds. It takes no options.
type BoolGenerator struct{}

func NewBoolGenerator() *BoolGenerator {
	return &BoolGenerator{}
}

// Generate derives the boolean determined by input.
func (g *BoolGenerator) Generate(input any) (bool, error) {
	id, err := identity.FromValue(input)
	if err != nil {
		return false, err
	}
	return boolFrom(id), nil
}

// Derive implements maker.Maker.
func (g *BoolGenerator) Derive(id identity.ID) (any, error) {
	return boolFrom(id), nil
}

func boolFrom(id identity.ID) bool {
	return identity.IntBetween(identity.WithSalt(id, "bool"), 0, 1) == 1
}

// Bool derives a boolean.
func Bool(input any) (bool, error) {
	return NewBoolGenerator().Generate(input)
}
