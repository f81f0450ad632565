package binary

import (
	"fmt"

	"github.com/mkeeler/fixture-data/identity"
)

// UUIDGenerator derives uuid-formatted strings: 16 chain-derived bytes in
// the canonical 8-4-4-4-12 grouping. The output is format-shaped only; no
// version or variant bits are claimed.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate derives the uuid string determined by input.
func (g *UUIDGenerator) Generate(input any) (string, error) {
	id, err := identity.FromValue(input)
	if err != nil {
		return "", err
	}
	return uuidFrom(id), nil
}

// Derive implements maker.Maker.
func (g *UUIDGenerator) Derive(id identity.ID) (any, error) {
	return uuidFrom(id), nil
}

func uuidFrom(id identity.ID) string {
	buf := chainBytes(identity.WithSalt(id, "uuid"), 16)
	return fmt.Sprintf("%x-%x-%x-%x-%x",
		buf[0:4],
		buf[4:6],
		buf[6:8],
		buf[8:10],
		buf[10:16])
}

// UUID derives a uuid-formatted string.
func UUID(input any) (string, error) {
	return NewUUIDGenerator().Generate(input)
}
