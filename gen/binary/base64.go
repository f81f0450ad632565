package binary

import (
	"encoding/base64"

	"github.com/mkeeler/fixture-data/identity"
)

// Base64Generator derives standard-encoding base64 strings over a
// BytesGenerator's output.
type Base64Generator struct {
	bytes *BytesGenerator
}

func NewBase64Generator(opts ...BytesOption) *Base64Generator {
	return &Base64Generator{bytes: NewBytesGenerator(opts...)}
}

// With returns a copy bound to additional options.
func (g *Base64Generator) With(opts ...BytesOption) *Base64Generator {
	return &Base64Generator{bytes: g.bytes.With(opts...)}
}

// Generate derives the base64 string determined by input.
func (g *Base64Generator) Generate(input any, opts ...BytesOption) (string, error) {
	raw, err := g.bytes.Generate(input, opts...)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *Base64Generator) Derive(id identity.ID) (any, error) {
	raw, err := g.bytes.Derive(id)
	if err != nil {
		return nil, err
	}
	return base64.StdEncoding.EncodeToString(raw.([]byte)), nil
}

// Base64 derives a base64 string with default configuration plus opts.
func Base64(input any, opts ...BytesOption) (string, error) {
	return NewBase64Generator().Generate(input, opts...)
}
