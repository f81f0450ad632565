// Package binary provides the raw-byte makers: byte blobs, base64 strings,
// and uuid-formatted strings, each derived from the identity chain rather
// than a random stream.
package binary

import (
	"encoding/binary"
	"fmt"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type bytesConfig struct {
	minSize int64
	maxSize int64
}

func defaultBytesConfig() bytesConfig {
	return bytesConfig{minSize: 16, maxSize: 64}
}

func (c bytesConfig) validate() error {
	if c.minSize < 0 {
		return fmt.Errorf("%w: bytes min size %d negative", maker.ErrConfig, c.minSize)
	}
	if c.maxSize < c.minSize {
		return fmt.Errorf("%w: bytes max size (%d) below min (%d)", maker.ErrConfig, c.maxSize, c.minSize)
	}
	return nil
}

// BytesOption configures a BytesGenerator.
type BytesOption func(*bytesConfig)

// WithMinSize sets the minimum blob size in bytes. Default 16.
func WithMinSize(min int64) BytesOption {
	return func(c *bytesConfig) { c.minSize = min }
}

// WithMaxSize sets the maximum blob size in bytes. Default 64.
func WithMaxSize(max int64) BytesOption {
	return func(c *bytesConfig) { c.maxSize = max }
}

// BytesGenerator derives byte blobs by advancing the derivation chain one
// step per 8 bytes of output.
type BytesGenerator struct {
	conf bytesConfig
}

func NewBytesGenerator(opts ...BytesOption) *BytesGenerator {
	g := &BytesGenerator{conf: defaultBytesConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	return g
}

// With returns a copy bound to additional options.
func (g *BytesGenerator) With(opts ...BytesOption) *BytesGenerator {
	next := &BytesGenerator{conf: g.conf}
	for _, opt := range opts {
		opt(&next.conf)
	}
	return next
}

// Generate derives the blob determined by input.
func (g *BytesGenerator) Generate(input any, opts ...BytesOption) ([]byte, error) {
	conf := g.conf
	for _, opt := range opts {
		opt(&conf)
	}
	if err := conf.validate(); err != nil {
		return nil, err
	}
	id, err := identity.FromValue(input)
	if err != nil {
		return nil, err
	}
	return bytesFrom(id, conf), nil
}

// Derive implements maker.Maker with the generator's bound options.
func (g *BytesGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return bytesFrom(id, g.conf), nil
}

func bytesFrom(id identity.ID, conf bytesConfig) []byte {
	root := identity.WithSalt(id, "bytes")
	size := identity.IntBetween(identity.WithSalt(root, "size"), conf.minSize, conf.maxSize)
	return chainBytes(root, size)
}

// chainBytes fills size bytes from successive chain identities, big endian.
func chainBytes(root identity.ID, size int64) []byte {
	chain := identity.NewChain(root)
	out := make([]byte, 0, size+8)
	for int64(len(out)) < size {
		out = binary.BigEndian.AppendUint64(out, uint64(chain.Next()))
	}
	return out[:size]
}

// Bytes derives a byte blob with default configuration plus opts.
func Bytes(input any, opts ...BytesOption) ([]byte, error) {
	return NewBytesGenerator().Generate(input, opts...)
}
