// Package netaddr provides the IP address maker: a deterministic address
// inside a CIDR prefix. The default prefix is 198.18.0.0/15, reserved for
// testing by the IANA.
package netaddr

import (
	"encoding/binary"
	"fmt"
	"net/netip"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

var (
	testingIPv4BaseAddr   = netip.MustParseAddr("198.18.0.0")
	testingIPv4PrefixBits = 15

	testingIPv4Prefix netip.Prefix

	bitMasks = map[int]uint8{
		0: 0b11111111,
		1: 0b01111111,
		2: 0b00111111,
		3: 0b00011111,
		4: 0b00001111,
		5: 0b00000111,
		6: 0b00000011,
		7: 0b00000001,
	}
)

func init() {
	var err error
	testingIPv4Prefix, err = testingIPv4BaseAddr.Prefix(testingIPv4PrefixBits)
	if err != nil {
		panic(fmt.Errorf("failed to create testing IPv4 prefix: %w", err))
	}
}

type ipConfig struct {
	prefix netip.Prefix
}

func defaultIPConfig() ipConfig {
	return ipConfig{prefix: testingIPv4Prefix}
}

func (c ipConfig) validate() error {
	if !c.prefix.IsValid() {
		return fmt.Errorf("%w: invalid IP prefix", maker.ErrConfig)
	}
	return nil
}

// IPOption configures an IPGenerator.
type IPOption func(*ipConfig)

// WithPrefix sets the CIDR prefix addresses are derived within. Default
// 198.18.0.0/15.
func WithPrefix(prefix netip.Prefix) IPOption {
	return func(c *ipConfig) { c.prefix = prefix }
}

// IPGenerator derives addresses inside its prefix by masking chain-derived
// bytes onto the prefix's network address.
type IPGenerator struct {
	conf   ipConfig
	masked netip.Prefix
	mask   []byte
}

func NewIPGenerator(opts ...IPOption) *IPGenerator {
	g := &IPGenerator{conf: defaultIPConfig()}
	for _, opt := range opts {
		opt(&g.conf)
	}
	g.precompute()
	return g
}

// NewTestingIPv4Generator derives addresses in 198.18.0.0 - 198.19.255.255,
// the range the IANA reserves for benchmarking.
func NewTestingIPv4Generator() *IPGenerator {
	return NewIPGenerator()
}

// With returns a copy bound to additional options.
func (g *IPGenerator) With(opts ...IPOption) *IPGenerator {
	next := &IPGenerator{conf: g.conf}
	for _, opt := range opts {
		opt(&next.conf)
	}
	next.precompute()
	return next
}

// precompute derives the byte mask covering the host bits of the prefix.
func (g *IPGenerator) precompute() {
	if !g.conf.prefix.IsValid() {
		return
	}
	byteLen := 4
	if g.conf.prefix.Addr().Is6() {
		byteLen = 16
	}

	g.masked = g.conf.prefix.Masked()
	g.mask = make([]byte, byteLen)

	bitsLeft := g.conf.prefix.Bits()
	for i := 0; i < len(g.mask); i++ {
		if bitsLeft >= 8 {
			g.mask[i] = 0
			bitsLeft -= 8
		} else {
			g.mask[i] = bitMasks[bitsLeft]
			bitsLeft = 0
		}
	}
}

// Generate derives the address determined by input.
func (g *IPGenerator) Generate(input any) (netip.Addr, error) {
	if err := g.conf.validate(); err != nil {
		return netip.Addr{}, err
	}
	id, err := identity.FromValue(input)
	if err != nil {
		return netip.Addr{}, err
	}
	return g.addrFrom(id), nil
}

// Derive implements maker.Maker; the address renders as its string form so
// it composes as a literal-like value.
func (g *IPGenerator) Derive(id identity.ID) (any, error) {
	if err := g.conf.validate(); err != nil {
		return nil, err
	}
	return g.addrFrom(id).String(), nil
}

func (g *IPGenerator) addrFrom(id identity.ID) netip.Addr {
	chain := identity.NewChain(identity.WithSalt(id, "ip"))

	raw := make([]byte, 0, len(g.mask)+8)
	for len(raw) < len(g.mask) {
		raw = binary.BigEndian.AppendUint64(raw, uint64(chain.Next()))
	}

	if g.conf.prefix.Addr().Is6() {
		addrBytes := g.masked.Addr().As16()
		for i := 0; i < 16; i++ {
			addrBytes[i] |= raw[i] & g.mask[i]
		}
		return netip.AddrFrom16(addrBytes)
	}

	addrBytes := g.masked.Addr().As4()
	for i := 0; i < 4; i++ {
		addrBytes[i] |= raw[i] & g.mask[i]
	}
	return netip.AddrFrom4(addrBytes)
}

// IP derives an address with default configuration plus opts.
func IP(input any, opts ...IPOption) (netip.Addr, error) {
	return NewIPGenerator(opts...).Generate(input)
}
