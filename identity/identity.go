// Package identity implements the deterministic derivation scheme shared by
// every generator: hashing a canonical encoding into a fixed-width identity,
// salting an identity to namespace it, and advancing a forward-only
// derivation chain that hands each composed element its own identity.
//
// There is no seeding and no process-global state; the same bytes always
// hash to the same identity in any process.
package identity

import (
	"encoding/binary"

	"github.com/mkeeler/fixture-data/canonical"
)

// ID is a 64 bit derivation identity. Its ordinal interpretation is the
// full uint64 range.
type ID uint64

// FNV-1a 64 bit parameters.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// HashBytes hashes raw bytes into an identity: FNV-1a over the bytes, then
// an avalanche finalizer so that a one-bit input change flips roughly half
// the output bits even for short inputs.
func HashBytes(b []byte) ID {
	var h uint64 = fnvOffset64
	for i := 0; i < len(b); i++ {
		h ^= uint64(b[i])
		h *= fnvPrime64
	}
	return ID(mix64(h))
}

// WithSalt derives a new identity from id namespaced by a salt label. Two
// different labels applied to the same identity yield unrelated identities.
func WithSalt(id ID, salt string) ID {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(id))

	var h uint64 = fnvOffset64
	for i := 0; i < len(buf); i++ {
		h ^= uint64(buf[i])
		h *= fnvPrime64
	}
	for i := 0; i < len(salt); i++ {
		h ^= uint64(salt[i])
		h *= fnvPrime64
	}
	return ID(mix64(h))
}

// Next is one step of the derivation chain: the re-hash of id.
func Next(id ID) ID {
	// Offset before mixing so Next(0) != mix64(0) == 0.
	return ID(mix64(uint64(id) + 0x9e3779b97f4a7c15))
}

// mix64 is a splitmix-style finalizer: full-period, strongly avalanching.
func mix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// FromValue canonicalizes an identifying input and hashes it. An ID passes
// through untouched, which is how combinators feed derived identities to
// child makers.
func FromValue(v any) (ID, error) {
	if id, ok := v.(ID); ok {
		return id, nil
	}
	b, err := canonical.Marshal(v)
	if err != nil {
		return 0, err
	}
	return HashBytes(b), nil
}

// Chain is a forward-only derivation chain from a root identity. Each call
// to Next produces the re-hash of the previous element. A Chain is cheap to
// create and must not be shared between goroutines; callers create one per
// combinator invocation.
type Chain struct {
	cur ID
}

// NewChain starts a chain at root. The first Next returns the re-hash of
// root, not root itself.
func NewChain(root ID) *Chain {
	return &Chain{cur: root}
}

// Next advances the chain and returns the new identity.
func (c *Chain) Next() ID {
	c.cur = Next(c.cur)
	return c.cur
}
