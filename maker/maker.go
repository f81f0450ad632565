// Package maker defines the calling convention shared by every generator:
// a Maker derives a value from an identity, and a Value is either a Maker
// or a literal that passes through combinators untouched.
package maker

import (
	"errors"

	"github.com/mkeeler/fixture-data/identity"
)

// ErrConfig is the base error for any option outside its valid domain
// (min above max, negative counts, probabilities summing above one, ...).
// Configuration is validated before any derivation happens.
var ErrConfig = errors.New("invalid generator configuration")

// Maker derives a deterministic value from an already-derived identity.
// Implementations are pure: no state survives a call, and concurrent use
// needs no locking.
type Maker interface {
	Derive(id identity.ID) (any, error)
}

// Func adapts a plain function to the Maker interface.
type Func func(id identity.ID) (any, error)

func (f Func) Derive(id identity.ID) (any, error) { return f(id) }

// Generate resolves an identifying input into an identity and applies m to
// it. The input may be any canonically encodable value, or an identity
// produced by a previous derivation.
func Generate(m Maker, input any) (any, error) {
	id, err := identity.FromValue(input)
	if err != nil {
		return nil, err
	}
	return m.Derive(id)
}
