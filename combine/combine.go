// Package combine provides the generic composition operators: sequencing,
// selection, repetition, and weighted choice over Makers and literals.
//
// Every combinator namespaces its derivation with a combinator-specific
// salt, then walks a fresh derivation chain so each child element receives
// its own identity. Child identity assignment follows the declared order of
// the elements; that order is part of what makes a composition
// reproducible.
//
// Each combinator comes in two forms: the fully applied form
// (OneOf(input, values)) and a constructor form (OneOfMaker(values)) that
// returns a Maker awaiting its identifying input. The two are equivalent:
// OneOf(input, values) == maker.Generate(OneOfMaker(values), input).
package combine

import (
	"fmt"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

// Combinator salt labels. Two different combinators applied to the same
// input must never reuse an identity.
const (
	saltJoin     = "join"
	saltOneOf    = "one-of"
	saltSomeOf   = "some-of"
	saltTimes    = "times"
	saltTuple    = "tuple"
	saltShape    = "shape"
	saltWeighted = "one-of-weighted"
)

// CountRange is an inclusive repetition count range. A fixed count is the
// degenerate range min == max and consumes no derivation when resolved.
type CountRange struct {
	Min int64
	Max int64
}

// Exactly is the fixed-count range.
func Exactly(n int64) CountRange { return CountRange{Min: n, Max: n} }

// Between is an inclusive count range; the effective count is fitted from
// the invocation's root identity.
func Between(min, max int64) CountRange { return CountRange{Min: min, Max: max} }

func (r CountRange) validate() error {
	if r.Min < 0 {
		return fmt.Errorf("%w: negative count %d", maker.ErrConfig, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%w: count range max (%d) below min (%d)", maker.ErrConfig, r.Max, r.Min)
	}
	return nil
}

// resolve picks the effective count. Fixed ranges return it directly so a
// fixed count never advances any derivation.
func (r CountRange) resolve(id identity.ID) int64 {
	if r.Min == r.Max {
		return r.Min
	}
	return identity.IntBetween(id, r.Min, r.Max)
}
