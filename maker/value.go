package maker

import "github.com/mkeeler/fixture-data/identity"

// Value is the tagged union a combinator accepts for each of its elements:
// either a Maker to invoke with a derived identity, or a literal returned
// verbatim. The distinction is fixed at construction, never inferred at
// resolution time.
type Value struct {
	m       Maker
	literal any
	isMaker bool
}

// Gen wraps a Maker as a combinator element.
func Gen(m Maker) Value {
	return Value{m: m, isMaker: true}
}

// Lit wraps a literal as a combinator element.
func Lit(v any) Value {
	return Value{literal: v}
}

// IsMaker reports whether the element resolves through a Maker.
func (v Value) IsMaker() bool { return v.isMaker }

// Maker returns the wrapped Maker. Only meaningful when IsMaker is true.
func (v Value) Maker() Maker { return v.m }

// Literal returns the wrapped literal. Only meaningful when IsMaker is
// false.
func (v Value) Literal() any { return v.literal }

// Resolve produces the element's value for the given identity: Makers are
// invoked, literals returned as-is.
func (v Value) Resolve(id identity.ID) (any, error) {
	if v.isMaker {
		return v.m.Derive(id)
	}
	return v.literal, nil
}

// Lits wraps a slice of literals, preserving order.
func Lits(vs ...any) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Lit(v)
	}
	return out
}
