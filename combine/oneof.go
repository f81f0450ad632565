package combine

import (
	"fmt"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type oneOfMaker struct {
	values []maker.Value
}

// OneOfMaker selects one element by fitting the invocation's root identity
// into the index range, then resolves it.
func OneOfMaker(values []maker.Value) maker.Maker {
	return &oneOfMaker{values: values}
}

// OneOf is the fully applied form of OneOfMaker.
func OneOf(input any, values []maker.Value) (any, error) {
	return maker.Generate(OneOfMaker(values), input)
}

func (o *oneOfMaker) Derive(id identity.ID) (any, error) {
	if len(o.values) == 0 {
		return nil, fmt.Errorf("%w: one-of requires at least one value", maker.ErrConfig)
	}
	root := identity.WithSalt(id, saltOneOf)
	idx := identity.IntBetween(root, 0, int64(len(o.values)-1))
	return o.values[idx].Resolve(identity.Next(root))
}
