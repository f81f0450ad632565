package combine

import (
	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type tupleMaker struct {
	values []maker.Value
}

// TupleMaker resolves each element against successive chain identities and
// returns the slice of results.
func TupleMaker(values []maker.Value) maker.Maker {
	return &tupleMaker{values: values}
}

// Tuple is the fully applied form of TupleMaker.
func Tuple(input any, values []maker.Value) ([]any, error) {
	v, err := maker.Generate(TupleMaker(values), input)
	if err != nil {
		return nil, err
	}
	return v.([]any), nil
}

func (t *tupleMaker) Derive(id identity.ID) (any, error) {
	root := identity.WithSalt(id, saltTuple)
	chain := identity.NewChain(root)

	out := make([]any, len(t.values))
	for i, v := range t.values {
		resolved, err := v.Resolve(chain.Next())
		if err != nil {
			return nil, err
		}
		out[i] = resolved
	}
	return out, nil
}
