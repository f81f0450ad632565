package combine

import (
	"fmt"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type someOfMaker struct {
	count  CountRange
	values []maker.Value
}

// SomeOfMaker selects count distinct elements without replacement, driving
// a partial permutation from the derivation chain, and resolves each
// selected element in selection order.
func SomeOfMaker(count CountRange, values []maker.Value) maker.Maker {
	return &someOfMaker{count: count, values: values}
}

// SomeOf is the fully applied form of SomeOfMaker.
func SomeOf(input any, count CountRange, values []maker.Value) ([]any, error) {
	v, err := maker.Generate(SomeOfMaker(count, values), input)
	if err != nil {
		return nil, err
	}
	return v.([]any), nil
}

func (s *someOfMaker) Derive(id identity.ID) (any, error) {
	if err := s.count.validate(); err != nil {
		return nil, err
	}
	if s.count.Max > int64(len(s.values)) {
		return nil, fmt.Errorf("%w: some-of count up to %d exceeds %d values",
			maker.ErrConfig, s.count.Max, len(s.values))
	}

	root := identity.WithSalt(id, saltSomeOf)
	k := s.count.resolve(root)
	chain := identity.NewChain(root)

	// Partial Fisher-Yates over the index set: at each step fit a fresh
	// identity into the remaining count and remove the chosen index.
	remaining := make([]int, len(s.values))
	for i := range remaining {
		remaining[i] = i
	}

	out := make([]any, 0, k)
	for step := int64(0); step < k; step++ {
		j := identity.IntBetween(chain.Next(), 0, int64(len(remaining)-1))
		idx := remaining[j]
		remaining = append(remaining[:j], remaining[j+1:]...)

		resolved, err := s.values[idx].Resolve(chain.Next())
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}
