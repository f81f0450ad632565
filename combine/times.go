package combine

import (
	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

type timesMaker struct {
	count CountRange
	value maker.Value
}

// TimesMaker repeats one element. A Maker element is invoked once per step
// with a freshly derived identity; a literal is repeated verbatim without
// advancing the chain at all.
func TimesMaker(count CountRange, value maker.Value) maker.Maker {
	return &timesMaker{count: count, value: value}
}

// Times is the fully applied form of TimesMaker.
func Times(input any, count CountRange, value maker.Value) ([]any, error) {
	v, err := maker.Generate(TimesMaker(count, value), input)
	if err != nil {
		return nil, err
	}
	return v.([]any), nil
}

func (t *timesMaker) Derive(id identity.ID) (any, error) {
	if err := t.count.validate(); err != nil {
		return nil, err
	}

	root := identity.WithSalt(id, saltTimes)
	k := t.count.resolve(root)

	out := make([]any, 0, k)
	if !t.value.IsMaker() {
		for i := int64(0); i < k; i++ {
			out = append(out, t.value.Literal())
		}
		return out, nil
	}

	chain := identity.NewChain(root)
	for i := int64(0); i < k; i++ {
		resolved, err := t.value.Resolve(chain.Next())
		if err != nil {
			return nil, err
		}
		out = append(out, resolved)
	}
	return out, nil
}
