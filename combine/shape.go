package combine

import (
	"fmt"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

// Field is one (key, element) pair of a Shape. Shape takes an ordered slice
// rather than a map: the traversal order is part of the generator's
// definition and must not depend on container iteration order.
type Field struct {
	Key   string
	Value maker.Value
}

type shapeMaker struct {
	fields []Field
}

// ShapeMaker resolves each field against a chain identity salted by the
// field's key and returns a map with the same keys.
func ShapeMaker(fields []Field) maker.Maker {
	return &shapeMaker{fields: fields}
}

// Shape is the fully applied form of ShapeMaker.
func Shape(input any, fields []Field) (map[string]any, error) {
	v, err := maker.Generate(ShapeMaker(fields), input)
	if err != nil {
		return nil, err
	}
	return v.(map[string]any), nil
}

func (s *shapeMaker) Derive(id identity.ID) (any, error) {
	seen := make(map[string]struct{}, len(s.fields))
	for _, f := range s.fields {
		if _, dup := seen[f.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate shape key %q", maker.ErrConfig, f.Key)
		}
		seen[f.Key] = struct{}{}
	}

	root := identity.WithSalt(id, saltShape)
	chain := identity.NewChain(root)

	out := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		childID := identity.WithSalt(chain.Next(), f.Key)
		resolved, err := f.Value.Resolve(childID)
		if err != nil {
			return nil, err
		}
		out[f.Key] = resolved
	}
	return out, nil
}
