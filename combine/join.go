package combine

import (
	"fmt"
	"strings"

	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

// Joiner is the tagged union for Join's joining step: either a separator
// string to concatenate with, or a function applied to the resolved slice.
type Joiner struct {
	fn  func([]any) (any, error)
	sep string
}

// Separator joins resolved values with sep after flattening nested slices.
func Separator(sep string) Joiner { return Joiner{sep: sep} }

// JoinFunc hands the resolved slice to fn and returns its result.
func JoinFunc(fn func([]any) (any, error)) Joiner { return Joiner{fn: fn} }

type joinMaker struct {
	joiner Joiner
	values []maker.Value
}

// JoinMaker resolves each element against successive chain identities, then
// applies the joiner.
func JoinMaker(joiner Joiner, values []maker.Value) maker.Maker {
	return &joinMaker{joiner: joiner, values: values}
}

// Join is the fully applied form of JoinMaker.
func Join(input any, joiner Joiner, values []maker.Value) (any, error) {
	return maker.Generate(JoinMaker(joiner, values), input)
}

func (j *joinMaker) Derive(id identity.ID) (any, error) {
	root := identity.WithSalt(id, saltJoin)
	chain := identity.NewChain(root)

	resolved := make([]any, len(j.values))
	for i, v := range j.values {
		r, err := v.Resolve(chain.Next())
		if err != nil {
			return nil, err
		}
		resolved[i] = r
	}

	if j.joiner.fn != nil {
		return j.joiner.fn(resolved)
	}

	parts := make([]string, 0, len(resolved))
	for _, r := range flatten(resolved) {
		parts = append(parts, stringify(r))
	}
	return strings.Join(parts, j.joiner.sep), nil
}

// flatten expands nested slices to arbitrary depth, preserving order.
func flatten(vs []any) []any {
	out := make([]any, 0, len(vs))
	for _, v := range vs {
		if nested, ok := v.([]any); ok {
			out = append(out, flatten(nested)...)
			continue
		}
		out = append(out, v)
	}
	return out
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
