package combine

import (
	"fmt"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/mkeeler/fixture-data/identity"
	"github.com/mkeeler/fixture-data/maker"
)

// Weighted is one entry of a weighted choice: an element plus an optional
// selection probability. Entries without an assigned probability split
// whatever probability mass the assigned entries leave over, equally.
type Weighted struct {
	Value    maker.Value
	prob     float64
	assigned bool
}

// Weight assigns an explicit selection probability to an element.
func Weight(p float64, v maker.Value) Weighted {
	return Weighted{Value: v, prob: p, assigned: true}
}

// Unweighted marks an element to share the unassigned remainder.
func Unweighted(v maker.Value) Weighted {
	return Weighted{Value: v}
}

type weightedMaker struct {
	entries []Weighted
}

// OneOfWeightedMaker selects one entry according to its probability by
// fitting the invocation's root identity into [0, 1), then resolves it.
func OneOfWeightedMaker(entries []Weighted) maker.Maker {
	return &weightedMaker{entries: entries}
}

// OneOfWeighted is the fully applied form of OneOfWeightedMaker.
func OneOfWeighted(input any, entries []Weighted) (any, error) {
	return maker.Generate(OneOfWeightedMaker(entries), input)
}

func (w *weightedMaker) Derive(id identity.ID) (any, error) {
	probs, err := normalizeWeights(w.entries)
	if err != nil {
		return nil, err
	}

	root := identity.WithSalt(id, saltWeighted)
	x := identity.Float01(root)

	// First entry whose cumulative upper bound exceeds x, in list order.
	cum := 0.0
	selected := len(w.entries) - 1
	for i, p := range probs {
		cum += p
		if x < cum {
			selected = i
			break
		}
	}
	return w.entries[selected].Value.Resolve(identity.Next(root))
}

// normalizeWeights validates every assigned probability and distributes the
// remainder across unassigned entries. Validation failures aggregate so a
// bad entry list reports every problem at once.
func normalizeWeights(entries []Weighted) ([]float64, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: weighted choice requires at least one entry", maker.ErrConfig)
	}

	var errs *multierror.Error
	sum := 0.0
	unassigned := 0
	for i, e := range entries {
		if !e.assigned {
			unassigned++
			continue
		}
		if math.IsNaN(e.prob) || math.IsInf(e.prob, 0) || e.prob < 0 || e.prob > 1 {
			errs = multierror.Append(errs, fmt.Errorf("%w: entry %d probability %v outside [0, 1]",
				maker.ErrConfig, i, e.prob))
			continue
		}
		sum += e.prob
	}
	if sum > 1 {
		errs = multierror.Append(errs, fmt.Errorf("%w: probabilities sum to %v, above 1",
			maker.ErrConfig, sum))
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	share := 0.0
	if unassigned > 0 {
		share = (1 - sum) / float64(unassigned)
	}

	probs := make([]float64, len(entries))
	for i, e := range entries {
		if e.assigned {
			probs[i] = e.prob
		} else {
			probs[i] = share
		}
	}
	return probs, nil
}
