// Package costing determines each item's unit food cost and its provenance
// through an ordered fallback: explicit cost record, then reconciled
// external cost, then a statistical estimate.
package costing

import (
	"strings"
	"unicode"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
)

// EstimateCostRatio is the fallback unit cost as a fraction of observed
// average price when no cost record exists at all.
const EstimateCostRatio = 0.30

// Resolution is a unit cost with its provenance.
type Resolution struct {
	UnitCost determinism.Money
	Source   types.CostSource
}

// Resolver resolves unit costs for a batch, optionally backed by computed
// costs from a reconciliation pass (keyed by normalized item name).
type Resolver struct {
	computed map[string]types.ComputedCost
}

// NewResolver creates a resolver. computed may be nil when no external cost
// source was supplied for the week.
func NewResolver(computed []types.ComputedCost) *Resolver {
	byName := make(map[string]types.ComputedCost, len(computed))
	for _, c := range computed {
		byName[c.NormalizedName] = c
	}
	return &Resolver{computed: byName}
}

// Resolve returns the unit cost and provenance for one item. An explicit
// cost record always wins, even at value zero - the estimate fallback only
// activates when no record is found anywhere, so a true zero-cost item is
// never silently masked.
func (r *Resolver) Resolve(item types.ItemInput, avgPrice determinism.Money) Resolution {
	if item.Cost != nil {
		return Resolution{UnitCost: item.Cost.UnitCost, Source: item.Cost.Source}
	}

	if c, ok := r.computed[NormalizeName(item.ItemName)]; ok {
		return Resolution{UnitCost: c.UnitCost, Source: types.CostSourceMarginEdge}
	}

	return Resolution{
		UnitCost: avgPrice.MulFloat(EstimateCostRatio).RoundCents(),
		Source:   types.CostSourceEstimate,
	}
}

// NormalizeName produces the matching key for item names across the POS and
// the external cost system: lowercased, punctuation stripped, whitespace
// collapsed.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastSpace := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteRune(' ')
				lastSpace = true
			}
		}
		// Punctuation is dropped entirely.
	}

	return strings.TrimSpace(b.String())
}
