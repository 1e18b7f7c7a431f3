// Package action turns an item's quadrant, confidence and anchor status
// into a recommended menu action and an estimated dollar impact. The
// decision logic is a flat pattern-match over (Quadrant, Confidence,
// IsAnchor) so every branch is enumerable and testable in isolation.
package action

import (
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
)

// Inputs is everything the decision table consumes.
type Inputs struct {
	Quadrant   types.Quadrant
	Confidence types.Confidence
	IsAnchor   bool

	// FoodCostDefined is false when the item has no observed price.
	FoodCostDefined bool

	// FoodCostPct vs. TargetFoodCostPct is the margin-gap refinement: a
	// ratio above target marks cost (not placement) as the blocker.
	FoodCostPct       float64
	TargetFoodCostPct float64
}

// overTarget reports whether cost is the blocker for this item.
func (in Inputs) overTarget() bool {
	return in.FoodCostDefined && in.FoodCostPct > in.TargetFoodCostPct
}

// Recommend resolves the decision table. LOW-confidence items are steered
// toward conservative actions (KEEP/REPOSITION) because their volume signal
// is unreliable; anchors are never removed and never repriced.
func Recommend(in Inputs) types.Action {
	low := in.Confidence == types.ConfidenceLow

	switch in.Quadrant {
	case types.QuadrantStar:
		// Near-optimal stars stay put; the rest get pushed harder.
		if low || !in.overTarget() {
			return types.ActionKeep
		}
		return types.ActionPromote

	case types.QuadrantPlowhorse:
		if low {
			return types.ActionKeep
		}
		if in.overTarget() {
			if in.IsAnchor {
				return types.ActionKeepAnchor
			}
			return types.ActionReprice
		}
		return types.ActionReposition

	case types.QuadrantPuzzle:
		if !low && in.overTarget() {
			return types.ActionReworkCost
		}
		// Good margin, low volume: a visibility problem.
		return types.ActionReposition

	case types.QuadrantDog:
		if in.IsAnchor {
			return types.ActionKeepAnchor
		}
		if low {
			return types.ActionReposition
		}
		return types.ActionRemove

	default:
		return types.ActionKeep
	}
}

// EstimateImpact computes the dollar figure used to rank actions across the
// run: a reprice is worth its change times weekly volume, a removal frees
// the margin the slot currently loses, a reposition's upside is the item's
// current margin. Everything else is zero.
func EstimateImpact(action types.Action, price *types.PriceSuggestion, quantitySold int, totalMargin determinism.Money) determinism.Money {
	switch action {
	case types.ActionReprice:
		if price == nil {
			return determinism.Zero()
		}
		return price.ChangeAmount.MulInt(quantitySold)
	case types.ActionRemove:
		return totalMargin.Abs()
	case types.ActionReposition:
		return totalMargin
	default:
		return determinism.Zero()
	}
}
