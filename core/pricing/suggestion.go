// Package pricing proposes guardrailed price changes for repricing
// candidates. A suggestion is the gap-to-target increase clamped by the
// tightest of three ceilings: the percentage cap, the absolute dollar cap,
// and (unless premium pricing is allowed) the 85th percentile of prices in
// the item's category.
package pricing

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
)

// categoryCeilingPercentile is the category price standing a suggestion may
// not cross when premium pricing is off.
const categoryCeilingPercentile = 0.85

// CategoryIndex holds observed average prices grouped by menu category,
// with deterministic iteration order.
type CategoryIndex struct {
	prices *determinism.StableMap[string, []determinism.Money]
}

// NewCategoryIndex builds the index from the batch being scored. Items
// without a category or without an observed price contribute nothing.
func NewCategoryIndex(items []types.ItemInput) *CategoryIndex {
	idx := &CategoryIndex{prices: determinism.NewStableMap[string, []determinism.Money]()}
	for _, item := range items {
		if item.Category == "" || item.QuantitySold == 0 {
			continue
		}
		avg := item.NetSales.DivInt(item.QuantitySold)
		existing, _ := idx.prices.Get(item.Category)
		idx.prices.Set(item.Category, append(existing, avg))
	}
	return idx
}

// Ceiling returns the category's 85th-percentile price. The second return
// is false when the category is unknown or empty.
func (idx *CategoryIndex) Ceiling(category string) (determinism.Money, bool) {
	prices, ok := idx.prices.Get(category)
	if !ok || len(prices) == 0 {
		return determinism.Zero(), false
	}

	sorted := make([]determinism.Money, len(prices))
	copy(sorted, prices)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cmp(sorted[j]) < 0
	})

	rank := int(math.Ceil(categoryCeilingPercentile*float64(len(sorted)))) - 1
	if rank < 0 {
		rank = 0
	}
	return sorted[rank], true
}

// Candidate is the pricing-relevant view of an item.
type Candidate struct {
	// CurrentPrice is the observed average price
	CurrentPrice determinism.Money

	// UnitCost is the resolved unit food cost
	UnitCost determinism.Money

	// Category is the item's menu category, empty when unknown
	Category string
}

// Suggest computes a reprice proposal, or nil when no reprice is warranted:
// the item has no observed price, its food-cost ratio is already at or
// under target, or every ceiling binds the increase to zero. Anchor
// exemption is the recommender's concern; callers never pass anchors here.
func Suggest(c Candidate, settings types.Settings, idx *CategoryIndex) *types.PriceSuggestion {
	if !c.CurrentPrice.IsPositive() {
		return nil
	}

	foodCostPct := c.UnitCost.Ratio(c.CurrentPrice)
	if foodCostPct <= settings.TargetFoodCostPct {
		return nil
	}

	// The uncapped target is the price that brings the food-cost ratio back
	// to target: unitCost / targetPct.
	targetPrice := c.UnitCost.Div(decimal.NewFromFloat(settings.TargetFoodCostPct))
	increase := targetPrice.Sub(c.CurrentPrice)
	if !increase.IsPositive() {
		return nil
	}
	boundBy := types.GuardrailTargetGap

	// Tightest cap wins.
	pctCap := c.CurrentPrice.MulFloat(settings.MaxPriceIncreasePct)
	if pctCap.Cmp(increase) < 0 {
		increase = pctCap
		boundBy = types.GuardrailPercentCap
	}
	if settings.MaxPriceIncreaseAmt.Cmp(increase) < 0 {
		increase = settings.MaxPriceIncreaseAmt
		boundBy = types.GuardrailAbsoluteCap
	}

	// Floor to cents so rounding can never push the change past a cap.
	suggested := c.CurrentPrice.Add(increase).FloorCents()

	if !settings.AllowPremiumPricing && c.Category != "" {
		if ceiling, ok := idx.Ceiling(c.Category); ok && suggested.Cmp(ceiling) > 0 {
			suggested = ceiling.FloorCents()
			boundBy = types.GuardrailCategoryCeiling
		}
	}

	change := suggested.Sub(c.CurrentPrice)
	if !change.IsPositive() {
		return nil
	}

	return &types.PriceSuggestion{
		Price:        suggested,
		ChangeAmount: change,
		ChangePct:    change.Ratio(c.CurrentPrice),
		BoundBy:      boundBy,
	}
}
