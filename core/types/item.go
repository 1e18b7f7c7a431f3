// Package types - scoring inputs
package types

import (
	"time"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/errors"
)

// CostModifier is a named adjustment on top of a base unit cost
// (packaging, garnish, waste allowance).
type CostModifier struct {
	Name   string            `json:"name"`
	Amount determinism.Money `json:"amount"`
}

// CostRecord is an explicit unit food cost with its provenance. A record
// with a zero UnitCost is a true zero-cost item, not a missing cost; the
// resolver only falls back to estimation when no record exists at all.
type CostRecord struct {
	// UnitCost is the unit food cost
	UnitCost determinism.Money `json:"unit_cost"`

	// Source is the declared provenance (MANUAL or MARGINEDGE)
	Source CostSource `json:"source"`

	// Base is the optional cost before modifiers
	Base *determinism.Money `json:"base,omitempty"`

	// Modifiers are optional adjustments applied to Base
	Modifiers []CostModifier `json:"modifiers,omitempty"`
}

// ItemInput is one menu item's sales and cost data for a scoring week.
// Rows are aggregated and filtered upstream; refunds and voids never
// reach the engine.
type ItemInput struct {
	// ItemID uniquely identifies the item within the organization
	ItemID string `json:"item_id"`

	// ItemName is the guest-facing name
	ItemName string `json:"item_name"`

	// Category is the optional menu category (used for price norms)
	Category string `json:"category,omitempty"`

	// QuantitySold is the number of units sold in the week (>= 0)
	QuantitySold int `json:"quantity_sold"`

	// NetSales is the week's net revenue for the item (>= 0)
	NetSales determinism.Money `json:"net_sales"`

	// Cost is the explicit cost record, nil when no cost data exists
	Cost *CostRecord `json:"cost,omitempty"`

	// IsAnchor marks an owner-designated staple exempt from removal
	IsAnchor bool `json:"is_anchor"`
}

// DateRange is a reporting period
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ExternalCostRecord is one item's data from the external ingredient-costing
// system, used for reconciliation against POS aggregates.
type ExternalCostRecord struct {
	// ItemName is the item name as the cost system reports it
	ItemName string `json:"item_name"`

	// UnitCost is the reported unit food cost
	UnitCost determinism.Money `json:"unit_cost"`

	// Base is the optional unit cost before modifiers
	Base *determinism.Money `json:"base,omitempty"`

	// Modifiers are optional cost adjustments
	Modifiers []CostModifier `json:"modifiers,omitempty"`

	// ReportedRevenue is the cost system's revenue figure, when present
	ReportedRevenue *determinism.Money `json:"reported_revenue,omitempty"`

	// QuantitySold is the cost system's unit count, when present
	QuantitySold int `json:"quantity_sold,omitempty"`

	// Period is the cost system's reporting period
	Period DateRange `json:"period"`
}

// Settings are the per-organization scoring thresholds, immutable during a
// scoring run. Every run takes Settings explicitly; there is no ambient
// configuration inside the engine.
type Settings struct {
	// TargetFoodCostPct is the target food-cost ratio (e.g. 0.30)
	TargetFoodCostPct float64 `json:"target_food_cost_pct"`

	// MinQtyThreshold is the quantity floor for MEDIUM confidence
	MinQtyThreshold int `json:"min_qty_threshold"`

	// PopularityThreshold is the popularity percentile cut line (1-99)
	PopularityThreshold float64 `json:"popularity_threshold"`

	// MarginThreshold is the margin percentile cut line (1-99)
	MarginThreshold float64 `json:"margin_threshold"`

	// AllowPremiumPricing disables the category price ceiling when true
	AllowPremiumPricing bool `json:"allow_premium_pricing"`

	// MaxPriceIncreasePct caps a suggested increase relative to current price
	MaxPriceIncreasePct float64 `json:"max_price_increase_pct"`

	// MaxPriceIncreaseAmt caps a suggested increase in absolute dollars
	MaxPriceIncreaseAmt determinism.Money `json:"max_price_increase_amt"`
}

// DefaultSettings returns the stock organization thresholds.
func DefaultSettings() Settings {
	return Settings{
		TargetFoodCostPct:   0.30,
		MinQtyThreshold:     10,
		PopularityThreshold: 60,
		MarginThreshold:     60,
		AllowPremiumPricing: false,
		MaxPriceIncreasePct: 0.10,
		MaxPriceIncreaseAmt: determinism.MustMoney("3.00"),
	}
}

// Validate checks threshold ranges.
func (s Settings) Validate() error {
	if s.TargetFoodCostPct <= 0 || s.TargetFoodCostPct >= 1 {
		return errors.Configf("target_food_cost_pct must be in (0,1), got %v", s.TargetFoodCostPct)
	}
	if s.MinQtyThreshold < 0 {
		return errors.Configf("min_qty_threshold must be >= 0, got %d", s.MinQtyThreshold)
	}
	if s.PopularityThreshold < 1 || s.PopularityThreshold > 99 {
		return errors.Configf("popularity_threshold must be in [1,99], got %v", s.PopularityThreshold)
	}
	if s.MarginThreshold < 1 || s.MarginThreshold > 99 {
		return errors.Configf("margin_threshold must be in [1,99], got %v", s.MarginThreshold)
	}
	if s.MaxPriceIncreasePct < 0 {
		return errors.Configf("max_price_increase_pct must be >= 0, got %v", s.MaxPriceIncreasePct)
	}
	if s.MaxPriceIncreaseAmt.IsNegative() {
		return errors.Config("max_price_increase_amt must be >= 0")
	}
	return nil
}
