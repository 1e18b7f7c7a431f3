// Package types - scoring outputs
package types

import (
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
)

// PriceSuggestion is a guardrailed reprice proposal. All fields are absent
// (nil suggestion) when no reprice is warranted.
type PriceSuggestion struct {
	// Price is the suggested new price
	Price determinism.Money `json:"price"`

	// ChangeAmount is suggested minus current price
	ChangeAmount determinism.Money `json:"change_amount"`

	// ChangePct is the change relative to the current price
	ChangePct float64 `json:"change_pct"`

	// BoundBy names the guardrail that limited the suggestion
	BoundBy Guardrail `json:"bound_by"`
}

// ItemMetrics is the full derived scorecard for one item. Pure derivation:
// recomputed wholesale on every run, immutable once produced.
type ItemMetrics struct {
	ItemInput

	// AvgPrice is NetSales / QuantitySold (zero when nothing sold)
	AvgPrice determinism.Money `json:"avg_price"`

	// UnitCost is the resolved unit food cost
	UnitCost determinism.Money `json:"unit_cost"`

	// CostSource is the provenance of UnitCost
	CostSource CostSource `json:"cost_source"`

	// UnitMargin is AvgPrice - UnitCost
	UnitMargin determinism.Money `json:"unit_margin"`

	// TotalMargin is UnitMargin * QuantitySold
	TotalMargin determinism.Money `json:"total_margin"`

	// FoodCostPct is UnitCost / AvgPrice; undefined when AvgPrice is zero
	FoodCostPct float64 `json:"food_cost_pct"`

	// FoodCostDefined is false when AvgPrice is zero
	FoodCostDefined bool `json:"food_cost_defined"`

	// Percentiles are in [0,100]
	PopularityPercentile float64 `json:"popularity_percentile"`
	MarginPercentile     float64 `json:"margin_percentile"`
	ProfitPercentile     float64 `json:"profit_percentile"`

	// Quadrant is the popularity x margin classification
	Quadrant Quadrant `json:"quadrant"`

	// RecommendedAction is the engine's recommendation
	RecommendedAction Action `json:"recommended_action"`

	// Price is the reprice suggestion, nil when none is warranted
	Price *PriceSuggestion `json:"price,omitempty"`

	// Confidence is the trust level in the sales signal
	Confidence Confidence `json:"confidence"`

	// Explanation is the ordered human-readable rationale
	Explanation []string `json:"explanation"`

	// EstimatedImpact is the dollar impact used to rank actions
	EstimatedImpact determinism.Money `json:"estimated_impact"`
}

// Summary aggregates a scoring run
type Summary struct {
	// ItemCount is the number of scored items
	ItemCount int `json:"item_count"`

	// QuadrantCounts is the number of items per quadrant
	QuadrantCounts map[Quadrant]int `json:"quadrant_counts"`

	// TotalRevenue is the summed net sales
	TotalRevenue determinism.Money `json:"total_revenue"`

	// TotalMargin is the summed total margin
	TotalMargin determinism.Money `json:"total_margin"`

	// AvgFoodCostPct is total cost over total revenue (revenue-weighted)
	AvgFoodCostPct float64 `json:"avg_food_cost_pct"`
}

// Highlight is a curated pointer into the item list
type Highlight struct {
	ItemID          string            `json:"item_id"`
	ItemName        string            `json:"item_name"`
	Action          Action            `json:"action"`
	EstimatedImpact determinism.Money `json:"estimated_impact"`
	Note            string            `json:"note,omitempty"`
}

// ScoringResult is the complete output of one scoring run. It carries no
// timestamps; the RunID is a content hash of the inputs so identical inputs
// produce byte-identical results.
type ScoringResult struct {
	// RunID is a deterministic fingerprint of (items, settings)
	RunID string `json:"run_id"`

	// Items are the per-item scorecards, ordered by popularity
	Items []ItemMetrics `json:"items"`

	// Summary aggregates the run
	Summary Summary `json:"summary"`

	// TopActions are the highest-impact recommendations
	TopActions []Highlight `json:"top_actions,omitempty"`

	// BiggestMarginLeak is the item bleeding the most margin vs. target
	BiggestMarginLeak *Highlight `json:"biggest_margin_leak,omitempty"`

	// EasiestWin is the highest-confidence reprice with the largest impact
	EasiestWin *Highlight `json:"easiest_win,omitempty"`

	// WatchList holds low-confidence or estimated-cost items
	WatchList []Highlight `json:"watch_list,omitempty"`

	// Validation is present when two cost sources were reconciled
	Validation *CostValidationReport `json:"validation,omitempty"`
}
