// Package types - cost reconciliation outputs
package types

import (
	"time"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
)

// ComputedCost is a per-item unit cost computed from external cost-system
// data during reconciliation, with its base/modifier breakdown and any
// warnings raised while ingesting the record.
type ComputedCost struct {
	// ItemName is the cost system's item name
	ItemName string `json:"item_name"`

	// NormalizedName is the matching key (lowercased, punctuation stripped)
	NormalizedName string `json:"normalized_name"`

	// UnitCost is the computed unit food cost
	UnitCost determinism.Money `json:"unit_cost"`

	// Base is the unit cost before modifiers
	Base determinism.Money `json:"base"`

	// ModifierTotal is the summed modifier amount
	ModifierTotal determinism.Money `json:"modifier_total"`

	// Warnings are non-fatal ingestion issues for this record
	Warnings []string `json:"warnings,omitempty"`
}

// Staleness describes how the external cost period aligns with the
// scoring week.
type Staleness struct {
	// IsStale is true when the cost period ends materially before the week
	IsStale bool `json:"is_stale"`

	// PeriodEnd is the latest external reporting period end
	PeriodEnd time.Time `json:"period_end"`

	// WeekStart is the scoring week start
	WeekStart time.Time `json:"week_start"`

	// LagDays is how many days the cost period trails the week start
	LagDays int `json:"lag_days"`

	// Description is a human-readable summary
	Description string `json:"description,omitempty"`
}

// CostValidationReport is the outcome of cross-checking POS aggregates
// against the external cost system. Degraded data is represented here as
// badges and warning strings, never as errors; blocking conditions are the
// RequiresAcknowledgment flag, which a human must explicitly override.
type CostValidationReport struct {
	// Coverage is matched POS items / total POS items
	Coverage float64 `json:"coverage"`

	// CoverageBadge grades the coverage
	CoverageBadge CoverageBadge `json:"coverage_badge"`

	// MatchedItems and TotalItems back the coverage fraction
	MatchedItems int `json:"matched_items"`
	TotalItems   int `json:"total_items"`

	// Staleness compares the cost period to the scoring week
	Staleness Staleness `json:"staleness"`

	// MismatchWarnings flag per-item price disagreements beyond tolerance
	MismatchWarnings []string `json:"mismatch_warnings,omitempty"`

	// SanityWarnings flag implausible cost ratios
	SanityWarnings []string `json:"sanity_warnings,omitempty"`

	// RequiresAcknowledgment is true when coverage is REVIEW-grade or any
	// sanity warning fired
	RequiresAcknowledgment bool `json:"requires_acknowledgment"`

	// Acknowledged records the explicit human override
	Acknowledged bool `json:"acknowledged,omitempty"`
}

// Acknowledge records the explicit human override of a blocking report.
func (r *CostValidationReport) Acknowledge() {
	r.Acknowledged = true
}

// Blocked reports whether the run may not silently proceed.
func (r *CostValidationReport) Blocked() bool {
	return r.RequiresAcknowledgment && !r.Acknowledged
}
