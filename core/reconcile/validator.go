// Package reconcile cross-checks POS-derived item volumes and prices
// against the external ingredient-costing system before a scoring run. It
// never throws away data: every problem becomes a badge, a warning string
// or the RequiresAcknowledgment flag, so the caller can show exactly why a
// run is blocked.
package reconcile

import (
	"fmt"
	"math"
	"sort"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/costing"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
)

const (
	// coverageGood and coverageMixed are the badge cut lines. Exactly half
	// coverage still grades MIXED; only below that is REVIEW.
	coverageGood  = 0.90
	coverageMixed = 0.50

	// priceMismatchTolerance is the relative POS-vs-cost-system price
	// disagreement beyond which a mapping error is assumed.
	priceMismatchTolerance = 0.15

	// sanityFoodCostCeiling flags a unit cost implausibly close to or over
	// the observed price.
	sanityFoodCostCeiling = 0.80

	// stalenessGraceDays is how far the cost period may trail the scoring
	// week before it is flagged stale.
	stalenessGraceDays = 3
)

// nearZeroCost flags a unit cost implausibly near zero for a priced item.
var nearZeroCost = determinism.MustMoney("0.01")

// Result bundles the validation report with the per-item computed costs the
// cost resolver can consume.
type Result struct {
	Report        *types.CostValidationReport
	ComputedCosts []types.ComputedCost
}

// Validate reconciles one week of POS items against the external cost
// records. Mismatches are surfaced but never halt processing; REVIEW-grade
// coverage or any sanity warning sets RequiresAcknowledgment, which the
// caller must have a human override before persisting a run.
func Validate(items []types.ItemInput, external []types.ExternalCostRecord, week types.DateRange) *Result {
	computed := ingest(external)

	byName := make(map[string]types.ComputedCost, len(computed))
	extByName := make(map[string]types.ExternalCostRecord, len(external))
	for i, c := range computed {
		byName[c.NormalizedName] = c
		extByName[c.NormalizedName] = external[i]
	}

	report := &types.CostValidationReport{
		TotalItems: len(items),
	}

	// Per-record ingestion problems surface on the report too, in stable
	// name order, so they reach the operator and not just the resolver.
	ingested := make([]types.ComputedCost, len(computed))
	copy(ingested, computed)
	sort.SliceStable(ingested, func(i, j int) bool {
		return ingested[i].NormalizedName < ingested[j].NormalizedName
	})
	for _, c := range ingested {
		for _, w := range c.Warnings {
			report.MismatchWarnings = append(report.MismatchWarnings,
				fmt.Sprintf("cost record for %q: %s", c.ItemName, w))
		}
	}

	// Deterministic warning order: walk POS items sorted by name.
	ordered := make([]types.ItemInput, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ItemName < ordered[j].ItemName
	})

	for _, item := range ordered {
		key := costing.NormalizeName(item.ItemName)
		cost, ok := byName[key]
		if !ok {
			continue
		}
		report.MatchedItems++

		if item.QuantitySold == 0 {
			continue
		}
		posAvg := item.NetSales.DivInt(item.QuantitySold)

		if ext := extByName[key]; ext.ReportedRevenue != nil && ext.QuantitySold > 0 {
			extAvg := ext.ReportedRevenue.DivInt(ext.QuantitySold)
			if posAvg.IsPositive() {
				rel := extAvg.Sub(posAvg).Ratio(posAvg)
				if math.Abs(rel) > priceMismatchTolerance {
					report.MismatchWarnings = append(report.MismatchWarnings,
						fmt.Sprintf("price mismatch for %q: POS average %s vs cost-system %s (%+.1f%%)",
							item.ItemName, posAvg.RoundCents(), extAvg.RoundCents(), rel*100))
				}
			}
		}

		if posAvg.IsPositive() {
			ratio := cost.UnitCost.Ratio(posAvg)
			if ratio > sanityFoodCostCeiling {
				report.SanityWarnings = append(report.SanityWarnings,
					fmt.Sprintf("unit cost %s for %q is %.0f%% of its %s price",
						cost.UnitCost, item.ItemName, ratio*100, posAvg.RoundCents()))
			} else if cost.UnitCost.Cmp(nearZeroCost) < 0 {
				report.SanityWarnings = append(report.SanityWarnings,
					fmt.Sprintf("unit cost %s for %q is implausibly near zero", cost.UnitCost, item.ItemName))
			}
		}
	}

	if report.TotalItems > 0 {
		report.Coverage = float64(report.MatchedItems) / float64(report.TotalItems)
	}
	report.CoverageBadge = badge(report.Coverage)
	report.Staleness = staleness(external, week)
	report.RequiresAcknowledgment = report.CoverageBadge == types.BadgeReview || len(report.SanityWarnings) > 0

	return &Result{Report: report, ComputedCosts: computed}
}

// ingest turns external records into ComputedCosts, attaching per-record
// ingestion warnings instead of dropping data.
func ingest(external []types.ExternalCostRecord) []types.ComputedCost {
	out := make([]types.ComputedCost, 0, len(external))
	for _, rec := range external {
		c := types.ComputedCost{
			ItemName:       rec.ItemName,
			NormalizedName: costing.NormalizeName(rec.ItemName),
			UnitCost:       rec.UnitCost,
		}

		modifierTotal := determinism.Zero()
		for _, m := range rec.Modifiers {
			modifierTotal = modifierTotal.Add(m.Amount)
		}
		c.ModifierTotal = modifierTotal

		if rec.Base != nil {
			c.Base = *rec.Base
			if rebuilt := rec.Base.Add(modifierTotal); rebuilt.Cmp(rec.UnitCost) != 0 {
				c.Warnings = append(c.Warnings,
					fmt.Sprintf("base %s plus modifiers %s does not equal unit cost %s",
						rec.Base, modifierTotal, rec.UnitCost))
			}
		} else {
			c.Base = rec.UnitCost.Sub(modifierTotal)
		}

		if rec.UnitCost.IsNegative() {
			c.Warnings = append(c.Warnings, "negative unit cost reported")
		}

		out = append(out, c)
	}
	return out
}

func badge(coverage float64) types.CoverageBadge {
	switch {
	case coverage >= coverageGood:
		return types.BadgeGood
	case coverage >= coverageMixed:
		return types.BadgeMixed
	default:
		return types.BadgeReview
	}
}

// staleness compares the latest external reporting period against the
// scoring week. A period ending materially before the week start means the
// costs may not reflect what the kitchen actually paid that week.
func staleness(external []types.ExternalCostRecord, week types.DateRange) types.Staleness {
	s := types.Staleness{WeekStart: week.Start}
	for _, rec := range external {
		if rec.Period.End.After(s.PeriodEnd) {
			s.PeriodEnd = rec.Period.End
		}
	}
	if s.PeriodEnd.IsZero() || week.Start.IsZero() {
		return s
	}

	lag := week.Start.Sub(s.PeriodEnd)
	if lag <= 0 {
		return s
	}
	s.LagDays = int(lag.Hours() / 24)
	if s.LagDays > stalenessGraceDays {
		s.IsStale = true
		s.Description = fmt.Sprintf("cost data period ended %d days before the scoring week", s.LagDays)
	}
	return s
}
