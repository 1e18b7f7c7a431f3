// Package explanation produces the ordered, human-readable justification
// strings attached to each scored item. Output is fully deterministic: the
// same facts always yield the same strings in the same order - rank and
// percentile standing first, then cost caveats, then the guardrail that
// bound any price suggestion, then the anchor note.
package explanation

import (
	"fmt"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
)

// Facts is the per-item input to the generator.
type Facts struct {
	// VolumeRank is the item's 1-based position by quantity sold
	VolumeRank int

	// TotalItems is the batch size
	TotalItems int

	PopularityPercentile float64
	MarginPercentile     float64

	Quadrant   types.Quadrant
	Action     types.Action
	CostSource types.CostSource

	// ConfidenceReason is the scorer's reasoning for a LOW grade; empty
	// otherwise
	ConfidenceReason string

	// Price is the reprice suggestion, nil when none
	Price *types.PriceSuggestion

	IsAnchor bool
}

// Generate renders the ordered explanation for one item.
func Generate(f Facts) []string {
	out := make([]string, 0, 5)

	out = append(out, fmt.Sprintf("#%d of %d by volume; %s percentile popularity, %s percentile margin.",
		f.VolumeRank, f.TotalItems, ordinal(f.PopularityPercentile), ordinal(f.MarginPercentile)))

	out = append(out, quadrantLine(f.Quadrant))

	if f.CostSource == types.CostSourceEstimate {
		out = append(out, "Food cost is estimated at 30% of average price (no cost record found); margin figures carry reduced confidence.")
	}

	if f.ConfidenceReason != "" {
		out = append(out, "Low confidence: "+f.ConfidenceReason+".")
	}

	if f.Price != nil {
		out = append(out, fmt.Sprintf("Suggested price %s (%s, %+.1f%%); %s.",
			f.Price.Price, signedAmount(f.Price.ChangeAmount.String()), f.Price.ChangePct*100,
			guardrailLine(f.Price.BoundBy)))
	}

	if f.IsAnchor {
		out = append(out, "Anchor item: exempt from removal and price increases.")
	}

	return out
}

func quadrantLine(q types.Quadrant) string {
	switch q {
	case types.QuadrantStar:
		return "Classified STAR: sells well and earns well."
	case types.QuadrantPlowhorse:
		return "Classified PLOWHORSE: sells well but earns below the margin line."
	case types.QuadrantPuzzle:
		return "Classified PUZZLE: earns well but sells below the popularity line."
	default:
		return "Classified DOG: below both the popularity and margin lines."
	}
}

func guardrailLine(g types.Guardrail) string {
	switch g {
	case types.GuardrailPercentCap:
		return "increase limited by the percentage-change guardrail"
	case types.GuardrailAbsoluteCap:
		return "increase limited by the absolute dollar guardrail"
	case types.GuardrailCategoryCeiling:
		return "increase limited by the category price ceiling"
	default:
		return "increase closes the gap to the target food-cost ratio"
	}
}

func signedAmount(s string) string {
	if len(s) > 0 && s[0] == '-' {
		return s
	}
	return "+" + s
}

// ordinal renders a percentile as "62nd", "71st", "100th" etc., rounding to
// the nearest integer first.
func ordinal(pct float64) string {
	n := int(pct + 0.5)
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
		// 11th, 12th, 13th
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
