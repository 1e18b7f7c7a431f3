// Package output provides output formatting for scoring results.
// This package produces human and machine-readable outputs.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable CLI table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// ParseFormat validates a format string from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCLI, FormatJSON:
		return Format(s), nil
	default:
		return "", errors.Configf("unknown output format %q (expected cli or json)", s)
	}
}

// Options controls what the CLI renderer includes.
type Options struct {
	// ShowExplanations includes per-item explanation lines
	ShowExplanations bool

	// ShowWatchList includes the low-signal watch list
	ShowWatchList bool
}

// Render writes the scoring result to w in the requested format.
func Render(w io.Writer, format Format, result *types.ScoringResult, opts Options) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, result)
	case FormatCLI:
		return renderCLI(w, result, opts)
	default:
		return errors.Configf("unknown output format %q", format)
	}
}

func renderJSON(w io.Writer, result *types.ScoringResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func renderCLI(w io.Writer, result *types.ScoringResult, opts Options) error {
	fmt.Fprintf(w, "Menu Scoring Run: %s\n", result.RunID)
	fmt.Fprintf(w, "Items: %d   Revenue: %s   Margin: %s   Food Cost: %.1f%%\n\n",
		result.Summary.ItemCount,
		result.Summary.TotalRevenue,
		result.Summary.TotalMargin,
		result.Summary.AvgFoodCostPct*100)

	if result.Validation != nil {
		RenderValidation(w, result.Validation)
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%-24s %5s %9s %6s %6s %-10s %-11s %-6s %9s\n",
		"ITEM", "QTY", "PRICE", "POP%", "MGN%", "QUADRANT", "ACTION", "CONF", "IMPACT")
	for _, m := range result.Items {
		fmt.Fprintf(w, "%-24s %5d %9s %6.0f %6.0f %-10s %-11s %-6s %9s\n",
			truncate(m.ItemName, 24),
			m.QuantitySold,
			m.AvgPrice,
			m.PopularityPercentile,
			m.MarginPercentile,
			m.Quadrant,
			m.RecommendedAction,
			m.Confidence,
			m.EstimatedImpact)
		if m.Price != nil {
			fmt.Fprintf(w, "  └─ suggest %s (+%s, +%.1f%%) bound by %s\n",
				m.Price.Price, m.Price.ChangeAmount, m.Price.ChangePct*100, m.Price.BoundBy)
		}
		if opts.ShowExplanations {
			for _, line := range m.Explanation {
				fmt.Fprintf(w, "     %s\n", line)
			}
		}
	}

	if len(result.TopActions) > 0 {
		fmt.Fprintln(w, "\nTop Actions:")
		for i, h := range result.TopActions {
			fmt.Fprintf(w, "  %d. %s: %s (est. %s/week)\n", i+1, h.ItemName, h.Action, h.EstimatedImpact)
		}
	}
	if result.BiggestMarginLeak != nil {
		fmt.Fprintf(w, "Biggest Margin Leak: %s, %s\n", result.BiggestMarginLeak.ItemName, result.BiggestMarginLeak.Note)
	}
	if result.EasiestWin != nil {
		fmt.Fprintf(w, "Easiest Win: %s, %s\n", result.EasiestWin.ItemName, result.EasiestWin.Note)
	}

	if opts.ShowWatchList && len(result.WatchList) > 0 {
		fmt.Fprintln(w, "\nWatch List:")
		for _, h := range result.WatchList {
			fmt.Fprintf(w, "  - %s: %s\n", h.ItemName, h.Note)
		}
	}

	return nil
}

// RenderValidation writes the cost-reconciliation report in the CLI format.
// It is also used standalone by the reconcile command.
func RenderValidation(w io.Writer, report *types.CostValidationReport) {
	fmt.Fprintf(w, "Cost Reconciliation: %s (%d/%d items matched, %.0f%% coverage)\n",
		report.CoverageBadge, report.MatchedItems, report.TotalItems, report.Coverage*100)

	if report.Staleness.IsStale {
		fmt.Fprintf(w, "⚠ %s\n", report.Staleness.Description)
	}
	for _, warning := range report.MismatchWarnings {
		fmt.Fprintf(w, "⚠ %s\n", warning)
	}
	for _, warning := range report.SanityWarnings {
		fmt.Fprintf(w, "⚠ %s\n", warning)
	}

	if report.Blocked() {
		fmt.Fprintln(w, "✗ Review required before this run can be used.")
	} else if report.RequiresAcknowledgment {
		fmt.Fprintln(w, "✓ Review required; acknowledged.")
	}
}

// truncate shortens on rune boundaries so multibyte names stay valid UTF-8.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
