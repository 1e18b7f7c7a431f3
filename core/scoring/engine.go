// Package scoring assembles the full menu-engineering run: cost resolution,
// percentile ranking, quadrant classification, action recommendation,
// explanations and the curated result. The engine is pure and synchronous;
// it holds no state across calls and identical inputs always produce a
// byte-identical ScoringResult.
package scoring

import (
	"encoding/json"

	"go.uber.org/zap"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/action"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/confidence"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/costing"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/explanation"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/percentile"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/pricing"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/quadrant"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/reconcile"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/errors"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/logging"
)

// topActionCount is how many recommendations the top-actions list carries.
const topActionCount = 3

var runIDs = determinism.NewIDGenerator("scoring-run")

// Engine scores one week of items against immutable Settings.
type Engine struct {
	settings types.Settings
	log      *zap.Logger
}

// NewEngine validates the settings and builds an engine.
func NewEngine(settings types.Settings) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Engine{settings: settings, log: logging.Component("scoring")}, nil
}

// Score runs a full scoring pass with a single cost source.
func (e *Engine) Score(items []types.ItemInput) (*types.ScoringResult, error) {
	return e.score(items, nil, nil)
}

// ScoreReconciled reconciles the external cost records against the POS
// items first, then scores using the reconciled costs. The validation
// report rides on the result even when it is blocking, so the caller can
// show why acknowledgment is required.
func (e *Engine) ScoreReconciled(items []types.ItemInput, external []types.ExternalCostRecord, week types.DateRange) (*types.ScoringResult, error) {
	rec := reconcile.Validate(items, external, week)
	return e.score(items, rec.ComputedCosts, rec.Report)
}

func (e *Engine) score(items []types.ItemInput, computed []types.ComputedCost, report *types.CostValidationReport) (*types.ScoringResult, error) {
	if err := validateBatch(items); err != nil {
		return nil, err
	}

	e.log.Debug("scoring batch",
		zap.Int("items", len(items)),
		zap.Bool("reconciled", report != nil))

	resolver := costing.NewResolver(computed)
	categories := pricing.NewCategoryIndex(items)

	metrics := make([]types.ItemMetrics, len(items))
	for i, item := range items {
		m := types.ItemMetrics{ItemInput: item}

		if item.QuantitySold > 0 {
			m.AvgPrice = item.NetSales.DivInt(item.QuantitySold).RoundCents()
		} else {
			m.AvgPrice = determinism.Zero()
		}

		res := resolver.Resolve(item, m.AvgPrice)
		m.UnitCost = res.UnitCost
		m.CostSource = res.Source

		m.UnitMargin = m.AvgPrice.Sub(m.UnitCost)
		m.TotalMargin = m.UnitMargin.MulInt(item.QuantitySold)

		if m.AvgPrice.IsPositive() {
			m.FoodCostPct = m.UnitCost.Ratio(m.AvgPrice)
			m.FoodCostDefined = true
		}

		metrics[i] = m
	}

	popularity := percentile.Rank(metrics, func(m types.ItemMetrics) float64 {
		return float64(m.QuantitySold)
	})
	margin := percentile.Rank(metrics, func(m types.ItemMetrics) float64 {
		return m.UnitMargin.Float64()
	})
	profit := percentile.Rank(metrics, func(m types.ItemMetrics) float64 {
		return m.TotalMargin.Float64()
	})

	for i := range metrics {
		m := &metrics[i]
		m.PopularityPercentile = popularity[i]
		m.MarginPercentile = margin[i]
		m.ProfitPercentile = profit[i]

		m.Quadrant = quadrant.Classify(m.PopularityPercentile, m.MarginPercentile, e.settings)

		assessment := confidence.Assess(m.QuantitySold, e.settings.MinQtyThreshold)
		m.Confidence = assessment.Level

		m.RecommendedAction = action.Recommend(action.Inputs{
			Quadrant:          m.Quadrant,
			Confidence:        m.Confidence,
			IsAnchor:          m.IsAnchor,
			FoodCostDefined:   m.FoodCostDefined,
			FoodCostPct:       m.FoodCostPct,
			TargetFoodCostPct: e.settings.TargetFoodCostPct,
		})

		if m.RecommendedAction == types.ActionReprice {
			m.Price = pricing.Suggest(pricing.Candidate{
				CurrentPrice: m.AvgPrice,
				UnitCost:     m.UnitCost,
				Category:     m.Category,
			}, e.settings, categories)
			if m.Price == nil {
				// Every guardrail bound the increase to zero; fall back to
				// the next conservative action.
				m.RecommendedAction = types.ActionReposition
			}
		}

		m.EstimatedImpact = action.EstimateImpact(m.RecommendedAction, m.Price, m.QuantitySold, m.TotalMargin)
	}

	// Result order: most popular first, item ID as the stable tie-break.
	determinism.SortSlice(metrics, func(a, b types.ItemMetrics) bool {
		if a.QuantitySold != b.QuantitySold {
			return a.QuantitySold > b.QuantitySold
		}
		return a.ItemID < b.ItemID
	})

	for i := range metrics {
		m := &metrics[i]
		facts := explanation.Facts{
			VolumeRank:           i + 1,
			TotalItems:           len(metrics),
			PopularityPercentile: m.PopularityPercentile,
			MarginPercentile:     m.MarginPercentile,
			Quadrant:             m.Quadrant,
			Action:               m.RecommendedAction,
			CostSource:           m.CostSource,
			Price:                m.Price,
			IsAnchor:             m.IsAnchor,
		}
		if m.Confidence == types.ConfidenceLow {
			facts.ConfidenceReason = confidence.Assess(m.QuantitySold, e.settings.MinQtyThreshold).Reason
		}
		m.Explanation = explanation.Generate(facts)
	}

	result := &types.ScoringResult{
		RunID:      runID(items, e.settings),
		Items:      metrics,
		Summary:    summarize(metrics),
		Validation: report,
	}
	e.curate(result)

	e.log.Info("scoring run complete",
		zap.String("run_id", result.RunID),
		zap.Int("items", len(metrics)))

	return result, nil
}

// validateBatch rejects malformed batches loudly rather than clamping.
// Negative rows are refunds/voids that upstream filtering should have
// removed.
func validateBatch(items []types.ItemInput) error {
	for _, item := range items {
		if item.ItemID == "" {
			return errors.Inputf("item %q has no item ID", item.ItemName)
		}
		if item.QuantitySold < 0 {
			return errors.Inputf("item %q has negative quantity sold %d", item.ItemID, item.QuantitySold)
		}
		if item.NetSales.IsNegative() {
			return errors.Inputf("item %q has negative net sales %s", item.ItemID, item.NetSales)
		}
		if item.Cost != nil && item.Cost.UnitCost.IsNegative() {
			return errors.Inputf("item %q has negative unit cost %s", item.ItemID, item.Cost.UnitCost)
		}
	}
	return nil
}

// runID fingerprints the run inputs so reruns of identical data share an ID.
func runID(items []types.ItemInput, settings types.Settings) string {
	payload, err := json.Marshal(struct {
		Items    []types.ItemInput `json:"items"`
		Settings types.Settings    `json:"settings"`
	}{items, settings})
	if err != nil {
		// Inputs are plain data; marshal cannot realistically fail.
		payload = nil
	}
	hash := determinism.ComputeHash(payload)
	return string(runIDs.Generate(hash.Hex()))
}

func summarize(metrics []types.ItemMetrics) types.Summary {
	s := types.Summary{
		ItemCount: len(metrics),
		QuadrantCounts: map[types.Quadrant]int{
			types.QuadrantStar:      0,
			types.QuadrantPlowhorse: 0,
			types.QuadrantPuzzle:    0,
			types.QuadrantDog:       0,
		},
		TotalRevenue: determinism.Zero(),
		TotalMargin:  determinism.Zero(),
	}

	totalCost := determinism.Zero()
	for _, m := range metrics {
		s.QuadrantCounts[m.Quadrant]++
		s.TotalRevenue = s.TotalRevenue.Add(m.NetSales)
		s.TotalMargin = s.TotalMargin.Add(m.TotalMargin)
		totalCost = totalCost.Add(m.UnitCost.MulInt(m.QuantitySold))
	}

	if s.TotalRevenue.IsPositive() {
		s.AvgFoodCostPct = totalCost.Ratio(s.TotalRevenue)
	}
	return s
}

// curate fills the highlight lists consumed by reports and emails.
func (e *Engine) curate(result *types.ScoringResult) {
	metrics := result.Items

	// Top actions: largest estimated impact first.
	actionable := make([]types.ItemMetrics, 0, len(metrics))
	for _, m := range metrics {
		if m.EstimatedImpact.IsPositive() {
			actionable = append(actionable, m)
		}
	}
	determinism.SortSlice(actionable, func(a, b types.ItemMetrics) bool {
		if c := a.EstimatedImpact.Cmp(b.EstimatedImpact); c != 0 {
			return c > 0
		}
		return a.ItemID < b.ItemID
	})
	for i := 0; i < len(actionable) && i < topActionCount; i++ {
		m := actionable[i]
		result.TopActions = append(result.TopActions, highlight(m, ""))
	}

	// Biggest margin leak: the item bleeding the most dollars against the
	// target food-cost ratio.
	leak := determinism.Zero()
	for _, m := range metrics {
		if !m.FoodCostDefined || m.FoodCostPct <= e.settings.TargetFoodCostPct {
			continue
		}
		itemLeak := m.NetSales.MulFloat(m.FoodCostPct - e.settings.TargetFoodCostPct)
		if itemLeak.Cmp(leak) > 0 {
			leak = itemLeak
			h := highlight(m, "losing "+itemLeak.RoundCents().String()+" per week against the target food-cost ratio")
			result.BiggestMarginLeak = &h
		}
	}

	// Easiest win: the highest-impact reprice backed by a HIGH-confidence
	// volume signal.
	for _, m := range metrics {
		if m.RecommendedAction != types.ActionReprice || m.Confidence != types.ConfidenceHigh {
			continue
		}
		if result.EasiestWin == nil || m.EstimatedImpact.Cmp(result.EasiestWin.EstimatedImpact) > 0 {
			h := highlight(m, "guardrailed price change with a reliable volume signal")
			result.EasiestWin = &h
		}
	}

	// Watch list: unreliable signals - low volume or estimated costs.
	for _, m := range metrics {
		switch {
		case m.Confidence == types.ConfidenceLow:
			result.WatchList = append(result.WatchList, highlight(m, "low sales volume; percentile placement is noisy"))
		case m.CostSource == types.CostSourceEstimate:
			result.WatchList = append(result.WatchList, highlight(m, "food cost is estimated; margin standing is approximate"))
		}
	}
	determinism.SortSlice(result.WatchList, func(a, b types.Highlight) bool {
		return a.ItemID < b.ItemID
	})
}

func highlight(m types.ItemMetrics, note string) types.Highlight {
	return types.Highlight{
		ItemID:          m.ItemID,
		ItemName:        m.ItemName,
		Action:          m.RecommendedAction,
		EstimatedImpact: m.EstimatedImpact,
		Note:            note,
	}
}
