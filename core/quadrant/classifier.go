// Package quadrant maps percentile standings onto the menu-engineering
// matrix (STAR / PLOWHORSE / PUZZLE / DOG).
package quadrant

import (
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
)

// Classify places an item in exactly one quadrant. The two thresholds are
// independent cut lines; >= resolves boundary values into the "yes" bucket,
// so no tie-break is needed.
//
//	popularity >= threshold, margin >= threshold -> STAR
//	popularity >= threshold, margin <  threshold -> PLOWHORSE
//	popularity <  threshold, margin >= threshold -> PUZZLE
//	popularity <  threshold, margin <  threshold -> DOG
func Classify(popularityPercentile, marginPercentile float64, settings types.Settings) types.Quadrant {
	popular := popularityPercentile >= settings.PopularityThreshold
	marginal := marginPercentile >= settings.MarginThreshold

	switch {
	case popular && marginal:
		return types.QuadrantStar
	case popular:
		return types.QuadrantPlowhorse
	case marginal:
		return types.QuadrantPuzzle
	default:
		return types.QuadrantDog
	}
}
