// Package confidence grades the statistical trust in an item's sales
// signal. Low-volume items produce noisy percentile placement and must not
// trigger aggressive pricing actions.
package confidence

import (
	"fmt"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
)

// Assessment is a confidence level with the reasoning behind it, surfaced
// verbatim in item explanations.
type Assessment struct {
	Level  types.Confidence
	Reason string
}

// Assess grades quantitySold against the organization's quantity floor:
// below the floor is LOW, at or above it but under twice the floor is
// MEDIUM, twice the floor or more is HIGH. Monotonic in quantitySold for a
// fixed floor.
func Assess(quantitySold, minQtyThreshold int) Assessment {
	switch {
	case quantitySold < minQtyThreshold:
		return Assessment{
			Level:  types.ConfidenceLow,
			Reason: fmt.Sprintf("only %d sold this week (floor is %d); the volume signal is noisy", quantitySold, minQtyThreshold),
		}
	case quantitySold < 2*minQtyThreshold:
		return Assessment{
			Level:  types.ConfidenceMedium,
			Reason: fmt.Sprintf("%d sold this week clears the floor of %d but not twice it", quantitySold, minQtyThreshold),
		}
	default:
		return Assessment{
			Level:  types.ConfidenceHigh,
			Reason: fmt.Sprintf("%d sold this week, at least twice the floor of %d", quantitySold, minQtyThreshold),
		}
	}
}
