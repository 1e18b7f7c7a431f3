package confidence

import (
	"testing"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
)

func TestAssessThresholds(t *testing.T) {
	cases := []struct {
		qty       int
		threshold int
		want      types.Confidence
	}{
		{0, 10, types.ConfidenceLow},
		{5, 10, types.ConfidenceLow},
		{9, 10, types.ConfidenceLow},
		{10, 10, types.ConfidenceMedium},
		{19, 10, types.ConfidenceMedium},
		{20, 10, types.ConfidenceHigh},
		{500, 10, types.ConfidenceHigh},
	}

	for _, tc := range cases {
		got := Assess(tc.qty, tc.threshold)
		if got.Level != tc.want {
			t.Errorf("Assess(%d, %d) = %s, want %s", tc.qty, tc.threshold, got.Level, tc.want)
		}
		if got.Reason == "" {
			t.Errorf("Assess(%d, %d) produced empty reason", tc.qty, tc.threshold)
		}
	}
}

func TestAssessMonotonicInQuantity(t *testing.T) {
	const threshold = 12
	prev := Assess(0, threshold).Level
	for qty := 1; qty <= 3*threshold; qty++ {
		cur := Assess(qty, threshold).Level
		if cur.Rank() < prev.Rank() {
			t.Fatalf("confidence decreased from %s to %s at qty %d", prev, cur, qty)
		}
		prev = cur
	}
}

func TestAssessZeroThreshold(t *testing.T) {
	// A zero floor means every item has at least twice the floor.
	if got := Assess(0, 0); got.Level != types.ConfidenceHigh {
		t.Errorf("Assess(0, 0) = %s, want HIGH", got.Level)
	}
}
