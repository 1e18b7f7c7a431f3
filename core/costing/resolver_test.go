package costing

import (
	"testing"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
)

func TestResolveExplicitRecordWins(t *testing.T) {
	r := NewResolver([]types.ComputedCost{{
		NormalizedName: "club sandwich",
		UnitCost:       determinism.MustMoney("4.00"),
	}})

	item := types.ItemInput{
		ItemName: "Club Sandwich",
		Cost: &types.CostRecord{
			UnitCost: determinism.MustMoney("3.25"),
			Source:   types.CostSourceManual,
		},
	}

	got := r.Resolve(item, determinism.MustMoney("12.00"))
	if got.Source != types.CostSourceManual {
		t.Fatalf("source = %s, want MANUAL", got.Source)
	}
	if got.UnitCost.String() != "3.25" {
		t.Errorf("unit cost = %s, want 3.25", got.UnitCost)
	}
}

func TestResolveZeroCostRecordIsNotMasked(t *testing.T) {
	r := NewResolver(nil)
	item := types.ItemInput{
		ItemName: "Tap Water",
		Cost: &types.CostRecord{
			UnitCost: determinism.Zero(),
			Source:   types.CostSourceManual,
		},
	}

	got := r.Resolve(item, determinism.MustMoney("1.00"))
	if got.Source != types.CostSourceManual {
		t.Fatalf("zero-cost record must be honored, got source %s", got.Source)
	}
	if !got.UnitCost.IsZero() {
		t.Errorf("unit cost = %s, want 0.00", got.UnitCost)
	}
}

func TestResolveComputedCostFallback(t *testing.T) {
	r := NewResolver([]types.ComputedCost{{
		NormalizedName: "margherita pizza",
		UnitCost:       determinism.MustMoney("3.80"),
	}})

	item := types.ItemInput{ItemName: "  Margherita   Pizza! "}
	got := r.Resolve(item, determinism.MustMoney("14.00"))
	if got.Source != types.CostSourceMarginEdge {
		t.Fatalf("source = %s, want MARGINEDGE", got.Source)
	}
	if got.UnitCost.String() != "3.80" {
		t.Errorf("unit cost = %s, want 3.80", got.UnitCost)
	}
}

func TestResolveEstimateFallback(t *testing.T) {
	r := NewResolver(nil)
	item := types.ItemInput{ItemName: "Mystery Special"}

	got := r.Resolve(item, determinism.MustMoney("10.00"))
	if got.Source != types.CostSourceEstimate {
		t.Fatalf("source = %s, want ESTIMATE", got.Source)
	}
	if got.UnitCost.String() != "3.00" {
		t.Errorf("estimate = %s, want 3.00 (30%% of 10.00)", got.UnitCost)
	}
}

func TestNormalizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Club Sandwich", "club sandwich"},
		{"  CLUB   SANDWICH  ", "club sandwich"},
		{"Mac & Cheese", "mac cheese"},
		{"Po'Boy (Shrimp)", "poboy shrimp"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
