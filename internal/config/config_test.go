package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/errors"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.DefaultFormat != "cli" {
		t.Errorf("default format = %q, want cli", cfg.Output.DefaultFormat)
	}
	if cfg.Scoring.TargetFoodCostPct != 0.30 {
		t.Errorf("target food cost = %v, want 0.30", cfg.Scoring.TargetFoodCostPct)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Output.DefaultFormat = "json"
	cfg.Scoring.MinQtyThreshold = 25
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Output.DefaultFormat != "json" {
		t.Errorf("format = %q, want json", loaded.Output.DefaultFormat)
	}
	if loaded.Scoring.MinQtyThreshold != 25 {
		t.Errorf("min qty = %d, want 25", loaded.Scoring.MinQtyThreshold)
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steakhouse.hcl")
	profile := `
settings {
  target_food_cost_pct   = 0.35
  min_qty_threshold      = 20
  allow_premium_pricing  = true
  max_price_increase_amt = 5.00
}
`
	if err := os.WriteFile(path, []byte(profile), 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.TargetFoodCostPct != 0.35 {
		t.Errorf("target = %v, want 0.35", settings.TargetFoodCostPct)
	}
	if settings.MinQtyThreshold != 20 {
		t.Errorf("min qty = %d, want 20", settings.MinQtyThreshold)
	}
	if !settings.AllowPremiumPricing {
		t.Error("premium pricing should be enabled")
	}
	if settings.MaxPriceIncreaseAmt.String() != "5.00" {
		t.Errorf("absolute cap = %s, want 5.00", settings.MaxPriceIncreaseAmt)
	}
	// Untouched attributes keep their defaults.
	if settings.PopularityThreshold != 60 {
		t.Errorf("popularity threshold = %v, want default 60", settings.PopularityThreshold)
	}
}

func TestLoadSettingsEmptyProfileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.hcl")
	if err := os.WriteFile(path, nil, 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if settings.TargetFoodCostPct != 0.30 || settings.MinQtyThreshold != 10 {
		t.Errorf("empty profile changed defaults: %+v", settings)
	}
}

func TestLoadSettingsRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	profile := `
settings {
  target_food_cost_pct = 1.4
}
`
	if err := os.WriteFile(path, []byte(profile), 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	if _, err := LoadSettings(path); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("err = %v, want CONFIG_ERROR", err)
	}
}

func TestLoadSettingsBadSyntax(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.hcl")
	if err := os.WriteFile(path, []byte("settings {"), 0644); err != nil {
		t.Fatalf("write profile: %v", err)
	}

	if _, err := LoadSettings(path); !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("err = %v, want CONFIG_ERROR", err)
	}
}
