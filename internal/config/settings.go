package config

import (
	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/determinism"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/errors"
)

// settingsFile is the root of an HCL settings profile.
type settingsFile struct {
	Settings *settingsBlock `hcl:"settings,block"`
}

// settingsBlock mirrors types.Settings with every attribute optional, so a
// profile only states what it overrides.
type settingsBlock struct {
	TargetFoodCostPct   *float64 `hcl:"target_food_cost_pct,optional"`
	MinQtyThreshold     *int     `hcl:"min_qty_threshold,optional"`
	PopularityThreshold *float64 `hcl:"popularity_threshold,optional"`
	MarginThreshold     *float64 `hcl:"margin_threshold,optional"`
	AllowPremiumPricing *bool    `hcl:"allow_premium_pricing,optional"`
	MaxPriceIncreasePct *float64 `hcl:"max_price_increase_pct,optional"`
	MaxPriceIncreaseAmt *float64 `hcl:"max_price_increase_amt,optional"`
}

// LoadSettings reads an HCL settings profile and applies it on top of the
// defaults. Unset attributes keep their default values, and the merged
// result is validated before use.
func LoadSettings(path string) (types.Settings, error) {
	settings := types.DefaultSettings()

	var file settingsFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return settings, errors.Wrap(errors.TypeConfig, "parsing settings profile", err)
	}
	if file.Settings == nil {
		return settings, nil
	}

	b := file.Settings
	if b.TargetFoodCostPct != nil {
		settings.TargetFoodCostPct = *b.TargetFoodCostPct
	}
	if b.MinQtyThreshold != nil {
		settings.MinQtyThreshold = *b.MinQtyThreshold
	}
	if b.PopularityThreshold != nil {
		settings.PopularityThreshold = *b.PopularityThreshold
	}
	if b.MarginThreshold != nil {
		settings.MarginThreshold = *b.MarginThreshold
	}
	if b.AllowPremiumPricing != nil {
		settings.AllowPremiumPricing = *b.AllowPremiumPricing
	}
	if b.MaxPriceIncreasePct != nil {
		settings.MaxPriceIncreasePct = *b.MaxPriceIncreasePct
	}
	if b.MaxPriceIncreaseAmt != nil {
		settings.MaxPriceIncreaseAmt = determinism.NewMoneyFromFloat(*b.MaxPriceIncreaseAmt)
	}

	if err := settings.Validate(); err != nil {
		return settings, err
	}
	return settings, nil
}
