// Package cmd - score command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/adapters/ingest"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/output"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/scoring"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/types"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/config"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/internal/logging"
)

var (
	itemsFile         string
	externalFile      string
	settingsFile      string
	outputFormat      string
	weekStart         string
	weekEnd           string
	acknowledgeReview bool
)

// scoreCmd represents the score command
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a week of menu items",
	Long: `Score a weekly POS export and produce quadrant classifications,
recommended actions and guardrailed price suggestions.

When an external cost report is supplied it is reconciled against the POS
data first. A REVIEW-grade reconciliation blocks the run unless
--acknowledge-review is passed.

Examples:
  menu-autopilot score --items week12.csv
  menu-autopilot score --items week12.csv --settings steakhouse.hcl --format json
  menu-autopilot score --items week12.csv --external costs.csv --week-start 2025-03-10 --week-end 2025-03-16`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&itemsFile, "items", "i", "", "weekly POS items CSV (required)")
	scoreCmd.Flags().StringVarP(&externalFile, "external", "e", "", "external cost report CSV")
	scoreCmd.Flags().StringVarP(&settingsFile, "settings", "s", "", "HCL settings profile")
	scoreCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	scoreCmd.Flags().StringVar(&weekStart, "week-start", "", "scoring week start (YYYY-MM-DD)")
	scoreCmd.Flags().StringVar(&weekEnd, "week-end", "", "scoring week end (YYYY-MM-DD)")
	scoreCmd.Flags().BoolVar(&acknowledgeReview, "acknowledge-review", false, "accept a REVIEW-grade cost reconciliation")
	scoreCmd.MarkFlagRequired("items")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	settings, err := loadSettings(cfg)
	if err != nil {
		return err
	}
	format, err := resolveFormat(cfg)
	if err != nil {
		return err
	}

	items, err := ingest.ReadItemsFile(itemsFile)
	if err != nil {
		return err
	}
	logging.Component("cli").Info("loaded items",
		zap.Int("count", len(items)),
		zap.String("file", itemsFile))

	engine, err := scoring.NewEngine(settings)
	if err != nil {
		return err
	}

	var result *types.ScoringResult
	if externalFile != "" {
		external, err := ingest.ReadExternalCostsFile(externalFile)
		if err != nil {
			return err
		}
		week, err := parseWeek()
		if err != nil {
			return err
		}

		result, err = engine.ScoreReconciled(items, external, week)
		if err != nil {
			return err
		}

		if result.Validation.Blocked() {
			if !acknowledgeReview && !cfg.Reconcile.AutoAcknowledge {
				output.RenderValidation(os.Stderr, result.Validation)
				return fmt.Errorf("cost reconciliation requires review; rerun with --acknowledge-review to proceed")
			}
			result.Validation.Acknowledge()
		}
	} else {
		result, err = engine.Score(items)
		if err != nil {
			return err
		}
	}

	return output.Render(os.Stdout, format, result, output.Options{
		ShowExplanations: cfg.Output.ShowExplanations,
		ShowWatchList:    cfg.Output.ShowWatchList,
	})
}

func loadSettings(cfg *config.Config) (types.Settings, error) {
	if settingsFile == "" {
		return cfg.Scoring, nil
	}
	return config.LoadSettings(settingsFile)
}

func resolveFormat(cfg *config.Config) (output.Format, error) {
	raw := outputFormat
	if raw == "" {
		raw = cfg.Output.DefaultFormat
	}
	return output.ParseFormat(raw)
}

func parseWeek() (types.DateRange, error) {
	var week types.DateRange
	var err error
	if weekStart != "" {
		week.Start, err = time.Parse("2006-01-02", weekStart)
		if err != nil {
			return week, fmt.Errorf("bad --week-start: %w", err)
		}
	}
	if weekEnd != "" {
		week.End, err = time.Parse("2006-01-02", weekEnd)
		if err != nil {
			return week, fmt.Errorf("bad --week-end: %w", err)
		}
	}
	return week, nil
}
