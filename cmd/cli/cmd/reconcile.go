// Package cmd - reconcile command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/clayparrish-cyber/menu-autopilot-sub001/adapters/ingest"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/output"
	"github.com/clayparrish-cyber/menu-autopilot-sub001/core/reconcile"
)

// reconcileCmd represents the reconcile command
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Validate external cost data against a POS export",
	Long: `Reconcile an external cost report against weekly POS data without
running a scoring pass. Prints the coverage badge, staleness check and any
mismatch or sanity warnings.

Examples:
  menu-autopilot reconcile --items week12.csv --external costs.csv --week-start 2025-03-10`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVarP(&itemsFile, "items", "i", "", "weekly POS items CSV (required)")
	reconcileCmd.Flags().StringVarP(&externalFile, "external", "e", "", "external cost report CSV (required)")
	reconcileCmd.Flags().StringVar(&weekStart, "week-start", "", "scoring week start (YYYY-MM-DD)")
	reconcileCmd.Flags().StringVar(&weekEnd, "week-end", "", "scoring week end (YYYY-MM-DD)")
	reconcileCmd.MarkFlagRequired("items")
	reconcileCmd.MarkFlagRequired("external")
}

func runReconcile(cmd *cobra.Command, args []string) error {
	items, err := ingest.ReadItemsFile(itemsFile)
	if err != nil {
		return err
	}
	external, err := ingest.ReadExternalCostsFile(externalFile)
	if err != nil {
		return err
	}
	week, err := parseWeek()
	if err != nil {
		return err
	}

	result := reconcile.Validate(items, external, week)
	output.RenderValidation(os.Stdout, result.Report)

	if result.Report.Blocked() {
		os.Exit(2)
	}
	return nil
}
