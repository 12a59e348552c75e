package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"powertariff/core/output"
	"powertariff/core/types"

	"powertariff/internal/errors"
	"powertariff/internal/logging"
)

var billScheme string

// billCmd computes one bill under a single tariff scheme
var billCmd = &cobra.Command{
	Use:   "bill",
	Short: "Compute a bill under one tariff scheme",
	Long: `Compute the bill for a usage dataset under a single tariff scheme
from the selected plan.

Examples:
  powertariff bill --data usage.csv --plans plans.hcl --scheme flat
  powertariff bill --demo --plans plans.hcl --plan residential --scheme tou
  powertariff bill --data usage.csv --plans plans.hcl --scheme tiered --from 2025-01-01 --to 2025-01-31`,
	RunE: runBill,
}

func init() {
	addDataFlags(billCmd)
	addPlanFlags(billCmd)
	billCmd.Flags().StringVarP(&billScheme, "scheme", "s", "", "tariff scheme (flat, tou, tiered)")
	billCmd.MarkFlagRequired("scheme")
}

func runBill(cmd *cobra.Command, args []string) error {
	scheme, ok := types.ParseScheme(billScheme)
	if !ok {
		return errors.Inputf("unknown scheme: %q", billScheme)
	}

	s, dropped, window, err := loadSeries()
	if err != nil {
		return err
	}

	p, err := loadPlan()
	if err != nil {
		return err
	}

	logging.Debug("computing bill",
		zap.String("plan", p.Name),
		zap.String("scheme", string(scheme)),
		zap.Int("records", len(s)))

	bill, err := p.Scheme(scheme, s)
	if err != nil {
		return err
	}

	return renderReport(&output.Report{
		Bills:       []types.BillResult{bill},
		Window:      window,
		Records:     len(s),
		DroppedRows: dropped,
		Metadata:    reportMetadata(),
	})
}
