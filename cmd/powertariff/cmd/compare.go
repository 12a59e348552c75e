package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"powertariff/core/output"
	"powertariff/core/tariff"

	"powertariff/internal/errors"
	"powertariff/internal/logging"
)

// compareCmd ranks every scheme the plan configures
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare all tariff schemes of a plan",
	Long: `Compute the bill under every scheme the selected plan configures and
report which one is cheapest for the given usage.

Examples:
  powertariff compare --data usage.csv --plans plans.hcl --plan residential
  powertariff compare --demo --plans plans.hcl --format markdown`,
	RunE: runCompare,
}

func init() {
	addDataFlags(compareCmd)
	addPlanFlags(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	s, dropped, window, err := loadSeries()
	if err != nil {
		return err
	}

	p, err := loadPlan()
	if err != nil {
		return err
	}

	bills := p.Bills(s)
	if len(bills) == 0 {
		return errors.Inputf("plan %q configures no tariff schemes", p.Name)
	}

	comparison := tariff.Compare(bills...)

	logging.Debug("compared schemes",
		zap.String("plan", p.Name),
		zap.Int("schemes", len(bills)),
		zap.String("cheapest", string(comparison.Cheapest)))

	return renderReport(&output.Report{
		Bills:       bills,
		Comparison:  &comparison,
		Window:      window,
		Records:     len(s),
		DroppedRows: dropped,
		Metadata:    reportMetadata(),
	})
}
