// Package cmd - shared data loading for the billing commands
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"powertariff/core/output"
	"powertariff/core/plan"
	"powertariff/core/series"
	"powertariff/core/types"

	"powertariff/internal/config"
	"powertariff/internal/errors"
	"powertariff/internal/ingest"
)

var (
	dataFile     string
	useDemo      bool
	plansFile    string
	planName     string
	fromBound    string
	toBound      string
	outputFormat string
)

// addDataFlags registers the flags shared by every command that reads
// a usage series.
func addDataFlags(c *cobra.Command) {
	c.Flags().StringVar(&dataFile, "data", "", "usage CSV file (timestamp, kWh)")
	c.Flags().BoolVar(&useDemo, "demo", false, "use the built-in demo dataset")
	c.Flags().StringVar(&fromBound, "from", "", "window start (date/time or time of day)")
	c.Flags().StringVar(&toBound, "to", "", "window end (date/time or time of day)")
	c.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json, markdown)")
}

// addPlanFlags registers the flags for commands that need a tariff plan
func addPlanFlags(c *cobra.Command) {
	c.Flags().StringVar(&plansFile, "plans", "", "tariff plan HCL file")
	c.Flags().StringVarP(&planName, "plan", "p", "", "plan name (default: first plan in the file)")
}

// loadSeries reads the usage series from --data or --demo and applies
// the optional time window. It returns the series, the dropped-row
// count and a description of the window for the report.
func loadSeries() (types.UsageSeries, int, string, error) {
	var (
		s       types.UsageSeries
		dropped int
		err     error
	)

	switch {
	case useDemo:
		s = ingest.Demo()
	case dataFile != "":
		s, dropped, err = ingest.ReadCSV(dataFile)
		if err != nil {
			return nil, 0, "", err
		}
	default:
		return nil, 0, "", errors.Input("no usage data: pass --data FILE or --demo")
	}

	window := ""
	if fromBound != "" || toBound != "" {
		if fromBound == "" || toBound == "" {
			return nil, 0, "", errors.Input("--from and --to must be given together")
		}
		s, err = series.Filter(s, fromBound, toBound)
		if err != nil {
			return nil, 0, "", err
		}
		window = fromBound + " to " + toBound
	}

	return s, dropped, window, nil
}

// loadPlan resolves the plan file and name against the configuration
// defaults and returns the selected plan.
func loadPlan() (plan.Plan, error) {
	cfg := config.Get()

	path := plansFile
	if path == "" {
		path = cfg.Plans.Path
	}
	name := planName
	if name == "" {
		name = cfg.Plans.Default
	}

	plans, err := plan.Load(path)
	if err != nil {
		return plan.Plan{}, err
	}
	return plan.Find(plans, name)
}

// renderReport writes the report to stdout in the selected format
func renderReport(report *output.Report) error {
	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	f, err := output.New(output.Format(format))
	if err != nil {
		return err
	}
	return f.Render(os.Stdout, report)
}

func reportMetadata() output.Metadata {
	return output.Metadata{
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   Version,
	}
}
