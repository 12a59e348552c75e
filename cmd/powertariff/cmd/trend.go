package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"powertariff/core/output"
	"powertariff/core/series"

	"powertariff/internal/config"
	"powertariff/internal/errors"
	"powertariff/internal/logging"
)

var trendInterval string

// trendCmd renders usage aggregated over time
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show usage aggregated by hour or day",
	Long: `Aggregate the usage dataset into hourly or daily buckets and print
the trend. With --interval auto the resolution follows the span of the
data: hourly up to two days, daily beyond.

Examples:
  powertariff trend --demo
  powertariff trend --data usage.csv --interval daily --format json`,
	RunE: runTrend,
}

func init() {
	addDataFlags(trendCmd)
	trendCmd.Flags().StringVarP(&trendInterval, "interval", "i", "auto", "bucket interval (auto, hourly, daily)")
}

func runTrend(cmd *cobra.Command, args []string) error {
	iv := series.Interval(trendInterval)
	switch iv {
	case series.IntervalAuto, series.IntervalHourly, series.IntervalDaily:
	default:
		return errors.Inputf("unknown interval: %q", trendInterval)
	}

	s, dropped, window, err := loadSeries()
	if err != nil {
		return err
	}

	buckets := series.Aggregate(s, iv)

	logging.Debug("aggregated usage",
		zap.String("interval", string(iv.Resolve(s))),
		zap.Int("buckets", len(buckets)))

	format := outputFormat
	if format == "" {
		format = config.Get().Output.DefaultFormat
	}
	switch output.Format(format) {
	case output.FormatJSON:
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(buckets)
	case output.FormatCLI, output.FormatMarkdown, "":
		return renderTrend(buckets, iv.Resolve(s), window, dropped)
	default:
		return errors.Inputf("unknown output format: %q", format)
	}
}

func renderTrend(buckets []series.Bucket, iv series.Interval, window string, dropped int) error {
	if window != "" {
		fmt.Printf("Window: %s\n", window)
	}
	if dropped > 0 {
		fmt.Printf("Note: %d malformed rows dropped during ingestion\n", dropped)
	}
	if len(buckets) == 0 {
		fmt.Println("No usage data in range.")
		return nil
	}

	layout := "2006-01-02"
	if iv == series.IntervalHourly {
		layout = "2006-01-02 15:00"
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PERIOD\tKWH\tREADINGS")
	var total float64
	for _, b := range buckets {
		fmt.Fprintf(w, "%s\t%.3f\t%d\n", b.Start.Format(layout), b.KWh, b.Count)
		total += b.KWh
	}
	fmt.Fprintf(w, "TOTAL\t%.3f\t\n", total)
	return w.Flush()
}
