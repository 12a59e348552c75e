package output

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// CLIFormatter renders a human-readable table
type CLIFormatter struct{}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes one table per bill plus the comparison verdict
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	if report.Window != "" {
		fmt.Fprintf(w, "Window: %s\n", report.Window)
	}
	if report.DroppedRows > 0 {
		fmt.Fprintf(w, "Dropped %d unparseable row(s) during ingestion\n", report.DroppedRows)
	}
	if report.Window != "" || report.DroppedRows > 0 {
		fmt.Fprintln(w)
	}

	for i, bill := range report.Bills {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "%s tariff (%d readings, %.3f kWh)\n", bill.Scheme, report.Records, bill.TotalKWh)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, label := range sortedLabels(bill) {
			fmt.Fprintf(tw, "  %s\t%s\n", label, money(bill.Breakdown[label]))
		}
		fmt.Fprintf(tw, "  Total\t%s\n", money(bill.TotalBill))
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	if c := report.Comparison; c != nil && len(c.Results) > 0 {
		fmt.Fprintf(w, "\nCheapest scheme: %s (%s)\n", c.Cheapest, money(c.CheapestTotal))
	}
	return nil
}
