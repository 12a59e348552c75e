package output

import (
	"fmt"
	"io"
)

// MarkdownFormatter renders a markdown report
type MarkdownFormatter struct{}

// Format returns the format type
func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

// Render writes one markdown table per bill
func (f *MarkdownFormatter) Render(w io.Writer, report *Report) error {
	fmt.Fprintln(w, "# Bill Breakdown")
	if report.Window != "" {
		fmt.Fprintf(w, "\nWindow: `%s`\n", report.Window)
	}

	for _, bill := range report.Bills {
		fmt.Fprintf(w, "\n## %s tariff\n\n", bill.Scheme)
		fmt.Fprintf(w, "Total usage: %.3f kWh over %d readings\n\n", bill.TotalKWh, report.Records)
		fmt.Fprintln(w, "| Component | Cost |")
		fmt.Fprintln(w, "|-----------|------|")
		for _, label := range sortedLabels(bill) {
			fmt.Fprintf(w, "| %s | %s |\n", label, money(bill.Breakdown[label]))
		}
		fmt.Fprintf(w, "| **Total** | **%s** |\n", money(bill.TotalBill))
	}

	if c := report.Comparison; c != nil && len(c.Results) > 0 {
		fmt.Fprintf(w, "\nCheapest scheme: **%s** (%s)\n", c.Cheapest, money(c.CheapestTotal))
	}
	return nil
}
