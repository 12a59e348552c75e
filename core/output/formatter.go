// Package output renders bill results for human and machine
// consumption.
package output

import (
	"io"
	"sort"

	"github.com/shopspring/decimal"

	"powertariff/core/tariff"
	"powertariff/core/types"

	"powertariff/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report contains everything a formatter needs to render one billing
// run: the computed bills, the optional comparison verdict, and the
// run context.
type Report struct {
	// Bills are the computed bill results
	Bills []types.BillResult `json:"bills"`

	// Comparison is set when several schemes were ranked
	Comparison *tariff.Comparison `json:"comparison,omitempty"`

	// Window describes the applied time-range filter, if any
	Window string `json:"window,omitempty"`

	// Records is the number of billed readings
	Records int `json:"records"`

	// DroppedRows counts ingestion rows that failed to parse
	DroppedRows int `json:"dropped_rows,omitempty"`

	// Metadata contains execution context
	Metadata Metadata `json:"metadata"`
}

// Metadata contains execution context
type Metadata struct {
	// Timestamp is when the bills were computed
	Timestamp string `json:"timestamp"`

	// Version is the tool version
	Version string `json:"version"`
}

// New returns the formatter for a format name
func New(format Format) (Formatter, error) {
	switch format {
	case FormatCLI, "":
		return &CLIFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, errors.Inputf("unknown output format: %q", format)
	}
}

// money renders an amount rounded to cents. Engine math stays float;
// only presentation goes through decimal so printed breakdowns add up.
func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// sortedLabels orders breakdown labels for stable rendering: bands and
// tiers alphabetically, the fixed fee always last.
func sortedLabels(b types.BillResult) []string {
	labels := make([]string, 0, len(b.Breakdown))
	hasFee := false
	for label := range b.Breakdown {
		if label == types.FixedFeeLabel {
			hasFee = true
			continue
		}
		labels = append(labels, label)
	}
	sort.Strings(labels)
	if hasFee {
		labels = append(labels, types.FixedFeeLabel)
	}
	return labels
}
