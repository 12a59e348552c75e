package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"powertariff/core/tariff"
	"powertariff/core/types"
)

func sampleReport() *Report {
	bill := types.BillResult{
		Scheme:   types.SchemeTOU,
		TotalKWh: 10.0,
		Breakdown: map[string]float64{
			"Peak":              3.5,
			"Off-Peak":          0.3,
			types.FixedFeeLabel: 2.0,
		},
		TotalBill: 5.8,
	}
	c := tariff.Compare(bill)
	return &Report{
		Bills:      []types.BillResult{bill},
		Comparison: &c,
		Records:    4,
		Metadata:   Metadata{Timestamp: "2025-01-03T00:00:00Z", Version: "0.1.0"},
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   Format
		ok     bool
	}{
		{name: "cli", format: FormatCLI, want: FormatCLI, ok: true},
		{name: "empty defaults to cli", format: "", want: FormatCLI, ok: true},
		{name: "json", format: FormatJSON, want: FormatJSON, ok: true},
		{name: "markdown", format: FormatMarkdown, want: FormatMarkdown, ok: true},
		{name: "unknown", format: "yaml", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.format)
			if tt.ok != (err == nil) {
				t.Fatalf("New(%q) error = %v, ok = %v", tt.format, err, tt.ok)
			}
			if tt.ok && f.Format() != tt.want {
				t.Errorf("Format() = %q, want %q", f.Format(), tt.want)
			}
		})
	}
}

func TestCLIRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CLIFormatter{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"TOU tariff", "Peak", "Off-Peak", "Fixed Fee", "3.50", "0.30", "2.00", "5.80", "Cheapest scheme: TOU"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// The fixed fee renders after the band labels.
	if strings.Index(out, "Fixed Fee") < strings.Index(out, "Peak") {
		t.Errorf("fixed fee should render last:\n%s", out)
	}
}

func TestJSONRenderRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := (&JSONFormatter{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded Report
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded.Bills) != 1 || decoded.Bills[0].Scheme != types.SchemeTOU {
		t.Errorf("decoded bills = %+v", decoded.Bills)
	}
	if decoded.Bills[0].Breakdown["Peak"] != 3.5 {
		t.Errorf("Peak = %v, want 3.5", decoded.Bills[0].Breakdown["Peak"])
	}
}

func TestMarkdownRender(t *testing.T) {
	var buf bytes.Buffer
	if err := (&MarkdownFormatter{}).Render(&buf, sampleReport()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"# Bill Breakdown", "## TOU tariff", "| Peak | 3.50 |", "| **Total** | **5.80** |"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderedAmountsSumToTotal(t *testing.T) {
	// At two decimal places the printed components must add up to the
	// printed total for clean inputs.
	report := sampleReport()
	var sum float64
	for _, v := range report.Bills[0].Breakdown {
		sum += v
	}
	if money(sum) != money(report.Bills[0].TotalBill) {
		t.Errorf("rendered sum %s != rendered total %s", money(sum), money(report.Bills[0].TotalBill))
	}
}

func TestSortedLabels(t *testing.T) {
	bill := types.BillResult{
		Breakdown: map[string]float64{
			types.FixedFeeLabel: 1,
			"Tier 2":            2,
			"Tier 1":            3,
		},
	}
	got := sortedLabels(bill)
	want := []string{"Tier 1", "Tier 2", types.FixedFeeLabel}
	if len(got) != len(want) {
		t.Fatalf("got %d labels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, got[i], want[i])
		}
	}
}
