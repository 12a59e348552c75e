// Package types - Bill result types
package types

import "strings"

// Scheme identifies a tariff scheme
type Scheme string

const (
	SchemeFlat   Scheme = "Flat"
	SchemeTOU    Scheme = "TOU"
	SchemeTiered Scheme = "Tiered"
)

// String returns the string representation
func (s Scheme) String() string {
	return string(s)
}

// ParseScheme recognizes a scheme name, case-insensitively. The
// boolean reports whether the name was recognized.
func ParseScheme(name string) (Scheme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "flat":
		return SchemeFlat, true
	case "tou", "time-of-use":
		return SchemeTOU, true
	case "tiered":
		return SchemeTiered, true
	default:
		return "", false
	}
}

// FixedFeeLabel is the breakdown label for the flat charge added
// regardless of usage, present in all three schemes.
const FixedFeeLabel = "Fixed Fee"

// BillResult is the common output shape produced by every tariff
// function. It is a fresh immutable value on each computation; the
// total always equals the sum of the breakdown entries.
type BillResult struct {
	// Scheme is the tariff scheme that produced this bill
	Scheme Scheme `json:"scheme"`

	// TotalKWh is the total billed energy
	TotalKWh float64 `json:"total_kwh"`

	// Breakdown maps a band/tier label (plus "Fixed Fee") to its cost
	Breakdown map[string]float64 `json:"breakdown"`

	// TotalBill is the sum of all breakdown entries
	TotalBill float64 `json:"total_bill"`
}

// BreakdownTotal sums the breakdown entries. It must agree with
// TotalBill up to floating accumulation order.
func (b BillResult) BreakdownTotal() float64 {
	var total float64
	for _, amount := range b.Breakdown {
		total += amount
	}
	return total
}
