package tariff

import "powertariff/core/types"

// Comparison holds the bills of competing schemes over the same usage
// series, with the cheapest called out.
type Comparison struct {
	// Results are the computed bills, in computation order
	Results []types.BillResult `json:"results"`

	// Cheapest is the scheme with the lowest total. Ties go to the
	// earliest computed scheme.
	Cheapest types.Scheme `json:"cheapest"`

	// CheapestTotal is the winning total bill
	CheapestTotal float64 `json:"cheapest_total"`
}

// Compare ranks the given bills by total. At least one result is
// required for the verdict to be meaningful; with none, the zero
// Comparison is returned.
func Compare(results ...types.BillResult) Comparison {
	c := Comparison{Results: results}
	for i, r := range results {
		if i == 0 || r.TotalBill < c.CheapestTotal {
			c.Cheapest = r.Scheme
			c.CheapestTotal = r.TotalBill
		}
	}
	return c
}
