package tariff

import (
	"fmt"

	"powertariff/core/types"
)

// TierLabel returns the breakdown label for tier number n (1-based)
func TierLabel(n int) string {
	return fmt.Sprintf("Tier %d", n)
}

// Tiered computes a progressive-rate bill. limits[i] is the cumulative
// upper bound of tier i; a nil limit is unbounded and absorbs all
// remaining usage, terminating the walk. rates must have len(limits)
// or len(limits)+1 entries; the extra trailing rate, when present,
// bills usage beyond the last explicit limit as one more tier.
//
// Mismatched limit/rate lengths beyond that rule are not validated;
// the walk simply stops when it runs out of rates.
func Tiered(s types.UsageSeries, limits []*float64, rates []float64, fixedFee float64) types.BillResult {
	if len(s) == 0 {
		return fixedFeeOnly(types.SchemeTiered, fixedFee)
	}

	totalKWh := s.TotalKWh()
	breakdown := map[string]float64{types.FixedFeeLabel: fixedFee}
	total := fixedFee

	remaining := totalKWh
	previousLimit := 0.0

	for i, limit := range limits {
		if remaining <= 0 || i >= len(rates) {
			break
		}

		var width float64
		if limit == nil {
			width = remaining
		} else {
			width = min(remaining, *limit-previousLimit)
			if width < 0 {
				width = 0
			}
			previousLimit = *limit
		}

		if width > 0 {
			cost := width * rates[i]
			breakdown[TierLabel(i+1)] = cost
			total += cost
			remaining -= width
		}

		if limit == nil {
			// Unbounded tier swallowed everything; no extra rate applies.
			break
		}
	}

	// Spill past the last explicit limit into the overflow rate.
	if remaining > 0 && len(rates) == len(limits)+1 {
		cost := remaining * rates[len(limits)]
		breakdown[TierLabel(len(limits)+1)] = cost
		total += cost
	}

	return types.BillResult{
		Scheme:    types.SchemeTiered,
		TotalKWh:  totalKWh,
		Breakdown: breakdown,
		TotalBill: total,
	}
}
