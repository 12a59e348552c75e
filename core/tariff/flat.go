package tariff

import "powertariff/core/types"

// EnergyLabel is the breakdown label for flat-rate energy cost
const EnergyLabel = "Energy"

// Flat computes a flat-rate bill: total usage times the rate, plus the
// fixed fee. A zero-row series yields a fixed-fee-only bill.
func Flat(s types.UsageSeries, rate, fixedFee float64) types.BillResult {
	if len(s) == 0 {
		return fixedFeeOnly(types.SchemeFlat, fixedFee)
	}

	totalKWh := s.TotalKWh()
	energy := totalKWh * rate

	return types.BillResult{
		Scheme:   types.SchemeFlat,
		TotalKWh: totalKWh,
		Breakdown: map[string]float64{
			EnergyLabel:         energy,
			types.FixedFeeLabel: fixedFee,
		},
		TotalBill: energy + fixedFee,
	}
}

// fixedFeeOnly is the common empty-series bill: the fixed fee is the
// only breakdown entry and the whole total.
func fixedFeeOnly(scheme types.Scheme, fixedFee float64) types.BillResult {
	return types.BillResult{
		Scheme:    scheme,
		Breakdown: map[string]float64{types.FixedFeeLabel: fixedFee},
		TotalBill: fixedFee,
	}
}
