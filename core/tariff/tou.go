package tariff

import "powertariff/core/types"

// TimeOfUse computes a time-of-use bill. Each reading is classified by
// its time of day into exactly one band (see classify) and accumulates
// kWh times the band rate under the band's label. Only bands that
// matched at least one reading appear in the breakdown.
//
// Readings with a zero timestamp are excluded from billing entirely,
// never defaulted into a band. A band set with no default is not
// rejected; unmatched readings are then left unbilled, which mirrors
// the best-effort contract for malformed configuration.
func TimeOfUse(s types.UsageSeries, bands []Band, fixedFee float64) types.BillResult {
	if len(s) == 0 {
		return fixedFeeOnly(types.SchemeTOU, fixedFee)
	}

	breakdown := map[string]float64{types.FixedFeeLabel: fixedFee}
	total := fixedFee
	var totalKWh float64

	for _, r := range s {
		if r.Timestamp.IsZero() {
			continue
		}
		totalKWh += r.KWh

		band, ok := classify(bands, types.ClockOf(r.Timestamp))
		if !ok {
			continue
		}
		cost := r.KWh * band.Rate
		breakdown[band.Name] += cost
		total += cost
	}

	return types.BillResult{
		Scheme:    types.SchemeTOU,
		TotalKWh:  totalKWh,
		Breakdown: breakdown,
		TotalBill: total,
	}
}
