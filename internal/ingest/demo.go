package ingest

import (
	"time"

	"powertariff/core/types"
)

// Demo returns the built-in demo dataset: three days of readings
// spread across off-peak, daytime and evening hours, so every TOU band
// and more than one tier gets exercised out of the box.
func Demo() types.UsageSeries {
	day := func(d, h, m int) time.Time {
		return time.Date(2025, 1, d, h, m, 0, 0, time.UTC)
	}
	return types.UsageSeries{
		{Timestamp: day(1, 0, 30), KWh: 1.2},
		{Timestamp: day(1, 7, 0), KWh: 2.5},
		{Timestamp: day(1, 19, 15), KWh: 4.1},
		{Timestamp: day(2, 1, 0), KWh: 0.9},
		{Timestamp: day(2, 12, 30), KWh: 3.3},
		{Timestamp: day(2, 20, 45), KWh: 5.0},
		{Timestamp: day(3, 6, 15), KWh: 1.8},
		{Timestamp: day(3, 14, 0), KWh: 2.2},
		{Timestamp: day(3, 22, 30), KWh: 3.7},
	}
}
