package tariff

import (
	"math"
	"testing"
	"time"

	"powertariff/core/types"
)

func ts(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		panic(err)
	}
	return t
}

func clock(value string) types.ClockTime {
	c, ok := types.ParseClock(value)
	if !ok {
		panic("bad clock literal: " + value)
	}
	return c
}

func sampleSeries() types.UsageSeries {
	return types.UsageSeries{
		{Timestamp: ts("2025-01-01 00:00:00"), KWh: 1.0},
		{Timestamp: ts("2025-01-01 06:00:00"), KWh: 2.0},
		{Timestamp: ts("2025-01-01 18:30:00"), KWh: 3.0},
		{Timestamp: ts("2025-01-02 20:00:00"), KWh: 4.0},
	}
}

func approx(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= 1e-9*scale
}

// checkBillInvariant verifies the hard invariant shared by all three
// schemes: the total equals the sum of the breakdown entries.
func checkBillInvariant(t *testing.T, bill types.BillResult) {
	t.Helper()
	if sum := bill.BreakdownTotal(); !approx(bill.TotalBill, sum) {
		t.Errorf("total %v does not equal breakdown sum %v", bill.TotalBill, sum)
	}
}
