package series

import (
	"math"
	"testing"

	"powertariff/core/types"
)

func TestAggregateHourly(t *testing.T) {
	s := types.UsageSeries{
		{Timestamp: ts("2025-01-01 00:10:00"), KWh: 0.5},
		{Timestamp: ts("2025-01-01 00:40:00"), KWh: 0.6},
		{Timestamp: ts("2025-01-01 01:15:00"), KWh: 0.7},
	}

	buckets := Aggregate(s, IntervalHourly)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if !buckets[0].Start.Equal(ts("2025-01-01 00:00:00")) {
		t.Errorf("first bucket start = %v, want midnight hour", buckets[0].Start)
	}
	if math.Abs(buckets[0].KWh-1.1) > 1e-9 {
		t.Errorf("first bucket kWh = %v, want 1.1", buckets[0].KWh)
	}
	if buckets[0].Count != 2 || buckets[1].Count != 1 {
		t.Errorf("bucket counts = %d,%d, want 2,1", buckets[0].Count, buckets[1].Count)
	}
}

func TestAggregateDaily(t *testing.T) {
	s := types.UsageSeries{
		{Timestamp: ts("2025-01-01 06:00:00"), KWh: 1.0},
		{Timestamp: ts("2025-01-01 18:00:00"), KWh: 2.0},
		{Timestamp: ts("2025-01-03 09:00:00"), KWh: 3.0},
	}

	buckets := Aggregate(s, IntervalDaily)
	if len(buckets) != 2 {
		t.Fatalf("got %d buckets, want 2", len(buckets))
	}
	if math.Abs(buckets[0].KWh-3.0) > 1e-9 {
		t.Errorf("day one kWh = %v, want 3.0", buckets[0].KWh)
	}
	if !buckets[1].Start.Equal(ts("2025-01-03 00:00:00")) {
		t.Errorf("second bucket start = %v, want 2025-01-03", buckets[1].Start)
	}
}

func TestAggregateAutoInterval(t *testing.T) {
	short := types.UsageSeries{
		{Timestamp: ts("2025-01-01 00:00:00"), KWh: 1},
		{Timestamp: ts("2025-01-02 12:00:00"), KWh: 1},
	}
	long := types.UsageSeries{
		{Timestamp: ts("2025-01-01 00:00:00"), KWh: 1},
		{Timestamp: ts("2025-01-09 00:00:00"), KWh: 1},
	}

	if got := IntervalAuto.Resolve(short); got != IntervalHourly {
		t.Errorf("short span resolved to %v, want hourly", got)
	}
	if got := IntervalAuto.Resolve(long); got != IntervalDaily {
		t.Errorf("long span resolved to %v, want daily", got)
	}
}

func TestAggregateEmpty(t *testing.T) {
	if buckets := Aggregate(nil, IntervalAuto); len(buckets) != 0 {
		t.Errorf("got %d buckets for empty series, want 0", len(buckets))
	}
}
