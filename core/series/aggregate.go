// Package series - Usage trend aggregation
package series

import (
	"sort"
	"time"

	"powertariff/core/types"
)

// Interval selects the bucketing resolution for a usage trend
type Interval string

const (
	// IntervalAuto picks hourly for spans up to two days, daily beyond
	IntervalAuto Interval = "auto"

	// IntervalHourly buckets by clock hour
	IntervalHourly Interval = "hourly"

	// IntervalDaily buckets by calendar day
	IntervalDaily Interval = "daily"
)

// Bucket is one point of a usage trend
type Bucket struct {
	// Start is the beginning of the bucket interval
	Start time.Time `json:"start"`

	// KWh is the total usage inside the bucket
	KWh float64 `json:"kwh"`

	// Count is the number of readings inside the bucket
	Count int `json:"count"`
}

const autoHourlySpan = 48 * time.Hour

// Resolve returns the concrete interval for a series, collapsing
// IntervalAuto based on the series span.
func (iv Interval) Resolve(s types.UsageSeries) Interval {
	if iv != IntervalAuto {
		return iv
	}
	first, last := s.Span()
	if last.Sub(first) <= autoHourlySpan {
		return IntervalHourly
	}
	return IntervalDaily
}

// Aggregate sums usage into hourly or daily buckets, returned in
// chronological order. Only buckets that received at least one reading
// appear. An empty series yields no buckets.
func Aggregate(s types.UsageSeries, iv Interval) []Bucket {
	if len(s) == 0 {
		return nil
	}
	iv = iv.Resolve(s)

	byStart := make(map[time.Time]*Bucket)
	for _, r := range s {
		start := bucketStart(r.Timestamp, iv)
		b, ok := byStart[start]
		if !ok {
			b = &Bucket{Start: start}
			byStart[start] = b
		}
		b.KWh += r.KWh
		b.Count++
	}

	out := make([]Bucket, 0, len(byStart))
	for _, b := range byStart {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

func bucketStart(t time.Time, iv Interval) time.Time {
	y, m, d := t.Date()
	if iv == IntervalHourly {
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
	}
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
