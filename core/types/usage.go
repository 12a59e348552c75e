// Package types - Usage series types
package types

import "time"

// UsageRecord is a single timestamped meter reading
type UsageRecord struct {
	// Timestamp is when the reading was taken
	Timestamp time.Time `json:"timestamp"`

	// KWh is the energy consumed in the reading interval
	KWh float64 `json:"kwh"`
}

// UsageSeries is an ordered-by-arrival collection of usage records.
// Timestamps need not be sorted. The engine never mutates a series.
type UsageSeries []UsageRecord

// TotalKWh returns the total energy across the series
func (s UsageSeries) TotalKWh() float64 {
	var total float64
	for _, r := range s {
		total += r.KWh
	}
	return total
}

// Span returns the earliest and latest timestamps in the series.
// Zero times are returned for an empty series.
func (s UsageSeries) Span() (time.Time, time.Time) {
	if len(s) == 0 {
		return time.Time{}, time.Time{}
	}
	first, last := s[0].Timestamp, s[0].Timestamp
	for _, r := range s[1:] {
		if r.Timestamp.Before(first) {
			first = r.Timestamp
		}
		if r.Timestamp.After(last) {
			last = r.Timestamp
		}
	}
	return first, last
}
