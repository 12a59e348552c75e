// Package tariff implements the three tariff computation schemes: flat
// rate, time-of-use and tiered consumption. Every function is a pure
// transformation from a usage series and a tariff configuration to a
// bill breakdown; inputs are never mutated.
package tariff

import "powertariff/core/types"

// Band is one entry of a time-of-use rate table: either a named
// time-of-day interval with a rate, or the default catch-all band.
// Bands are evaluated in declaration order and the first match wins,
// so overlaps resolve by position, not specificity.
type Band struct {
	// Name labels the band in the bill breakdown
	Name string `json:"name"`

	// Rate is the per-kWh price inside the band
	Rate float64 `json:"rate"`

	// Start and End bound the band's time-of-day interval, inclusive
	// on both ends. A band with Start > End wraps midnight. Ignored
	// for the default band.
	Start types.ClockTime `json:"start"`
	End   types.ClockTime `json:"end"`

	// Default marks the catch-all band for unmatched readings
	Default bool `json:"default,omitempty"`
}

// RangeBand builds a band covering a time-of-day interval
func RangeBand(name string, start, end types.ClockTime, rate float64) Band {
	return Band{Name: name, Start: start, End: end, Rate: rate}
}

// DefaultBand builds the catch-all band
func DefaultBand(name string, rate float64) Band {
	return Band{Name: name, Rate: rate, Default: true}
}

// Matches reports whether a time of day falls inside a range band.
// Always false for the default band; the default is applied by the
// classifier only after every range band has declined.
func (b Band) Matches(c types.ClockTime) bool {
	if b.Default {
		return false
	}
	if b.Start <= b.End {
		return c >= b.Start && c <= b.End
	}
	// Wrap-around band, e.g. 22:00-07:00.
	return c >= b.Start || c <= b.End
}

// classify picks the billing band for a time of day: first matching
// range band in declaration order, otherwise the default band. When
// several bands are marked default the last one declared wins. The
// boolean is false when nothing matched and no default exists.
func classify(bands []Band, c types.ClockTime) (Band, bool) {
	var fallback Band
	haveFallback := false
	for _, b := range bands {
		if b.Default {
			fallback = b
			haveFallback = true
			continue
		}
		if b.Matches(c) {
			return b, true
		}
	}
	return fallback, haveFallback
}
