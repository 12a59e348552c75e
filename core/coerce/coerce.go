// Package coerce provides defensive parsing of user-supplied text.
// All helpers substitute a caller-specified default on failure instead
// of returning an error, so boundary code stays total.
package coerce

import (
	"strconv"
	"strings"
	"time"
)

// Float parses s as a floating point number, tolerating surrounding
// whitespace. The default is returned for empty or unparseable input.
func Float(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// Int parses s as an integer, tolerating surrounding whitespace.
// Fractional input ("12.3") is not truncated; it fails and yields the
// default, matching strict integer semantics at the config boundary.
func Int(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// OptionalFloat parses s as a float, returning nil for blank or
// unparseable input. Callers rely on nil as a "not specified" sentinel
// distinct from 0 (tier limits use it to mean unbounded).
func OptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalInt parses s as an integer, returning nil for blank or
// unparseable input.
func OptionalInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// dateLayouts are tried in order by Date. The list covers the formats
// usage exports and hand-typed range bounds actually arrive in.
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	time.RFC3339,
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// Date attempts to parse a free-form date/time string. The boolean
// reports success; empty or unrecognized input yields (zero, false) and
// never an error.
func Date(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
