// Package series provides usage-series selection and aggregation.
package series

import (
	"strings"
	"time"

	"powertariff/core/coerce"
	"powertariff/core/types"

	"powertariff/internal/errors"
)

// Window is an inclusive time window over a usage series. It is either
// absolute (two full date-times) or daily (two times of day recurring
// every calendar day, wrapping midnight when start > end).
type Window struct {
	absolute bool

	start time.Time
	end   time.Time

	dayStart types.ClockTime
	dayEnd   types.ClockTime
}

// ParseWindow interprets a pair of bound strings. Both bounds must
// parse as full date-times, or both as bare times of day; anything else
// is a typed input error so the caller can surface it rather than
// silently filtering nothing.
func ParseWindow(start, end string) (Window, error) {
	if s, okS := coerce.Date(start); okS {
		e, okE := coerce.Date(end)
		if !okE {
			return Window{}, errors.Inputf("end bound not a recognizable date/time: %q", end)
		}
		// A date-only end bound covers its whole day.
		if !strings.Contains(end, ":") {
			e = e.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		return Window{absolute: true, start: s, end: e}, nil
	}

	if cs, okS := types.ParseClock(start); okS {
		ce, okE := types.ParseClock(end)
		if !okE {
			return Window{}, errors.Inputf("end bound not a recognizable time of day: %q", end)
		}
		return Window{dayStart: cs, dayEnd: ce}, nil
	}

	return Window{}, errors.Inputf("start bound not a recognizable date/time: %q", start)
}

// Contains reports whether the timestamp falls inside the window,
// inclusive on both ends.
func (w Window) Contains(t time.Time) bool {
	if w.absolute {
		return !t.Before(w.start) && !t.After(w.end)
	}
	c := types.ClockOf(t)
	if w.dayStart <= w.dayEnd {
		return c >= w.dayStart && c <= w.dayEnd
	}
	// Daily window spanning midnight, e.g. 22:00-02:00.
	return c >= w.dayStart || c <= w.dayEnd
}

// Daily reports whether the window recurs every day rather than
// spanning a fixed date range.
func (w Window) Daily() bool {
	return !w.absolute
}

// FilterWindow returns the subset of the series inside the window,
// preserving input order.
func FilterWindow(s types.UsageSeries, w Window) types.UsageSeries {
	out := make(types.UsageSeries, 0, len(s))
	for _, r := range s {
		if w.Contains(r.Timestamp) {
			out = append(out, r)
		}
	}
	return out
}

// Filter selects the records whose timestamps fall within the window
// described by the start and end bound strings. Bounds may be full
// date-times or bare times of day (a daily recurring window, wrapping
// midnight when start > end). Unrecognizable bounds yield an input
// error. An empty series filters to an empty series.
func Filter(s types.UsageSeries, start, end string) (types.UsageSeries, error) {
	w, err := ParseWindow(start, end)
	if err != nil {
		return nil, err
	}
	return FilterWindow(s, w), nil
}
