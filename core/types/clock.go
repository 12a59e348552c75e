// Package types - Time-of-day type
package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ClockTime is a time of day with second resolution, independent of any
// calendar date. It is used for TOU band boundaries and daily filter
// windows, where only the clock matters.
type ClockTime int

// NewClockTime builds a ClockTime from hour, minute and second
func NewClockTime(hour, minute, second int) ClockTime {
	return ClockTime(hour*3600 + minute*60 + second)
}

// ClockOf extracts the time of day from a timestamp
func ClockOf(t time.Time) ClockTime {
	h, m, s := t.Clock()
	return NewClockTime(h, m, s)
}

// ParseClock parses a time-of-day string. Accepted forms are "HH:MM",
// "HH:MM:SS" and a bare hour ("7", "22"). The boolean reports whether
// the input was recognized.
func ParseClock(s string) (ClockTime, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, false
	}

	var hms [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, false
		}
		hms[i] = n
	}

	h, m, sec := hms[0], hms[1], hms[2]
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, false
	}
	return NewClockTime(h, m, sec), true
}

// Hour returns the hour component
func (c ClockTime) Hour() int {
	return int(c) / 3600
}

// Minute returns the minute component
func (c ClockTime) Minute() int {
	return (int(c) % 3600) / 60
}

// Second returns the second component
func (c ClockTime) Second() int {
	return int(c) % 60
}

// String returns "HH:MM", or "HH:MM:SS" when seconds are nonzero
func (c ClockTime) String() string {
	if c.Second() != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour(), c.Minute(), c.Second())
	}
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}
