package util

import (
	"fmt"
	"strings"
	"time"
)

// Clock layouts used across the timeline.
const (
	ClockLayout      = "15:04:05"
	ClockMilliLayout = "15:04:05.000"
	isoLayout        = "2006-01-02T15:04:05"
)

// clockParseLayout is the bare time of day accepted by ParseISO.
const clockParseLayout = "15:04:05.999999999"

// isoParseLayouts are tried in order by ParseISO.
var isoParseLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	isoLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	clockParseLayout,
}

// AnchorClock places the time of day of t on 1900-01-01 UTC, the date log
// clock times are reported on.
func AnchorClock(t time.Time) time.Time {
	h, m, s := t.Clock()
	return time.Date(1900, time.January, 1, h, m, s, t.Nanosecond(), time.UTC)
}

// FormatClock formats the time of day, with milliseconds when withFraction is set.
func FormatClock(t time.Time, withFraction bool) string {
	if withFraction {
		return t.Format(ClockMilliLayout)
	}
	return t.Format(ClockLayout)
}

// FormatISO formats t as date and time without zone. A non-zero sub-second
// part is written as microseconds, or as nanoseconds when microseconds would
// lose precision, so ParseISO gives back the same instant.
func FormatISO(t time.Time) string {
	ns := t.Nanosecond()
	switch {
	case ns == 0:
		return t.Format(isoLayout)
	case ns%1000 == 0:
		return t.Format(isoLayout) + fmt.Sprintf(".%06d", ns/1000)
	default:
		return t.Format(isoLayout) + fmt.Sprintf(".%09d", ns)
	}
}

// ParseISO parses a timestamp produced by FormatISO or one of the common
// ISO-8601 variants. A bare clock time is accepted too.
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	var lastErr error
	for _, layout := range isoParseLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			if layout == clockParseLayout {
				t = AnchorClock(t)
			}
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", s, lastErr)
}
