package timemath

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock splits an "HH:MM" string into hour and minute. It returns
// ok=false on malformed input (missing colon, non-numeric parts) so that
// callers can exclude the entry instead of failing.
func ParseClock(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return hour, minute, true
}

// ParseTimeOfDay resolves an "HH:MM" string against the calendar date of
// ref. The second return is false when s is unparseable.
func ParseTimeOfDay(s string, ref time.Time) (time.Time, bool) {
	h, m, ok := ParseClock(s)
	if !ok {
		return time.Time{}, false
	}
	return WithTime(ref, h, m), true
}

// WithTime returns a new instant on ref's calendar date at the given
// hour and minute. ref is never mutated.
func WithTime(ref time.Time, hour, minute int) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), hour, minute, 0, 0, ref.Location())
}

// AddDays returns t shifted by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// MinutesOfDay converts "HH:MM" to minutes past midnight, falling back
// to 0 for unparseable input so such entries sort first.
func MinutesOfDay(s string) int {
	h, m, ok := ParseClock(s)
	if !ok {
		return 0
	}
	return h*60 + m
}

// FormatTime12h converts a 24-hour "HH:MM" string to "h:mm AM/PM".
// Unparseable input is returned unchanged.
func FormatTime12h(s string) string {
	h, m, ok := ParseClock(s)
	if !ok {
		return s
	}
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	h = h % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, m, ampm)
}

// DurationString renders the span between start and end as a human
// duration: "X hours Y minutes", "X hours", or "Y minutes".
func DurationString(start, end time.Time) string {
	total := int(end.Sub(start).Minutes())
	if total < 0 {
		total = 0
	}
	hours := total / 60
	minutes := total % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%d hours %d minutes", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%d hours", hours)
	default:
		return fmt.Sprintf("%d minutes", minutes)
	}
}

// RemainingString renders the time left until end as "H:MM:SS", or
// "MM:SS" when less than an hour remains. It returns "" once end has
// passed.
func RemainingString(now, end time.Time) string {
	d := end.Sub(now)
	if d <= 0 {
		return ""
	}
	total := int(d.Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// DateString renders t's calendar date as "YYYY-MM-DD", the prefix used
// in routine dedup keys.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// MinuteString renders t's time of day as zero-padded "HH:MM" for
// exact-start comparisons against entry start times.
func MinuteString(t time.Time) string {
	return t.Format("15:04")
}

// DateMinuteString identifies one exact minute of one calendar day,
// used by the spoken-alert marker.
func DateMinuteString(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
