package schedule

import (
	"time"

	"github.com/dainik-app/dainik/pkg/models"
	"github.com/dainik-app/dainik/pkg/timemath"
)

// Window resolves an entry's start/end times against ref's calendar
// date. An end time numerically before the start means the entry spans
// midnight, so the end is pushed to the next day. For such overnight
// entries, ref instants in the early hours still belong to the window
// that began the previous evening, so the previous day's resolution is
// returned when it contains ref. ok is false when either time is
// unparseable.
func Window(entry models.ScheduleEntry, ref time.Time) (start, end time.Time, ok bool) {
	start, ok = timemath.ParseTimeOfDay(entry.StartTime, ref)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	end, ok = timemath.ParseTimeOfDay(entry.EndTime, ref)
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	wrapped := end.Before(start)
	if wrapped {
		end = timemath.AddDays(end, 1)
	}
	if wrapped && ref.Before(start) {
		prevStart := timemath.AddDays(start, -1)
		prevEnd := timemath.AddDays(end, -1)
		if !ref.Before(prevStart) && ref.Before(prevEnd) {
			return prevStart, prevEnd, true
		}
	}
	return start, end, true
}

// IsActive reports whether now falls within the entry's resolved window
// (start inclusive, end exclusive). Entries with malformed times are
// never active.
func IsActive(entry models.ScheduleEntry, now time.Time) bool {
	start, end, ok := Window(entry, now)
	if !ok {
		return false
	}
	return !now.Before(start) && now.Before(end)
}

// ActiveEntry returns the first active entry in a sequence already
// sorted by start time. When windows overlap the earliest start wins.
// The second return is false when nothing is active.
func ActiveEntry(sorted []models.ScheduleEntry, now time.Time) (models.ScheduleEntry, bool) {
	for _, entry := range sorted {
		if IsActive(entry, now) {
			return entry, true
		}
	}
	return models.ScheduleEntry{}, false
}
