package schedule

import (
	"fmt"
	"sort"

	"github.com/dainik-app/dainik/pkg/models"
	"github.com/dainik-app/dainik/pkg/timemath"
)

// EntriesForDay merges every list's entries for the given weekday into
// one flat sequence, preserving each list's internal order. Blank or
// incomplete entries are dropped. Entries without an identity get a
// stable fallback of the form "{listID}-{weekday}-{index}".
func EntriesForDay(lists []models.ScheduleList, weekday string) []models.ScheduleEntry {
	var out []models.ScheduleEntry
	for _, list := range lists {
		for i, entry := range list.Days[weekday] {
			if !entry.Valid() {
				continue
			}
			if entry.Identity == "" {
				entry.Identity = fmt.Sprintf("%s-%s-%d", list.ID, weekday, i)
			}
			out = append(out, entry)
		}
	}
	return out
}

// SortByStartTime returns the entries ordered ascending by start time.
// Entries with an unparseable start time sort as 00:00. The sort is
// stable so ties keep their merge order.
func SortByStartTime(entries []models.ScheduleEntry) []models.ScheduleEntry {
	sorted := make([]models.ScheduleEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return timemath.MinutesOfDay(sorted[i].StartTime) < timemath.MinutesOfDay(sorted[j].StartTime)
	})
	return sorted
}
