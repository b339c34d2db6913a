package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dainik-app/dainik/pkg/models"
)

func TestEntriesForDayMergesListsInOrder(t *testing.T) {
	lists := []models.ScheduleList{
		{
			ID: "a",
			Days: map[string][]models.ScheduleEntry{
				"monday": {
					{Label: "Math", StartTime: "09:00", EndTime: "10:00"},
					{Label: "Physics", StartTime: "10:00", EndTime: "11:00"},
				},
			},
		},
		{
			ID: "b",
			Days: map[string][]models.ScheduleEntry{
				"monday": {
					{Label: "Homework", StartTime: "19:00", EndTime: "20:00"},
				},
			},
		},
	}

	entries := EntriesForDay(lists, "monday")
	require.Len(t, entries, 3)
	assert.Equal(t, "Math", entries[0].Label)
	assert.Equal(t, "Physics", entries[1].Label)
	assert.Equal(t, "Homework", entries[2].Label)
}

func TestEntriesForDaySkipsIncompleteEntries(t *testing.T) {
	lists := []models.ScheduleList{
		{
			ID: "a",
			Days: map[string][]models.ScheduleEntry{
				"friday": {
					{Label: "  ", StartTime: "09:00", EndTime: "10:00"},
					{Label: "No end", StartTime: "09:00"},
					{Label: "Kept", StartTime: "09:00", EndTime: "10:00"},
				},
			},
		},
	}

	entries := EntriesForDay(lists, "friday")
	require.Len(t, entries, 1)
	assert.Equal(t, "Kept", entries[0].Label)
}

func TestEntriesForDayIdentityFallback(t *testing.T) {
	lists := []models.ScheduleList{
		{
			ID: "routine-1",
			Days: map[string][]models.ScheduleEntry{
				"sunday": {
					{Label: "Reading", StartTime: "08:00", EndTime: "09:00"},
					{Label: "Writing", StartTime: "09:00", EndTime: "10:00", Identity: "custom"},
				},
			},
		},
	}

	entries := EntriesForDay(lists, "sunday")
	require.Len(t, entries, 2)
	assert.Equal(t, "routine-1-sunday-0", entries[0].Identity)
	assert.Equal(t, "custom", entries[1].Identity)
}

func TestSortByStartTimeStable(t *testing.T) {
	entries := []models.ScheduleEntry{
		{Label: "Late", StartTime: "14:00", EndTime: "15:00"},
		{Label: "First tie", StartTime: "09:00", EndTime: "10:00"},
		{Label: "Second tie", StartTime: "09:00", EndTime: "11:00"},
		{Label: "Broken", StartTime: "soon", EndTime: "10:00"},
	}

	sorted := SortByStartTime(entries)

	// unparseable start sorts as midnight; ties keep merge order
	assert.Equal(t, "Broken", sorted[0].Label)
	assert.Equal(t, "First tie", sorted[1].Label)
	assert.Equal(t, "Second tie", sorted[2].Label)
	assert.Equal(t, "Late", sorted[3].Label)

	// the input slice is untouched
	assert.Equal(t, "Late", entries[0].Label)
}
