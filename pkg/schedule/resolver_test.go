package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dainik-app/dainik/pkg/models"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 9, hour, min, 0, 0, time.Local)
}

func TestWindowSameDay(t *testing.T) {
	entry := models.ScheduleEntry{Label: "Math", StartTime: "09:00", EndTime: "10:30"}

	start, end, ok := Window(entry, at(9, 15))
	require.True(t, ok)
	assert.Equal(t, at(9, 0), start)
	assert.Equal(t, at(10, 30), end)
}

func TestWindowOvernightWrap(t *testing.T) {
	entry := models.ScheduleEntry{Label: "Study", StartTime: "23:00", EndTime: "01:00"}

	// during the evening leg the window ends tomorrow
	start, end, ok := Window(entry, at(23, 30))
	require.True(t, ok)
	assert.Equal(t, at(23, 0), start)
	assert.Equal(t, at(23, 0).Add(2*time.Hour), end)

	// after midnight the same window still applies, anchored to yesterday
	start, end, ok = Window(entry, at(0, 30))
	require.True(t, ok)
	assert.Equal(t, at(23, 0).AddDate(0, 0, -1), start)
	assert.Equal(t, at(1, 0), end)
}

func TestWindowMalformedTimes(t *testing.T) {
	_, _, ok := Window(models.ScheduleEntry{StartTime: "soon", EndTime: "10:00"}, at(9, 0))
	assert.False(t, ok)

	_, _, ok = Window(models.ScheduleEntry{StartTime: "09:00", EndTime: "later"}, at(9, 0))
	assert.False(t, ok)
}

func TestIsActiveBoundaries(t *testing.T) {
	entry := models.ScheduleEntry{Label: "Math", StartTime: "09:00", EndTime: "10:00"}

	assert.False(t, IsActive(entry, at(8, 59)))
	assert.True(t, IsActive(entry, at(9, 0)))  // start is inclusive
	assert.True(t, IsActive(entry, at(9, 59)))
	assert.False(t, IsActive(entry, at(10, 0))) // end is exclusive
}

func TestIsActiveOvernightAcrossMidnight(t *testing.T) {
	entry := models.ScheduleEntry{Label: "Study", StartTime: "22:00", EndTime: "02:00"}

	assert.True(t, IsActive(entry, at(23, 0)))
	assert.True(t, IsActive(entry, at(1, 0)))
	assert.False(t, IsActive(entry, at(12, 0)))
}

func TestActiveEntryEarliestStartWins(t *testing.T) {
	entries := SortByStartTime([]models.ScheduleEntry{
		{Label: "Long block", StartTime: "09:00", EndTime: "12:00"},
		{Label: "Nested", StartTime: "10:00", EndTime: "11:00"},
	})

	active, ok := ActiveEntry(entries, at(10, 30))
	require.True(t, ok)
	assert.Equal(t, "Long block", active.Label)
}

func TestActiveEntryNoneActive(t *testing.T) {
	entries := []models.ScheduleEntry{
		{Label: "Morning", StartTime: "09:00", EndTime: "10:00"},
	}

	_, ok := ActiveEntry(entries, at(15, 0))
	assert.False(t, ok)
}
