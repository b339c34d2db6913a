package calendar

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dainik-app/dainik/pkg/models"
	"github.com/dainik-app/dainik/pkg/timemath"
)

func icsDocument(events ...string) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//test//EN",
	}
	lines = append(lines, events...)
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n"
}

func icsEvent(uid, summary string, start, end time.Time) string {
	const layout = "20060102T150405"
	return strings.Join([]string{
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:20260101T000000Z",
		"SUMMARY:" + summary,
		"DTSTART:" + start.Format(layout),
		"DTEND:" + end.Format(layout),
		"END:VEVENT",
	}, "\r\n")
}

func TestImportBuildsEntriesForComingWeek(t *testing.T) {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	end := start.Add(90 * time.Minute)
	doc := icsDocument(icsEvent("ev-1", "Chemistry lab", start, end))

	list, err := importReader(strings.NewReader(doc), "Semester plan")
	require.NoError(t, err)

	assert.NotEmpty(t, list.ID)
	assert.Equal(t, "Semester plan", list.Title)

	weekday := models.WeekdayName(start)
	entries := list.Days[weekday]
	require.Len(t, entries, 1)
	assert.Equal(t, "Chemistry lab", entries[0].Label)
	assert.Equal(t, timemath.MinuteString(start), entries[0].StartTime)
	assert.Equal(t, timemath.MinuteString(end), entries[0].EndTime)
}

func TestImportSkipsEventsOutsideWindow(t *testing.T) {
	past := time.Now().Add(-48 * time.Hour)
	farFuture := time.Now().Add(10 * 24 * time.Hour)
	doc := icsDocument(
		icsEvent("ev-1", "Old lecture", past, past.Add(time.Hour)),
		icsEvent("ev-2", "Next month", farFuture, farFuture.Add(time.Hour)),
	)

	list, err := importReader(strings.NewReader(doc), "Plan")
	require.NoError(t, err)
	assert.Empty(t, list.Days)
}

func TestImportSkipsEventsWithoutSummary(t *testing.T) {
	start := time.Now().Add(24 * time.Hour)
	doc := icsDocument(strings.Join([]string{
		"BEGIN:VEVENT",
		"UID:ev-1",
		"DTSTAMP:20260101T000000Z",
		fmt.Sprintf("DTSTART:%s", start.Format("20060102T150405")),
		"END:VEVENT",
	}, "\r\n"))

	list, err := importReader(strings.NewReader(doc), "Plan")
	require.NoError(t, err)
	assert.Empty(t, list.Days)
}

func TestImportDefaultsMissingEndToOneHour(t *testing.T) {
	start := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
	doc := icsDocument(strings.Join([]string{
		"BEGIN:VEVENT",
		"UID:ev-1",
		"DTSTAMP:20260101T000000Z",
		"SUMMARY:Open study",
		fmt.Sprintf("DTSTART:%s", start.Format("20060102T150405")),
		"END:VEVENT",
	}, "\r\n"))

	list, err := importReader(strings.NewReader(doc), "Plan")
	require.NoError(t, err)

	entries := list.Days[models.WeekdayName(start)]
	require.Len(t, entries, 1)
	assert.Equal(t, timemath.MinuteString(start.Add(time.Hour)), entries[0].EndTime)
}
