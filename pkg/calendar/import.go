// Package calendar imports iCalendar files as one-off schedule lists,
// so class timetables exported from other tools can feed the reminder
// engine without manual entry.
package calendar

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"

	"github.com/dainik-app/dainik/pkg/models"
	"github.com/dainik-app/dainik/pkg/timemath"
)

// Outlook exports carry Windows timezone names; map the ones we see to
// IANA so time.LoadLocation can resolve them.
var windowsToIANA = map[string]string{
	"Pacific Standard Time":        "America/Los_Angeles",
	"Eastern Standard Time":        "America/New_York",
	"GMT Standard Time":            "Europe/London",
	"Central Europe Standard Time": "Europe/Paris",
	"India Standard Time":          "Asia/Kolkata",
	"Bangladesh Standard Time":     "Asia/Dhaka",
	"China Standard Time":          "Asia/Shanghai",
	"Tokyo Standard Time":          "Asia/Tokyo",
}

// Import reads an iCalendar source, either a local .ics file or an
// http(s) subscription URL, and builds a schedule list from the events
// of the coming week. Each event becomes an entry on its start weekday
// with "HH:MM" times in the local timezone.
func Import(source, title string) (models.ScheduleList, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return importURL(source, title)
	}
	f, err := os.Open(source)
	if err != nil {
		return models.ScheduleList{}, fmt.Errorf("opening calendar file: %w", err)
	}
	defer f.Close()
	return importReader(f, title)
}

func importURL(url, title string) (models.ScheduleList, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return models.ScheduleList{}, fmt.Errorf("fetching calendar: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return models.ScheduleList{}, fmt.Errorf("fetching calendar: unexpected status %s", resp.Status)
	}
	return importReader(resp.Body, title)
}

func importReader(r io.Reader, title string) (models.ScheduleList, error) {
	dec := ical.NewDecoder(r)

	list := models.ScheduleList{
		ID:    uuid.New().String(),
		Title: title,
		Days:  make(map[string][]models.ScheduleEntry),
	}

	now := time.Now()
	weekEnd := timemath.AddDays(now, 7)

	for {
		cal, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.ScheduleList{}, fmt.Errorf("decoding calendar: %w", err)
		}

		for _, comp := range cal.Children {
			if comp.Name != ical.CompEvent {
				continue
			}
			entry, weekday, ok := eventToEntry(comp, now, weekEnd)
			if !ok {
				continue
			}
			list.Days[weekday] = append(list.Days[weekday], entry)
		}
	}
	return list, nil
}

// eventToEntry converts one VEVENT into a weekday entry. Events without
// a summary or start time, and events outside [now, weekEnd), are
// skipped.
func eventToEntry(comp *ical.Component, now, weekEnd time.Time) (models.ScheduleEntry, string, bool) {
	summary := ""
	if prop := comp.Props.Get(ical.PropSummary); prop != nil {
		summary = strings.TrimSpace(prop.Value)
	}
	if summary == "" {
		return models.ScheduleEntry{}, "", false
	}

	startProp := comp.Props.Get(ical.PropDateTimeStart)
	if startProp == nil {
		return models.ScheduleEntry{}, "", false
	}
	start, err := parseDateTimeProperty(startProp)
	if err != nil {
		return models.ScheduleEntry{}, "", false
	}
	if start.Before(now) || !start.Before(weekEnd) {
		return models.ScheduleEntry{}, "", false
	}

	end := start.Add(time.Hour)
	if endProp := comp.Props.Get(ical.PropDateTimeEnd); endProp != nil {
		if t, err := parseDateTimeProperty(endProp); err == nil {
			end = t
		}
	}

	entry := models.ScheduleEntry{
		Label:     summary,
		StartTime: timemath.MinuteString(start),
		EndTime:   timemath.MinuteString(end),
	}
	return entry, models.WeekdayName(start), true
}

// parseDateTimeProperty resolves a DTSTART/DTEND value to local time,
// mapping Windows timezone identifiers first.
func parseDateTimeProperty(prop *ical.Prop) (time.Time, error) {
	if tzid := prop.Params.Get(ical.ParamTimezoneID); tzid != "" {
		if iana, ok := windowsToIANA[tzid]; ok {
			prop.Params.Set(ical.ParamTimezoneID, iana)
		}
	}

	if t, err := prop.DateTime(time.Local); err == nil {
		return t.In(time.Local), nil
	}

	// Some exporters write bare values the library rejects.
	formats := []string{
		"20060102T150405",
		"20060102T150405Z",
		time.RFC3339,
		"2006-01-02T15:04:05",
	}
	for _, format := range formats {
		if t, err := time.ParseInLocation(format, prop.Value, time.Local); err == nil {
			return t.In(time.Local), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime value: %s", prop.Value)
}
