package models

import (
	"strings"
	"time"
)

// Weekdays lists the canonical lowercase weekday identifiers in the order
// used by the schedule documents (Sunday first, matching time.Weekday).
var Weekdays = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// WeekdayName returns the canonical weekday identifier for t.
func WeekdayName(t time.Time) string {
	return Weekdays[int(t.Weekday())]
}

// ScheduleEntry is one scheduled activity: a routine subject or a to-do
// task with a start and end time of day.
type ScheduleEntry struct {
	Label     string // subject name or task description
	StartTime string // "HH:MM", 24-hour
	EndTime   string // "HH:MM"; may wrap past midnight
	Identity  string // stable key for dedup
}

// Valid reports whether the entry carries enough data to be scheduled.
// Entries with a blank label or missing times are dropped during merge.
func (e ScheduleEntry) Valid() bool {
	return strings.TrimSpace(e.Label) != "" && e.StartTime != "" && e.EndTime != ""
}

// ScheduleList is one named routine or to-do list: a mapping from weekday
// to that day's ordered entries.
type ScheduleList struct {
	ID    string
	Title string
	Days  map[string][]ScheduleEntry
}

// AlertKind tags the dedup semantics applied to an alert.
type AlertKind string

const (
	// AlertTodoCurrent fires when the currently active to-do task changes.
	AlertTodoCurrent AlertKind = "todo-current"
	// AlertRoutineSlot fires once per routine entry per day/start-time slot.
	AlertRoutineSlot AlertKind = "routine-slot"
)
