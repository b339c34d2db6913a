package reminder

import (
	"time"

	"github.com/dainik-app/dainik/pkg/models"
	"github.com/dainik-app/dainik/pkg/schedule"
	"github.com/dainik-app/dainik/pkg/timemath"
)

// alertTitle is the notification heading for the given locale.
func alertTitle(locale string) string {
	if locale == "bn" {
		return "ডেইলি রুটিন কাজ"
	}
	return "Daily Routine Task"
}

// alertBody renders the notification text: the entry label, its 12-hour
// time range, and the time remaining in the window when it is active.
func alertBody(entry models.ScheduleEntry, now time.Time, locale string) string {
	lead := "Time for: "
	if locale == "bn" {
		lead = "সময় হয়েছে: "
	}
	body := lead + entry.Label

	rng := timemath.FormatTime12h(entry.StartTime) + " - " + timemath.FormatTime12h(entry.EndTime)
	body += "\n" + timemath.LocalizeDigits(rng, locale)

	if _, end, ok := schedule.Window(entry, now); ok {
		if remaining := timemath.RemainingString(now, end); remaining != "" {
			left := "Time left: "
			if locale == "bn" {
				left = "বাকি আছে: "
			}
			body += "\n" + left + timemath.LocalizeDigits(remaining, locale)
		}
	}
	return body
}

// spokenText is the sentence handed to the speech sink.
func spokenText(entry models.ScheduleEntry, locale string) string {
	if locale == "bn" {
		return "সময় হয়েছে " + entry.Label
	}
	return "Time for " + entry.Label
}
