package main

import (
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"github.com/dainik-app/dainik/pkg/models"
	"github.com/dainik-app/dainik/pkg/schedule"
	"github.com/dainik-app/dainik/pkg/timemath"
)

func (d *Dainik) setupSystemTray() {
	d.updateSystemTrayMenu()
}

func (d *Dainik) updateSystemTrayMenu() {
	desk, ok := d.app.(desktop.App)
	if !ok {
		return
	}

	now := time.Now()
	menuItems := []*fyne.MenuItem{}

	dateItem := fyne.NewMenuItem(timemath.LocalizedDate(now, d.config.Locale), nil)
	dateItem.Disabled = true
	menuItems = append(menuItems, dateItem, fyne.NewMenuItemSeparator())

	upcoming := d.upcomingToday(now, 5)
	if len(upcoming) > 0 {
		header := fyne.NewMenuItem("Coming up today:", nil)
		header.Disabled = true
		menuItems = append(menuItems, header)

		for _, entry := range upcoming {
			start := timemath.LocalizeDigits(timemath.FormatTime12h(entry.StartTime), d.config.Locale)
			label := "  " + start + "  " + truncateString(entry.Label, 35)
			if ws, we, ok := schedule.Window(entry, now); ok {
				label += " (" + timemath.LocalizeDigits(timemath.DurationString(ws, we), d.config.Locale) + ")"
			}
			item := fyne.NewMenuItem(label, nil)
			item.Disabled = true
			menuItems = append(menuItems, item)
		}
		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	if len(d.goals) > 0 {
		header := fyne.NewMenuItem("Today's goals:", nil)
		header.Disabled = true
		menuItems = append(menuItems, header)

		for _, goal := range d.goals {
			item := fyne.NewMenuItem("  "+truncateString(goal, 40), nil)
			item.Disabled = true
			menuItems = append(menuItems, item)
		}
		menuItems = append(menuItems, fyne.NewMenuItemSeparator())
	}

	menuItems = append(menuItems,
		fyne.NewMenuItem("Sync Now", func() {
			go d.syncNow()
		}),
		fyne.NewMenuItem("Reset reminders", func() {
			d.engine.ResetDedup()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			d.quit()
		}),
	)

	desk.SetSystemTrayMenu(fyne.NewMenu("Dainik", menuItems...))
}

// upcomingToday returns today's next entries across routines and todos,
// earliest first.
func (d *Dainik) upcomingToday(now time.Time, limit int) []models.ScheduleEntry {
	weekday := models.WeekdayName(now)
	all := append(
		schedule.EntriesForDay(d.routines, weekday),
		schedule.EntriesForDay(d.todos, weekday)...)

	minute := timemath.MinutesOfDay(timemath.MinuteString(now))
	upcoming := []models.ScheduleEntry{}
	for _, entry := range all {
		if timemath.MinutesOfDay(entry.StartTime) >= minute {
			upcoming = append(upcoming, entry)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return timemath.MinutesOfDay(upcoming[i].StartTime) < timemath.MinutesOfDay(upcoming[j].StartTime)
	})

	if len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}
	return upcoming
}

// truncateString shortens menu labels so the tray stays readable.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
