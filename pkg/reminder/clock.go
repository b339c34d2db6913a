package reminder

import (
	"log"
	"sync"
	"time"

	"github.com/dainik-app/dainik/pkg/models"
	"github.com/dainik-app/dainik/pkg/schedule"
	"github.com/dainik-app/dainik/pkg/store"
	"github.com/dainik-app/dainik/pkg/timemath"
)

// todoTag is the shared notification tag for the "current todo" alert,
// so only one such notification exists at a time.
const todoTag = "todo-current"

// Options control locale and voice behavior of the engine.
type Options struct {
	Locale      string
	VoiceAlerts bool
	SpeechRate  float64
	SpeechPitch float64
}

// ReminderClock is the 1 Hz reminder engine. Each tick samples the
// clock once, then checks the current todo, the routine slots, and the
// voice alert against that single instant. Schedule updates and the
// speaker can be swapped while running.
type ReminderClock struct {
	mu sync.Mutex

	clock    Clock
	notifier NotificationSink
	speaker  SpeechSink
	dedup    *store.DedupStore
	spoken   *store.SpokenMarker
	opts     Options

	routines []models.ScheduleList
	todos    []models.ScheduleList

	permOnce  sync.Once
	permitted bool
	ticker    *time.Ticker
	stopCh    chan struct{}
}

// New builds an engine. The speaker starts unset; install one with
// SetSpeaker when voice alerts are wanted.
func New(clock Clock, notifier NotificationSink, dedup *store.DedupStore, spoken *store.SpokenMarker, opts Options) *ReminderClock {
	return &ReminderClock{
		clock:    clock,
		notifier: notifier,
		dedup:    dedup,
		spoken:   spoken,
		opts:     opts,
	}
}

// SetSpeaker installs or replaces the speech sink. A nil speaker
// disables voice alerts.
func (c *ReminderClock) SetSpeaker(s SpeechSink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.speaker = s
}

// UpdateSchedules replaces the schedules the engine evaluates. Called
// from the sync loop whenever a fresh snapshot arrives.
func (c *ReminderClock) UpdateSchedules(routines, todos []models.ScheduleList) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.routines = routines
	c.todos = todos
}

// ResetDedup clears the fired-alert history so current entries alert
// again on the next tick.
func (c *ReminderClock) ResetDedup() {
	c.dedup.Reset()
}

// Start begins ticking. The first check runs immediately rather than a
// second in.
func (c *ReminderClock) Start() {
	c.mu.Lock()
	if c.ticker != nil {
		c.mu.Unlock()
		return
	}
	c.ticker = time.NewTicker(1 * time.Second)
	c.stopCh = make(chan struct{})
	ticker, stopCh := c.ticker, c.stopCh
	c.mu.Unlock()

	go func() {
		c.tick()
		for {
			select {
			case <-stopCh:
				return
			case <-ticker.C:
				c.tick()
			}
		}
	}()
}

// Stop halts the tick loop. Safe to call when not running.
func (c *ReminderClock) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.stopCh)
	c.ticker = nil
	c.stopCh = nil
}

// Tick runs one evaluation pass against the clock's current instant.
func (c *ReminderClock) Tick() {
	c.tick()
}

func (c *ReminderClock) tick() {
	// permission is asked exactly once, on the first evaluation
	c.permOnce.Do(func() {
		c.permitted = c.notifier.RequestPermission()
		if !c.permitted {
			log.Println("notification permission denied, reminders will be voice-only")
		}
	})

	now := c.clock.Now()

	c.mu.Lock()
	routines, todos := c.routines, c.todos
	c.mu.Unlock()

	weekday := models.WeekdayName(now)
	todoEntries := schedule.SortByStartTime(schedule.EntriesForDay(todos, weekday))
	routineEntries := schedule.SortByStartTime(schedule.EntriesForDay(routines, weekday))

	c.checkCurrentTodo(todoEntries, now)
	c.checkRoutineSlots(routineEntries, now)
	c.checkVoice(todoEntries, routineEntries, now)
}

// checkCurrentTodo alerts loudly when the active todo changes, then
// keeps re-showing it silently under the same tag so the notification
// follows the entry for as long as it is active.
func (c *ReminderClock) checkCurrentTodo(entries []models.ScheduleEntry, now time.Time) {
	active, ok := schedule.ActiveEntry(entries, now)
	if !ok {
		return
	}

	title := alertTitle(c.opts.Locale)
	body := alertBody(active, now, c.opts.Locale)

	if c.dedup.ShouldAlert(models.AlertTodoCurrent, active, now, true) {
		c.show(title, body, todoTag, false, true)
		c.dedup.RecordAlert(models.AlertTodoCurrent, active, now)
		log.Printf("todo alert fired: %s", active.Label)
		return
	}
	c.show(title, body, todoTag, true, true)
}

// checkRoutineSlots fires each routine entry once per occurrence,
// either exactly at its start minute or as a catch-up when the engine
// wakes up mid-window.
func (c *ReminderClock) checkRoutineSlots(entries []models.ScheduleEntry, now time.Time) {
	for _, entry := range entries {
		active := schedule.IsActive(entry, now)
		if !c.dedup.ShouldAlert(models.AlertRoutineSlot, entry, now, active) {
			continue
		}
		c.show(alertTitle(c.opts.Locale), alertBody(entry, now, c.opts.Locale), "routine-"+entry.Identity, false, false)
		c.dedup.RecordAlert(models.AlertRoutineSlot, entry, now)
		log.Printf("routine alert fired: %s at %s", entry.Label, entry.StartTime)
	}
}

// checkVoice speaks at most one alert per minute, during the first
// seconds of the minute, for an entry starting at exactly that minute.
// Todos win over routines when both start together.
func (c *ReminderClock) checkVoice(todos, routines []models.ScheduleEntry, now time.Time) {
	if !c.opts.VoiceAlerts || now.Second() > 2 {
		return
	}

	c.mu.Lock()
	speaker := c.speaker
	c.mu.Unlock()
	if speaker == nil || c.spoken.AlreadySpoken(now) {
		return
	}

	minute := timemath.MinuteString(now)
	pick := func(entries []models.ScheduleEntry) (models.ScheduleEntry, bool) {
		for _, e := range entries {
			if e.StartTime == minute && schedule.IsActive(e, now) {
				return e, true
			}
		}
		return models.ScheduleEntry{}, false
	}

	entry, ok := pick(todos)
	if !ok {
		entry, ok = pick(routines)
	}
	if !ok {
		return
	}

	speaker.Speak(spokenText(entry, c.opts.Locale), c.opts.Locale, c.opts.SpeechRate, c.opts.SpeechPitch)
	c.spoken.MarkSpoken(now)
}

func (c *ReminderClock) show(title, body, tag string, silent, requireInteraction bool) {
	if !c.permitted {
		return
	}
	c.notifier.Show(title, body, tag, silent, requireInteraction)
}
