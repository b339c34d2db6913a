package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dainik-app/dainik/pkg/audio"
	"github.com/dainik-app/dainik/pkg/calendar"
	"github.com/dainik-app/dainik/pkg/models"
	"github.com/dainik-app/dainik/pkg/notify"
	"github.com/dainik-app/dainik/pkg/platform"
	"github.com/dainik-app/dainik/pkg/reminder"
	"github.com/dainik-app/dainik/pkg/source"
	"github.com/dainik-app/dainik/pkg/speech"
	"github.com/dainik-app/dainik/pkg/store"
)

// Dainik is the tray application: a sync loop feeding schedules into
// the reminder engine, plus a tray menu showing the day at a glance.
type Dainik struct {
	app    fyne.App
	config *Config
	client *source.Client
	engine *reminder.ReminderClock
	goals  []string

	routines []models.ScheduleList
	todos    []models.ScheduleList

	cancelSync context.CancelFunc
}

func main() {
	importPath := flag.String("import-ical", "", "convert an .ics file or URL to a schedule list and print it as JSON")
	listTitle := flag.String("list-title", "Imported calendar", "title for the imported schedule list")
	flag.Parse()

	if *importPath != "" {
		if err := runImport(*importPath, *listTitle); err != nil {
			log.Fatal(err)
		}
		return
	}

	d := &Dainik{app: app.New()}
	if err := d.initialize(); err != nil {
		log.Fatal(err)
	}
	d.run()
}

// runImport is the headless mode: read the calendar, emit the schedule
// list document, exit.
func runImport(path, title string) error {
	list, err := calendar.Import(path, title)
	if err != nil {
		return err
	}
	out, err := source.EncodeRoutineList(list)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(out))
	return nil
}

func (d *Dainik) initialize() error {
	d.config = loadConfig(d.app)

	if err := setupAutostart(d.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}
	saveConfig(d.app, d.config)

	kv := store.PreferencesKV(d.app)
	dedup := store.NewDedupStore(kv, d.config.UserID)
	spoken := store.NewSpokenMarker(kv, d.config.UserID)

	chime := audio.NewChime(d.config.AlertSoundPath)
	notifier := notify.NewFyneNotifier(d.app, chime)

	d.engine = reminder.New(reminder.SystemClock{}, notifier, dedup, spoken, reminder.Options{
		Locale:      d.config.Locale,
		VoiceAlerts: d.config.VoiceAlerts,
		SpeechRate:  d.config.SpeechRate,
		SpeechPitch: d.config.SpeechPitch,
	})
	if d.config.VoiceAlerts {
		if synth := speech.NewSynthesizer(); synth != nil {
			d.engine.SetSpeaker(synth)
		} else {
			log.Println("no speech command available, voice alerts disabled")
		}
	}

	d.setupSystemTray()

	if d.config.NeedsConfiguration() {
		log.Println("user id or store url not configured, reminders idle until set")
		return nil
	}

	d.client = source.NewClient(d.config.StoreBaseURL, d.config.UserID)
	d.startBackgroundSync()
	d.engine.Start()
	return nil
}

func (d *Dainik) run() {
	d.app.Lifecycle().SetOnStarted(func() {
		platform.SetActivationPolicy()
	})
	d.app.Run()
}

// startBackgroundSync subscribes to the document store and pushes every
// snapshot into the engine and the tray.
func (d *Dainik) startBackgroundSync() {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancelSync = cancel

	interval := time.Duration(d.config.SyncIntervalMinutes) * time.Minute
	snapshots := d.client.Subscribe(ctx, interval)
	go func() {
		for snap := range snapshots {
			d.applySnapshot(snap)
		}
	}()
}

func (d *Dainik) applySnapshot(snap source.Snapshot) {
	d.engine.UpdateSchedules(snap.Routines, snap.Todos)
	d.routines = snap.Routines
	d.todos = snap.Todos
	d.goals = snap.Goals
	log.Printf("synced %d routine lists, %d todo lists, %d goals",
		len(snap.Routines), len(snap.Todos), len(snap.Goals))
	d.updateSystemTrayMenu()
}

// syncNow forces one fetch outside the regular interval.
func (d *Dainik) syncNow() {
	if d.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	snap, err := d.client.FetchSnapshot(ctx)
	if err != nil {
		log.Printf("manual sync failed: %v", err)
		return
	}
	d.applySnapshot(snap)
}

func (d *Dainik) quit() {
	if d.cancelSync != nil {
		d.cancelSync()
	}
	d.engine.Stop()
	d.app.Quit()
}
