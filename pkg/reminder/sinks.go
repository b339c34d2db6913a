package reminder

import "time"

// Clock supplies the current time. The engine samples it once per tick
// so every decision in a tick sees the same instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// NotificationSink delivers desktop notifications. tag identifies the
// logical alert so a sink can coalesce repeats; silent repeats with an
// unchanged tag may be dropped entirely. requireInteraction asks the
// sink to keep the notification on screen until dismissed, where the
// platform supports that.
type NotificationSink interface {
	RequestPermission() bool
	Show(title, body, tag string, silent, requireInteraction bool)
}

// SpeechSink speaks an alert out loud. rate and pitch are multipliers
// around 1.0; locale selects the voice language.
type SpeechSink interface {
	Speak(text, locale string, rate, pitch float64)
}
