package main

import (
	"fyne.io/fyne/v2"
)

type Config struct {
	UserID              string
	StoreBaseURL        string
	Locale              string
	VoiceAlerts         bool
	SpeechRate          float64
	SpeechPitch         float64
	AutoStart           bool
	SyncIntervalMinutes int
	AlertSoundPath      string
}

func loadConfig(app fyne.App) *Config {
	prefs := app.Preferences()

	return &Config{
		UserID:              prefs.String("user_id"),
		StoreBaseURL:        prefs.String("store_base_url"),
		Locale:              prefs.StringWithFallback("locale", "en"),
		VoiceAlerts:         prefs.BoolWithFallback("voice_alerts", true),
		SpeechRate:          prefs.FloatWithFallback("speech_rate", 1.0),
		SpeechPitch:         prefs.FloatWithFallback("speech_pitch", 1.0),
		AutoStart:           prefs.BoolWithFallback("auto_start", false),
		SyncIntervalMinutes: prefs.IntWithFallback("sync_interval_minutes", 5),
		AlertSoundPath:      prefs.String("alert_sound_path"),
	}
}

func saveConfig(app fyne.App, config *Config) {
	prefs := app.Preferences()

	prefs.SetString("user_id", config.UserID)
	prefs.SetString("store_base_url", config.StoreBaseURL)
	prefs.SetString("locale", config.Locale)
	prefs.SetBool("voice_alerts", config.VoiceAlerts)
	prefs.SetFloat("speech_rate", config.SpeechRate)
	prefs.SetFloat("speech_pitch", config.SpeechPitch)
	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetInt("sync_interval_minutes", config.SyncIntervalMinutes)
	prefs.SetString("alert_sound_path", config.AlertSoundPath)
}

// NeedsConfiguration reports whether the app can reach the user's
// planner data yet.
func (c *Config) NeedsConfiguration() bool {
	return c.UserID == "" || c.StoreBaseURL == ""
}
