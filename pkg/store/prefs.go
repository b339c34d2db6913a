package store

import "fyne.io/fyne/v2"

// fyne.Preferences satisfies KeyValue as-is; this assertion keeps the
// two interfaces from drifting apart.
var _ KeyValue = fyne.Preferences(nil)

// PreferencesKV exposes the app's preferences as the dedup storage.
func PreferencesKV(app fyne.App) KeyValue {
	return app.Preferences()
}
