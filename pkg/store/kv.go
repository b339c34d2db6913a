package store

// KeyValue is the persisted string key-value storage the dedup state
// lives in. The method set is a subset of fyne.Preferences so the app's
// preferences satisfy it directly; tests use an in-memory map.
type KeyValue interface {
	String(key string) string
	SetString(key, value string)
	RemoveValue(key string)
}
