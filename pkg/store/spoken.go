package store

import (
	"time"

	"github.com/dainik-app/dainik/pkg/timemath"
)

// SpokenMarker tracks the last minute a voice alert was spoken for.
// It is deliberately coarser than the per-entry dedup in DedupStore:
// at most one utterance per minute, across all entry kinds.
type SpokenMarker struct {
	kv  KeyValue
	key string
}

// NewSpokenMarker returns a marker persisted under the given user.
func NewSpokenMarker(kv KeyValue, userID string) *SpokenMarker {
	return &SpokenMarker{kv: kv, key: "reminder_spoken_minute_" + userID}
}

// AlreadySpoken reports whether a voice alert was spoken during now's
// minute.
func (m *SpokenMarker) AlreadySpoken(now time.Time) bool {
	return m.kv.String(m.key) == timemath.DateMinuteString(now)
}

// MarkSpoken records now's minute as spoken-for.
func (m *SpokenMarker) MarkSpoken(now time.Time) {
	m.kv.SetString(m.key, timemath.DateMinuteString(now))
}
