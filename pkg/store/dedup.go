package store

import (
	"encoding/json"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/dainik-app/dainik/pkg/models"
	"github.com/dainik-app/dainik/pkg/schedule"
	"github.com/dainik-app/dainik/pkg/timemath"
)

// maxRoutineKeys is the size at which the routine key set is pruned
// back to keys from the current day.
const maxRoutineKeys = 50

// DedupStore answers "has this alert already fired?" and records new
// firings. State is persisted after every mutation so a restart does
// not replay alerts that were already delivered. Storage problems are
// logged and ignored; the in-memory state stays authoritative for the
// session.
type DedupStore struct {
	mu sync.Mutex
	kv KeyValue

	lastTaskKey    string
	routineKeysKey string

	lastNotifiedTaskID string
	routineKeys        map[string]struct{}
}

// NewDedupStore loads any persisted dedup state for the given user.
func NewDedupStore(kv KeyValue, userID string) *DedupStore {
	s := &DedupStore{
		kv:             kv,
		lastTaskKey:    "reminder_last_task_" + userID,
		routineKeysKey: "reminder_routine_keys_" + userID,
		routineKeys:    make(map[string]struct{}),
	}
	s.load()
	return s
}

func (s *DedupStore) load() {
	s.lastNotifiedTaskID = s.kv.String(s.lastTaskKey)

	raw := s.kv.String(s.routineKeysKey)
	if raw == "" {
		return
	}
	var keys []string
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		log.Printf("dedup state unreadable, starting fresh: %v", err)
		return
	}
	for _, k := range keys {
		s.routineKeys[k] = struct{}{}
	}
}

// ShouldAlert reports whether an alert of the given kind may fire for
// the entry at now. active tells whether the entry's window currently
// contains now (the catch-up condition for routine slots).
func (s *DedupStore) ShouldAlert(kind models.AlertKind, entry models.ScheduleEntry, now time.Time, active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case models.AlertTodoCurrent:
		return entry.Identity != s.lastNotifiedTaskID
	case models.AlertRoutineSlot:
		if _, seen := s.routineKeys[routineSlotKey(entry, now)]; seen {
			return false
		}
		return timemath.MinuteString(now) == entry.StartTime || active
	default:
		return false
	}
}

// RecordAlert marks the alert as fired and persists the state
// synchronously. Routine key insertion triggers an opportunistic prune
// once the set outgrows maxRoutineKeys.
func (s *DedupStore) RecordAlert(kind models.AlertKind, entry models.ScheduleEntry, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch kind {
	case models.AlertTodoCurrent:
		s.lastNotifiedTaskID = entry.Identity
		s.kv.SetString(s.lastTaskKey, entry.Identity)
	case models.AlertRoutineSlot:
		s.routineKeys[routineSlotKey(entry, now)] = struct{}{}
		if len(s.routineKeys) > maxRoutineKeys {
			s.pruneLocked(now)
		}
		s.persistRoutineKeysLocked()
	}
}

// Prune drops routine keys from previous days once the set exceeds the
// size threshold.
func (s *DedupStore) Prune(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.routineKeys) > maxRoutineKeys {
		s.pruneLocked(now)
		s.persistRoutineKeysLocked()
	}
}

func (s *DedupStore) pruneLocked(now time.Time) {
	today := timemath.DateString(now)
	for k := range s.routineKeys {
		if !strings.HasPrefix(k, today) {
			delete(s.routineKeys, k)
		}
	}
}

func (s *DedupStore) persistRoutineKeysLocked() {
	keys := make([]string, 0, len(s.routineKeys))
	for k := range s.routineKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	data, err := json.Marshal(keys)
	if err != nil {
		log.Printf("failed to encode dedup keys: %v", err)
		return
	}
	s.kv.SetString(s.routineKeysKey, string(data))
}

// Reset clears all dedup state, in memory and persisted.
func (s *DedupStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastNotifiedTaskID = ""
	s.routineKeys = make(map[string]struct{})
	s.kv.RemoveValue(s.lastTaskKey)
	s.kv.RemoveValue(s.routineKeysKey)
}

// routineSlotKey builds the composite dedup key "{date}-{identity}-{start}".
// The date comes from the resolved window's start so that an overnight
// entry keeps one key across the midnight boundary.
func routineSlotKey(entry models.ScheduleEntry, now time.Time) string {
	date := timemath.DateString(now)
	if start, _, ok := schedule.Window(entry, now); ok {
		date = timemath.DateString(start)
	}
	return date + "-" + entry.Identity + "-" + entry.StartTime
}
