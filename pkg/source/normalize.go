package source

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"

	"github.com/dainik-app/dainik/pkg/models"
)

// The backing store persists lists in two shapes depending on how they
// were written: push-keyed objects ({"-Nab12": {...}}) and plain arrays
// (legacy writes). The same inconsistency exists one level down for the
// per-day entry collections and for goal documents. Everything here
// normalizes both shapes into ordered slices. Push keys are generated
// chronologically, so sorting object keys lexicographically restores
// insertion order.

type rawEntry struct {
	Subject   string `json:"subject,omitempty"`
	Task      string `json:"task,omitempty"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func (r rawEntry) label() string {
	if r.Subject != "" {
		return r.Subject
	}
	return r.Task
}

type rawList struct {
	Title string                     `json:"title"`
	Days  map[string]json.RawMessage `json:"days"`
}

// decodeLists turns a routines/todos document into ordered ScheduleLists.
// A nil or empty document means "no lists", not an error.
func decodeLists(doc []byte) ([]models.ScheduleList, error) {
	if len(doc) == 0 || string(doc) == "null" {
		return nil, nil
	}

	type keyed struct {
		id  string
		raw rawList
	}
	var ordered []keyed

	var byKey map[string]rawList
	if err := json.Unmarshal(doc, &byKey); err == nil {
		keys := make([]string, 0, len(byKey))
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			ordered = append(ordered, keyed{id: k, raw: byKey[k]})
		}
	} else {
		var arr []rawList
		if err := json.Unmarshal(doc, &arr); err != nil {
			return nil, fmt.Errorf("unrecognized list document shape: %w", err)
		}
		for i, raw := range arr {
			ordered = append(ordered, keyed{id: fmt.Sprintf("list-%d", i), raw: raw})
		}
	}

	lists := make([]models.ScheduleList, 0, len(ordered))
	for _, item := range ordered {
		list := models.ScheduleList{
			ID:    item.id,
			Title: item.raw.Title,
			Days:  make(map[string][]models.ScheduleEntry),
		}
		for day, rawDay := range item.raw.Days {
			entries, err := decodeDayEntries(rawDay)
			if err != nil {
				log.Printf("skipping malformed day %q in list %q: %v", day, item.id, err)
				continue
			}
			converted := make([]models.ScheduleEntry, 0, len(entries))
			for _, e := range entries {
				converted = append(converted, models.ScheduleEntry{
					Label:     e.label(),
					StartTime: e.StartTime,
					EndTime:   e.EndTime,
				})
			}
			list.Days[day] = converted
		}
		lists = append(lists, list)
	}
	return lists, nil
}

// decodeDayEntries accepts both the array and the push-keyed object
// encoding of one weekday's entries.
func decodeDayEntries(raw json.RawMessage) ([]rawEntry, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var arr []rawEntry
	if err := json.Unmarshal(raw, &arr); err == nil {
		return arr, nil
	}

	var byKey map[string]rawEntry
	if err := json.Unmarshal(raw, &byKey); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entries := make([]rawEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, byKey[k])
	}
	return entries, nil
}

// EncodeRoutineList renders a list in the routine document shape the
// store persists, so imported schedules can be uploaded as-is.
func EncodeRoutineList(list models.ScheduleList) ([]byte, error) {
	days := make(map[string][]rawEntry, len(list.Days))
	for day, entries := range list.Days {
		converted := make([]rawEntry, 0, len(entries))
		for _, e := range entries {
			converted = append(converted, rawEntry{
				Subject:   e.Label,
				StartTime: e.StartTime,
				EndTime:   e.EndTime,
			})
		}
		days[day] = converted
	}
	doc := struct {
		Title string                `json:"title"`
		Days  map[string][]rawEntry `json:"days"`
	}{Title: list.Title, Days: days}
	return json.MarshalIndent(doc, "", "  ")
}

// decodeGoals accepts the three observed goal document shapes: a plain
// string array, a legacy {"items": [...]} wrapper, and a push-keyed
// object whose values are strings or {"text": ...} records.
func decodeGoals(doc []byte) ([]string, error) {
	if len(doc) == 0 || string(doc) == "null" {
		return nil, nil
	}

	var arr []string
	if err := json.Unmarshal(doc, &arr); err == nil {
		return arr, nil
	}

	var wrapper struct {
		Items []string `json:"items"`
	}
	if err := json.Unmarshal(doc, &wrapper); err == nil && wrapper.Items != nil {
		return wrapper.Items, nil
	}

	var byKey map[string]json.RawMessage
	if err := json.Unmarshal(doc, &byKey); err != nil {
		return nil, fmt.Errorf("unrecognized goal document shape: %w", err)
	}
	keys := make([]string, 0, len(byKey))
	for k := range byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	goals := make([]string, 0, len(keys))
	for _, k := range keys {
		var s string
		if err := json.Unmarshal(byKey[k], &s); err == nil {
			goals = append(goals, s)
			continue
		}
		var rec struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(byKey[k], &rec); err == nil && rec.Text != "" {
			goals = append(goals, rec.Text)
		}
	}
	return goals, nil
}
